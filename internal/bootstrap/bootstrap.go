// Package bootstrap opens the storage backend and event publisher selected by
// configuration. It is shared by the daemon and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	infrakafka "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/kafka"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/memory"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/messaging"
	infrapg "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/postgres"
	infraredis "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/redis"
	pkgkafka "github.com/georgchimion-oss/fraud-scout-lite/pkg/kafka"
	pkgpostgres "github.com/georgchimion-oss/fraud-scout-lite/pkg/postgres"
)

// Storage bundles the repositories of one backend.
type Storage struct {
	Companies   port.CompanyRepository
	Assessments port.AssessmentRepository
	Settings    port.SettingsRepository
	// Check pings the backend; nil for the in-memory store.
	Check func(ctx context.Context) error

	closers []func() error
}

// Close releases backend connections.
func (s *Storage) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// OpenStorage connects to cfg.StorageBackend. Postgres migrations are applied
// before the repositories are returned.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return &Storage{
			Companies:   memory.NewCompanyRepository(),
			Assessments: memory.NewAssessmentRepository(),
			Settings:    memory.NewSettingsRepository(),
		}, nil

	case config.BackendRedis:
		client, err := infraredis.NewClient(ctx, infraredis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("connected to redis", slog.String("addr", cfg.RedisAddr), slog.Int("db", cfg.RedisDB))
		return redisStorage(client), nil

	case config.BackendPostgres:
		if err := pkgpostgres.RunEmbeddedMigrations(cfg.DatabaseURL, infrapg.Migrations, infrapg.MigrationsDir); err != nil {
			return nil, err
		}
		pool, err := pkgpostgres.NewPool(ctx, pkgpostgres.Config{
			URL:             cfg.DatabaseURL,
			ApplicationName: "fraudscout",
			MaxConns:        cfg.DatabaseMaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("connected to database", slog.Int("max_conns", int(cfg.DatabaseMaxConns)))
		return postgresStorage(pool), nil
	}

	return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
}

func redisStorage(client *goredis.Client) *Storage {
	return &Storage{
		Companies:   infraredis.NewCompanyRepository(client),
		Assessments: infraredis.NewAssessmentRepository(client),
		Settings:    infraredis.NewSettingsRepository(client),
		Check:       func(ctx context.Context) error { return infraredis.HealthCheck(ctx, client) },
		closers:     []func() error{client.Close},
	}
}

func postgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Companies:   infrapg.NewCompanyRepository(pool),
		Assessments: infrapg.NewAssessmentRepository(pool),
		Settings:    infrapg.NewSettingsRepository(pool),
		Check:       func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) },
		closers:     []func() error{func() error { pool.Close(); return nil }},
	}
}

// Publisher is an event publisher together with its shutdown hook.
type Publisher struct {
	port.EventPublisher
	close func() error
}

// Close flushes and closes the underlying producer, if any.
func (p *Publisher) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// OpenPublisher returns a Kafka publisher when brokers are configured and a
// log publisher otherwise.
func OpenPublisher(cfg *config.Config, logger *slog.Logger) (*Publisher, error) {
	if !cfg.KafkaEnabled() {
		logger.Info("kafka not configured, events are logged only")
		return &Publisher{EventPublisher: messaging.NewLogPublisher(cfg.KafkaTopic, logger)}, nil
	}

	producer, err := pkgkafka.NewProducer(KafkaConfig(cfg, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	logger.Info("publishing events to kafka",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.String("topic", cfg.KafkaTopic),
	)
	return &Publisher{
		EventPublisher: infrakafka.NewPublisher(producer, cfg.KafkaTopic, logger),
		close:          producer.Close,
	}, nil
}

// KafkaConfig maps service configuration onto the shared Kafka client config.
func KafkaConfig(cfg *config.Config, group string) pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       cfg.KafkaBrokers,
		ClientID:      "fraudscout",
		ConsumerGroup: group,
		TLS:           cfg.KafkaTLS,
		SASLEnabled:   cfg.KafkaSASLMechanism != "",
		SASLMechanism: cfg.KafkaSASLMechanism,
		SASLUsername:  cfg.KafkaSASLUsername,
		SASLPassword:  cfg.KafkaSASLPassword,
	}
}
