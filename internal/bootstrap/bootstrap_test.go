package bootstrap_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	infrakafka "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/kafka"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/messaging"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStorage_Memory(t *testing.T) {
	ctx := context.Background()
	store, err := bootstrap.OpenStorage(ctx, &config.Config{StorageBackend: config.BackendMemory}, discardLogger())
	require.NoError(t, err)
	defer store.Close()

	assert.Nil(t, store.Check)
	require.NoError(t, store.Companies.ReplaceAll(ctx, testutil.Companies()))
	list, err := store.Companies.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestOpenStorage_Redis(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)

	store, err := bootstrap.OpenStorage(ctx, &config.Config{
		StorageBackend: config.BackendRedis,
		RedisAddr:      srv.Addr(),
	}, discardLogger())
	require.NoError(t, err)

	require.NotNil(t, store.Check)
	assert.NoError(t, store.Check(ctx))

	settings, err := store.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)

	require.NoError(t, store.Close())
}

func TestOpenStorage_RedisUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := bootstrap.OpenStorage(context.Background(), &config.Config{
		StorageBackend: config.BackendRedis,
		RedisAddr:      addr,
	}, discardLogger())
	assert.ErrorContains(t, err, "redis")
}

func TestOpenStorage_Unsupported(t *testing.T) {
	_, err := bootstrap.OpenStorage(context.Background(), &config.Config{StorageBackend: "etcd"}, discardLogger())
	assert.ErrorContains(t, err, "etcd")
}

func TestOpenPublisher(t *testing.T) {
	pub, err := bootstrap.OpenPublisher(&config.Config{KafkaTopic: "fraudscout.events"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &messaging.LogPublisher{}, pub.EventPublisher)
	assert.NoError(t, pub.Close())

	pub, err = bootstrap.OpenPublisher(&config.Config{
		KafkaBrokers: []string{"localhost:9092"},
		KafkaTopic:   "fraudscout.events",
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &infrakafka.Publisher{}, pub.EventPublisher)
	assert.NoError(t, pub.Close())

	_, err = bootstrap.OpenPublisher(&config.Config{
		KafkaBrokers:       []string{"localhost:9092"},
		KafkaSASLMechanism: "GSSAPI",
	}, discardLogger())
	assert.Error(t, err)
}

func TestKafkaConfig(t *testing.T) {
	kc := bootstrap.KafkaConfig(&config.Config{
		KafkaBrokers:       []string{"k1:9092"},
		KafkaTLS:           true,
		KafkaSASLMechanism: "PLAIN",
		KafkaSASLUsername:  "svc",
		KafkaSASLPassword:  "pw",
	}, "tail")

	assert.Equal(t, []string{"k1:9092"}, kc.Brokers)
	assert.Equal(t, "tail", kc.ConsumerGroup)
	assert.True(t, kc.TLS)
	assert.True(t, kc.SASLEnabled)
	assert.Equal(t, "PLAIN", kc.SASLMechanism)
	assert.Equal(t, "svc", kc.SASLUsername)
}
