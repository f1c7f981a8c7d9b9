package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/metrics"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/seed"
	grpcpresentation "github.com/georgchimion-oss/fraud-scout-lite/internal/presentation/grpc"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/presentation/rest"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/observability"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/tlsutil"
)

const serviceName = "fraudscout"

func main() {
	if err := run(); err != nil {
		slog.Error("fraudscoutd exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Env:     cfg.Environment,
	})

	logger.Info("starting fraudscoutd",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"storage", cfg.StorageBackend,
	)

	tracerProvider, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tracerProvider.Shutdown(shutdownCtx)
		}()
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
		SetGlobal:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	scoringMetrics, err := metrics.NewScoringMetrics(otel.Meter(serviceName))
	if err != nil {
		return fmt.Errorf("failed to register scoring metrics: %w", err)
	}

	connectCtx, connectCancel := context.WithTimeout(ctx, 15*time.Second)
	defer connectCancel()
	store, err := bootstrap.OpenStorage(connectCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, err := bootstrap.OpenPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	var jwtService *auth.JWTService
	if cfg.AuthEnabled() {
		jwtService, err = bootstrap.NewJWTService(cfg)
		if err != nil {
			return fmt.Errorf("failed to create JWT service: %w", err)
		}
		logger.Info("authentication enabled", slog.String("alg", jwtService.Algorithm()))
	}

	// Wire use cases.
	engine := service.NewScoringEngine()
	clock := usecase.SystemClock
	reset := usecase.NewResetDemoData(store.Companies, store.Assessments, store.Settings,
		seed.NewDatasets(), publisher, clock, logger)

	initialized, err := usecase.NewInitializeData(store.Companies, reset, cfg.DefaultDataset).Execute(connectCtx)
	if err != nil {
		return fmt.Errorf("failed to initialize demo data: %w", err)
	}
	if initialized.Seeded {
		logger.Info("seeded demo data", "dataset_version", initialized.DatasetVersion)
	}

	grpcUseCases := grpcpresentation.UseCases{
		ListCompanies:          usecase.NewListCompanies(store.Companies),
		GetCompany:             usecase.NewGetCompany(store.Companies),
		ListCompanyAssessments: usecase.NewListCompanyAssessments(store.Companies, store.Assessments),
		CreateAssessment:       usecase.NewCreateAssessment(store.Companies, store.Assessments, publisher, clock, logger),
		GetAssessment:          usecase.NewGetAssessment(store.Assessments),
		ScoreAssessment:        usecase.NewScoreAssessment(store.Assessments, engine, scoringMetrics, publisher, clock, logger),
		ReviewAssessment:       usecase.NewReviewAssessment(store.Assessments, publisher, clock, logger),
		PreviewScore:           usecase.NewPreviewScore(engine),
	}

	// gRPC server.
	grpcServer, err := grpcpresentation.NewServer(
		grpcpresentation.NewRiskAssessmentHandler(grpcUseCases, logger),
		grpcpresentation.ServerConfig{
			Address:     cfg.GRPCAddress(),
			TLSCertFile: cfg.TLSCertFile,
			TLSKeyFile:  cfg.TLSKeyFile,
			Reflection:  !cfg.IsProduction(),
		},
		logger,
		jwtService,
	)
	if err != nil {
		return err
	}

	// HTTP server.
	checks := map[string]rest.CheckFunc{}
	if store.Check != nil {
		checks[cfg.StorageBackend] = store.Check
	}
	restHandler := rest.NewHandler(rest.UseCases{
		ListCompanies:          grpcUseCases.ListCompanies,
		GetCompany:             grpcUseCases.GetCompany,
		ListCompanyAssessments: grpcUseCases.ListCompanyAssessments,
		CreateAssessment:       grpcUseCases.CreateAssessment,
		GetAssessment:          grpcUseCases.GetAssessment,
		ScoreAssessment:        grpcUseCases.ScoreAssessment,
		ReviewAssessment:       grpcUseCases.ReviewAssessment,
		PreviewScore:           grpcUseCases.PreviewScore,
		GetReferenceData:       usecase.NewGetReferenceData(),
		GetSettings:            usecase.NewGetSettings(store.Settings),
		ResetDemoData:          reset,
	}, logger)
	router := rest.NewRouter(restHandler, rest.NewHealthHandler(serviceName, checks, logger), rest.RouterConfig{
		JWTService:     jwtService,
		RateLimitRPS:   cfg.RateLimitRPS,
		Metrics:        metricsHandler,
		RequestTimeout: 10 * time.Second,
	}, logger)

	httpServer := rest.NewHTTPServer(cfg.HTTPAddress(), router, nil)
	if cfg.TLSEnabled() {
		tlsCfg, err := tlsutil.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load HTTP TLS config: %w", err)
		}
		httpServer.TLSConfig = tlsCfg
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress(), "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			// Certificates are already loaded into TLSConfig.
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("fraudscoutd started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
		"auth", cfg.AuthEnabled(),
	)

	// Wait for shutdown signal.
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("server error", "error", runErr)
	}

	// Graceful shutdown.
	logger.Info("shutting down fraudscoutd")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("fraudscoutd stopped")
	return runErr
}
