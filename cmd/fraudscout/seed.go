package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/seed"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/observability"
)

func newSeedCmd() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset demo data in the configured storage backend",
		Long: `Replaces all companies with the selected seed dataset, deletes every
assessment and records the dataset version. The backend is chosen by
STORAGE_BACKEND exactly as for fraudscoutd.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), dataset)
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "Dataset to load: A or B (default: DEFAULT_DATASET)")
	return cmd
}

func runSeed(ctx context.Context, out, logOut io.Writer, dataset string) error {
	cfg, err := config.Load()
	if err != nil {
		return exitError(3, "invalid configuration: %v", err)
	}
	if dataset == "" {
		dataset = cfg.DefaultDataset.String()
	}

	logger := observability.InitLogger(observability.LogConfig{
		Output:  logOut,
		Level:   cfg.LogLevel,
		Format:  "text",
		Service: "fraudscout-cli",
		Env:     cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	store, err := bootstrap.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, err := bootstrap.OpenPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	reset := usecase.NewResetDemoData(store.Companies, store.Assessments, store.Settings,
		seed.NewDatasets(), publisher, usecase.SystemClock, logger)
	resp, err := reset.Execute(ctx, dto.ResetDemoDataRequest{DatasetVersion: dataset})
	if err != nil {
		return err
	}

	logger.Debug("seed complete", slog.String("backend", cfg.StorageBackend))
	_, err = fmt.Fprintf(out, "loaded dataset %s (%d companies) into %s storage\n",
		resp.DatasetVersion, resp.CompanyCount, cfg.StorageBackend)
	return err
}
