package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	infrapg "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/postgres"
	pkgpostgres "github.com/georgchimion-oss/fraud-scout-lite/pkg/postgres"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back the embedded PostgreSQL migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return exitError(3, "DATABASE_URL or --database-url is required")
			}

			var err error
			if args[0] == "up" {
				err = pkgpostgres.RunEmbeddedMigrations(databaseURL, infrapg.Migrations, infrapg.MigrationsDir)
			} else {
				err = pkgpostgres.RollbackEmbeddedMigrations(databaseURL, infrapg.Migrations, infrapg.MigrationsDir)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrations %s complete\n", args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (default: DATABASE_URL)")
	return cmd
}
