package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "fraudscout",
		Short:         "Score company fraud risk and operate the fraud scout service",
		Version:       model.AppVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envFile == "" {
				return config.LoadDotEnv()
			}
			return config.LoadDotEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Load variables from this .env file (default: .env if present)")

	root.AddCommand(
		newScoreCmd(),
		newSeedCmd(),
		newMigrateCmd(),
		newEventsCmd(),
		newTokenCmd(),
		newDevCertsCmd(),
	)
	return root
}

// exitErr carries a specific process exit code.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
