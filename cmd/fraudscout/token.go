package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		roles   []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT signed with JWT_SECRET or JWT_PRIVATE_KEY_FILE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return exitError(3, "invalid configuration: %v", err)
			}
			if !cfg.AuthEnabled() {
				return exitError(3, "JWT_SECRET or JWT_PRIVATE_KEY_FILE is not set")
			}
			for _, r := range roles {
				if r != auth.RoleAnalyst && r != auth.RoleReviewer && r != auth.RoleAdmin {
					return exitError(3, "unknown role %q", r)
				}
			}

			svc, err := bootstrap.NewJWTService(cfg)
			if err != nil {
				return exitError(3, "%v", err)
			}
			if !svc.CanSign() {
				return exitError(3, "JWT_PUBLIC_KEY_FILE only validates tokens; set JWT_PRIVATE_KEY_FILE to mint them")
			}
			token, err := svc.GenerateToken(subject, roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "dev", "Token subject")
	cmd.Flags().StringSliceVar(&roles, "role", []string{auth.RoleAnalyst}, "Role to grant (analyst, reviewer, admin; may be repeated)")
	return cmd
}
