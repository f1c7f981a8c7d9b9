package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/tlsutil"
)

func newDevCertsCmd() *cobra.Command {
	var (
		outDir  string
		hosts   []string
		jwtKeys bool
	)

	cmd := &cobra.Command{
		Use:   "dev-certs",
		Short: "Generate a self-signed CA and server certificate for local TLS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tlsutil.GenerateSelfSignedCert(hosts, outDir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"wrote %s, %s and %s to %s\nset TLS_CERT_FILE=%s TLS_KEY_FILE=%s\n",
				tlsutil.CAFile, tlsutil.ServerFile, tlsutil.ServerKeyFile, outDir,
				filepath.Join(outDir, tlsutil.ServerFile), filepath.Join(outDir, tlsutil.ServerKeyFile))
			if err != nil || !jwtKeys {
				return err
			}
			return writeJWTKeys(cmd.OutOrStdout(), outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "certs", "Output directory")
	cmd.Flags().StringSliceVar(&hosts, "host", []string{"localhost", "127.0.0.1"}, "Host name or IP for the server certificate (may be repeated)")
	cmd.Flags().BoolVar(&jwtKeys, "jwt", false, "Also write an RS256 key pair for JWT_PRIVATE_KEY_FILE and JWT_PUBLIC_KEY_FILE")
	return cmd
}

const (
	jwtPrivateKeyFile = "jwt-private.pem"
	jwtPublicKeyFile  = "jwt-public.pem"
)

func writeJWTKeys(out io.Writer, dir string) error {
	privPEM, pubPEM, err := auth.GenerateKeyPair()
	if err != nil {
		return err
	}
	privPath := filepath.Join(dir, jwtPrivateKeyFile)
	pubPath := filepath.Join(dir, jwtPublicKeyFile)
	if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", privPath, err)
	}
	if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pubPath, err)
	}
	_, err = fmt.Fprintf(out, "set JWT_PRIVATE_KEY_FILE=%s JWT_PUBLIC_KEY_FILE=%s\n", privPath, pubPath)
	return err
}
