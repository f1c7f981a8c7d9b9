// Package tlsutil loads TLS material for the fraud scout gRPC and HTTP
// listeners and generates development certificates.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"
)

const minVersion = tls.VersionTLS12

// ServerConfig loads a certificate and key into a tls.Config shared by the
// HTTP and gRPC listeners.
func ServerConfig(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: minVersion}, nil
}

// ServerTLSConfig is ServerConfig wrapped as gRPC transport credentials.
func ServerTLSConfig(certFile, keyFile string) (credentials.TransportCredentials, error) {
	cfg, err := ServerConfig(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(cfg), nil
}

// ClientConfig trusts caFile when given and the system pool otherwise.
// skipVerify is for local development against dev-certs output.
func ClientConfig(caFile string, skipVerify bool) (*tls.Config, error) {
	cfg := &tls.Config{
		MinVersion:         minVersion,
		InsecureSkipVerify: skipVerify, //nolint:gosec // opt-in flag
	}
	if caFile == "" {
		return cfg, nil
	}

	pool, err := loadCertPool(caFile)
	if err != nil {
		return nil, err
	}
	cfg.RootCAs = pool
	return cfg, nil
}

// ClientTLSConfig is ClientConfig wrapped as gRPC transport credentials.
func ClientTLSConfig(caFile string, skipVerify bool) (credentials.TransportCredentials, error) {
	cfg, err := ClientConfig(caFile, skipVerify)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(cfg), nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("tlsutil: failed to parse CA certificate from %s", caFile)
	}
	return pool, nil
}
