package bootstrap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/bootstrap"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
)

func writeKeyPair(t *testing.T) (privPath, pubPath string) {
	t.Helper()
	privPEM, pubPEM, err := auth.GenerateKeyPair()
	require.NoError(t, err)

	dir := t.TempDir()
	privPath = filepath.Join(dir, "jwt-private.pem")
	pubPath = filepath.Join(dir, "jwt-public.pem")
	require.NoError(t, os.WriteFile(privPath, privPEM, 0o600))
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0o600))
	return privPath, pubPath
}

func TestNewJWTService_Secret(t *testing.T) {
	svc, err := bootstrap.NewJWTService(&config.Config{JWTSecret: "s3cret", JWTIssuer: "fraudscout"})
	require.NoError(t, err)
	assert.Equal(t, "HS256", svc.Algorithm())
	assert.True(t, svc.CanSign())
}

func TestNewJWTService_KeyFiles(t *testing.T) {
	privPath, pubPath := writeKeyPair(t)

	issuer, err := bootstrap.NewJWTService(&config.Config{
		JWTSecret:         "ignored-when-keys-are-set",
		JWTIssuer:         "fraudscout",
		JWTPrivateKeyFile: privPath,
	})
	require.NoError(t, err)
	assert.Equal(t, "RS256", issuer.Algorithm())

	validator, err := bootstrap.NewJWTService(&config.Config{JWTIssuer: "fraudscout", JWTPublicKeyFile: pubPath})
	require.NoError(t, err)
	assert.False(t, validator.CanSign())

	token, err := issuer.GenerateToken("reviewer-2", []string{auth.RoleReviewer})
	require.NoError(t, err)
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(auth.RoleReviewer))
}

func TestNewJWTService_KeyFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := bootstrap.NewJWTService(&config.Config{JWTPrivateKeyFile: filepath.Join(dir, "missing.pem")})
	assert.ErrorContains(t, err, "read key file")

	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a key"), 0o600))
	_, err = bootstrap.NewJWTService(&config.Config{JWTPublicKeyFile: garbage})
	assert.ErrorContains(t, err, "no PEM block")
}
