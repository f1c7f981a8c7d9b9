package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "fraudscout-test",
		Expiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.GenerateToken("analyst-7", []string{RoleAnalyst, RoleReviewer})
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "analyst-7", claims.Subject)
	assert.Equal(t, []string{RoleAnalyst, RoleReviewer}, claims.Roles)
	assert.Equal(t, "fraudscout-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestRSAModes(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{PrivateKeyPEM: string(privPEM), Issuer: "fraudscout-test"})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{PublicKeyPEM: string(pubPEM), Issuer: "fraudscout-test"})
	require.NoError(t, err)

	tokenString, err := issuer.GenerateToken("analyst-1", []string{RoleAdmin})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(RoleAdmin))

	_, err = validator.GenerateToken("analyst-1", nil)
	assert.ErrorIs(t, err, ErrValidationOnly)
	assert.True(t, issuer.CanSign())
	assert.False(t, validator.CanSign())
	assert.Equal(t, "RS256", validator.Algorithm())

	hmac := newTestJWTService(t)
	hmacToken, err := hmac.GenerateToken("analyst-1", nil)
	require.NoError(t, err)
	_, err = validator.ValidateToken(hmacToken)
	assert.Error(t, err, "an HS256 token must not validate against an RSA key")
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{Issuer: "fraudscout-test"})
	assert.Error(t, err)

	_, err = NewJWTService(JWTConfig{PrivateKeyPEM: "not a key"})
	assert.Error(t, err)
}

func TestNewJWTService_DefaultExpiration(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "s"})
	require.NoError(t, err)

	tokenString, err := svc.GenerateToken("analyst-1", nil)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultExpiration), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Rejections(t *testing.T) {
	expired, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "fraudscout-test",
		Expiration: -1 * time.Hour,
	})
	require.NoError(t, err)
	otherSecret, err := NewJWTService(JWTConfig{Secret: "secret-two", Issuer: "fraudscout-test"})
	require.NoError(t, err)
	otherIssuer, err := NewJWTService(JWTConfig{Secret: "test-secret-key-for-unit-tests", Issuer: "someone-else"})
	require.NoError(t, err)

	svc := newTestJWTService(t)

	tests := []struct {
		name   string
		issuer *JWTService
		sub    string
	}{
		{name: "expired", issuer: expired, sub: "analyst-1"},
		{name: "invalid signature", issuer: otherSecret, sub: "analyst-1"},
		{name: "wrong issuer", issuer: otherIssuer, sub: "analyst-1"},
		{name: "no subject", issuer: svc, sub: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := tt.issuer.GenerateToken(tt.sub, []string{RoleAnalyst})
			require.NoError(t, err)

			_, err = svc.ValidateToken(tokenString)
			assert.Error(t, err)
		})
	}

	_, err = svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestLoadKeyFromFile(t *testing.T) {
	privPEM, _, err := GenerateKeyPair()
	require.NoError(t, err)
	dir := t.TempDir()

	good := filepath.Join(dir, "jwt-private.pem")
	require.NoError(t, os.WriteFile(good, privPEM, 0o600))
	loaded, err := LoadKeyFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, string(privPEM), loaded)

	svc, err := NewJWTService(JWTConfig{PrivateKeyPEM: loaded})
	require.NoError(t, err)
	assert.True(t, svc.CanSign())

	bad := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(bad, []byte("hello"), 0o600))
	_, err = LoadKeyFromFile(bad)
	assert.ErrorContains(t, err, "no PEM block")

	_, err = LoadKeyFromFile(filepath.Join(dir, "missing.pem"))
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	claims := Claims{Roles: []string{RoleAdmin, RoleReviewer}}

	assert.True(t, claims.HasRole(RoleAdmin))
	assert.True(t, claims.HasRole(RoleReviewer))
	assert.False(t, claims.HasRole(RoleAnalyst))
	assert.False(t, claims.HasRole("nonexistent"))
}

func TestClaimsFromContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	expected := &Claims{Roles: []string{RoleAnalyst}}
	expected.Subject = "analyst-3"

	got, ok := ClaimsFromContext(ContextWithClaims(context.Background(), expected))
	require.True(t, ok)
	assert.Same(t, expected, got)
}
