package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	infrakafka "github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/kafka"
	grpcpresentation "github.com/georgchimion-oss/fraud-scout-lite/internal/presentation/grpc"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
	pkgkafka "github.com/georgchimion-oss/fraud-scout-lite/pkg/kafka"
)

var envKeys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "STORAGE_BACKEND", "DATABASE_URL", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRATION", "TLS_CERT_FILE", "TLS_KEY_FILE", "DEFAULT_DATASET",
	"JWT_PRIVATE_KEY_FILE", "JWT_PUBLIC_KEY_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitErr
	require.True(t, errors.As(err, &ee), "expected exitErr, got %v", err)
	return ee.code
}

func TestScore_Text(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "score", "--factor", "Rapid Growth", "--country", "United States", "--band", "$1M - $10M")
	require.NoError(t, err)
	assert.Equal(t, `Risk score: 20 (Low)
Reasons:
  - Rapid Growth (+10 points)
  - Revenue band $1M - $10M (+10 points)
Red flags: none
`, out)
}

func TestScore_JSON(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "score", "--format", "json",
		"--factor", "Regulatory Issues", "--factor", "Offshore Entities", "--factor", "High Cash Transactions",
		"--country", "Cayman Islands", "--band", "$100M - $1B")
	require.NoError(t, err)

	var result dto.ScoringResultResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 100, result.RiskScore)
	assert.Equal(t, "Critical", result.RiskTier)
	assert.Equal(t, []string{
		"Operations in high-risk jurisdiction: Cayman Islands",
		"Multiple severe risk factors identified",
	}, result.RedFlags)
}

func TestScore_FailOn(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "score", "--factor", "Complex Ownership", "--factor", "Related Party Transactions",
		"--country", "Singapore", "--band", "$10M - $100M", "--fail-on", "Medium")
	require.Error(t, err)
	assert.Equal(t, exitCodeThreshold, exitCode(t, err))
	assert.Contains(t, out, "Risk score: 45 (Medium)")

	_, err = execute(t, "score", "--band", "< $1M", "--fail-on", "Medium")
	assert.NoError(t, err)

	_, err = execute(t, "score", "--fail-on", "Severe")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestScore_InvalidFormat(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "score", "--format", "yaml")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestScore_Remote(t *testing.T) {
	clearEnv(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := grpcpresentation.NewRiskAssessmentHandler(grpcpresentation.UseCases{
		PreviewScore: usecase.NewPreviewScore(service.NewScoringEngine()),
	}, logger)
	srv, err := grpcpresentation.NewServer(handler, grpcpresentation.ServerConfig{}, logger, nil)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	out, err := execute(t, "score", "--server", lis.Addr().String(),
		"--factor", "Offshore Entities", "--factor", "Offshore Entities",
		"--country", "Panama", "--band", "> $1B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Risk score: 85 (Critical)\n"), out)
	assert.Contains(t, out, "  ! Operations in high-risk jurisdiction: Panama\n")
}

func TestToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "alice", "--role", "reviewer", "--role", "admin")
	require.NoError(t, err)

	svc, err := auth.NewJWTService(auth.JWTConfig{Secret: "cli-secret", Issuer: "fraudscout"})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"reviewer", "admin"}, claims.Roles)
}

func TestToken_Errors(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "token")
	assert.Equal(t, 3, exitCode(t, err))

	t.Setenv("JWT_SECRET", "cli-secret")
	_, err = execute(t, "token", "--role", "superuser")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestToken_RSAKeyFiles(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "certs")

	out, err := execute(t, "dev-certs", "--out", dir, "--jwt")
	require.NoError(t, err)
	privPath := filepath.Join(dir, "jwt-private.pem")
	pubPath := filepath.Join(dir, "jwt-public.pem")
	assert.Contains(t, out, "JWT_PRIVATE_KEY_FILE="+privPath)

	t.Setenv("JWT_PRIVATE_KEY_FILE", privPath)
	out, err = execute(t, "token", "--subject", "bob", "--role", "admin")
	require.NoError(t, err)

	pubPEM, err := auth.LoadKeyFromFile(pubPath)
	require.NoError(t, err)
	validator, err := auth.NewJWTService(auth.JWTConfig{PublicKeyPEM: pubPEM, Issuer: "fraudscout"})
	require.NoError(t, err)
	claims, err := validator.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)

	t.Setenv("JWT_PRIVATE_KEY_FILE", "")
	t.Setenv("JWT_PUBLIC_KEY_FILE", pubPath)
	_, err = execute(t, "token")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestDevCerts(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "certs")

	out, err := execute(t, "dev-certs", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)

	for _, name := range []string{"ca.pem", "server.pem", "server-key.pem"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSeed_Memory(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "memory")

	out, err := execute(t, "seed", "--dataset", "B")
	require.NoError(t, err)
	assert.Equal(t, "loaded dataset B (10 companies) into memory storage\n", out)

	_, err = execute(t, "seed", "--dataset", "Z")
	assert.Error(t, err)
}

func TestMigrate_Args(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "migrate", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "migrate", "up")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestEventsTail_RequiresBrokers(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "events", "tail")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestWriteEvent(t *testing.T) {
	msg := pkgkafka.Message{
		Key:   []byte("a-1"),
		Value: []byte(`{"assessment_id":"a-1"}`),
		Headers: map[string]string{
			infrakafka.HeaderEventType:  "fraudscout.assessment.scored",
			infrakafka.HeaderOccurredAt: "2024-05-01T10:00:00Z",
		},
	}

	var text bytes.Buffer
	require.NoError(t, writeEvent(&text, "text", msg))
	assert.True(t, strings.HasPrefix(text.String(), "2024-05-01T10:00:00Z  fraudscout.assessment.scored"))
	assert.True(t, strings.HasSuffix(text.String(), `a-1  {"assessment_id":"a-1"}`+"\n"))

	var js bytes.Buffer
	require.NoError(t, writeEvent(&js, "json", pkgkafka.Message{Key: []byte("k"), Value: []byte("not json")}))
	assert.JSONEq(t, `{"key":"k","event_type":"","occurred_at":"","payload":"not json"}`, js.String())
}
