package tlsutil

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir))

	for _, name := range []string{"ca.pem", "ca-key.pem", "server.pem", "server-key.pem"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "server.pem"))
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost"}, cert.DNSNames)
	require.Len(t, cert.IPAddresses, 1)
	assert.Equal(t, "127.0.0.1", cert.IPAddresses[0].String())

	serverCfg, err := ServerConfig(filepath.Join(dir, "server.pem"), filepath.Join(dir, "server-key.pem"))
	require.NoError(t, err)
	assert.Len(t, serverCfg.Certificates, 1)

	creds, err := ServerTLSConfig(filepath.Join(dir, "server.pem"), filepath.Join(dir, "server-key.pem"))
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)

	clientCreds, err := ClientTLSConfig(filepath.Join(dir, "ca.pem"), false)
	require.NoError(t, err)
	assert.NotNil(t, clientCreds)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ServerConfig(filepath.Join(dir, "missing.pem"), filepath.Join(dir, "missing-key.pem"))
	assert.Error(t, err)

	_, err = ClientTLSConfig(filepath.Join(dir, "missing-ca.pem"), false)
	assert.Error(t, err)

	bogus := filepath.Join(dir, "bogus.pem")
	require.NoError(t, os.WriteFile(bogus, []byte("not pem"), 0o600))
	_, err = ClientTLSConfig(bogus, false)
	assert.ErrorContains(t, err, "failed to parse CA certificate")
}

func TestGenerateSelfSignedCert_ChainVerifies(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenerateSelfSignedCert([]string{"fraudscout.local"}, dir))

	clientCfg, err := ClientConfig(filepath.Join(dir, CAFile), false)
	require.NoError(t, err)
	require.NotNil(t, clientCfg.RootCAs)
	assert.False(t, clientCfg.InsecureSkipVerify)

	raw, err := os.ReadFile(filepath.Join(dir, ServerFile))
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)

	_, err = cert.Verify(x509.VerifyOptions{DNSName: "fraudscout.local", Roots: clientCfg.RootCAs})
	assert.NoError(t, err)

	_, err = cert.Verify(x509.VerifyOptions{DNSName: "other.local", Roots: clientCfg.RootCAs})
	assert.Error(t, err)
}

func TestClientConfig_SystemPool(t *testing.T) {
	cfg, err := ClientConfig("", true)
	require.NoError(t, err)
	assert.Nil(t, cfg.RootCAs)
	assert.True(t, cfg.InsecureSkipVerify)
}
