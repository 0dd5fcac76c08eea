package tlsx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestKeyPair(t *testing.T, dir string) (certFile, keyFile string) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "pswmgr.test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, pub, priv)
	require.NoError(t, err)

	keyDER, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	certFile = filepath.Join(dir, "server.crt")
	keyFile = filepath.Join(dir, "server.key")
	require.NoError(t, os.WriteFile(certFile,
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile,
		pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certFile, keyFile
}

func TestServerCredentials(t *testing.T) {
	dir := t.TempDir()
	certFile, keyFile := writeTestKeyPair(t, dir)

	t.Run("valid pair", func(t *testing.T) {
		creds, err := ServerCredentials(certFile, keyFile, "")
		require.NoError(t, err)
		assert.Equal(t, "tls", creds.Info().SecurityProtocol)
	})

	t.Run("valid pair with ca", func(t *testing.T) {
		creds, err := ServerCredentials(certFile, keyFile, certFile)
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("missing files", func(t *testing.T) {
		_, err := ServerCredentials(filepath.Join(dir, "nope.crt"), keyFile, "")
		assert.Error(t, err)
	})

	t.Run("bad ca bundle", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.pem")
		require.NoError(t, os.WriteFile(bad, []byte("not pem"), 0o600))
		_, err := ServerCredentials(certFile, keyFile, bad)
		assert.Error(t, err)
	})
}

func TestClientCredentials(t *testing.T) {
	dir := t.TempDir()
	certFile, _ := writeTestKeyPair(t, dir)

	t.Run("system roots", func(t *testing.T) {
		creds, err := ClientCredentials("", "")
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("ca bundle with server name", func(t *testing.T) {
		creds, err := ClientCredentials(certFile, "pswmgr.test")
		require.NoError(t, err)
		assert.Equal(t, "pswmgr.test", creds.Info().ServerName)
	})

	t.Run("missing ca bundle", func(t *testing.T) {
		_, err := ClientCredentials(filepath.Join(dir, "nope.pem"), "")
		assert.Error(t, err)
	})
}
