package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.AuthAddr, ":5000")
	assert.Equal(t, c.VaultAddr, ":5001")
	assert.Equal(t, c.UserMgmtAddr, ":5002")
	assert.Equal(t, c.DatabaseDSN, "pswmgr.db")
	assert.Equal(t, c.CertFile, "server.crt")
	assert.Equal(t, c.KeyFile, "server.key")
	assert.Equal(t, c.CAFile, "")
	assert.Equal(t, c.UserMgmtCertFile, "")
	assert.Equal(t, c.UserMgmtKeyFile, "")
	assert.Equal(t, c.TokenTTL, 12*time.Hour)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.AuthAddr, ":5000")
	assert.Equal(t, c.VaultAddr, ":5001")
	assert.Equal(t, c.UserMgmtAddr, ":5002")
	assert.Equal(t, c.DatabaseDSN, "pswmgr.db")
	assert.Equal(t, c.CertFile, "server.crt")
	assert.Equal(t, c.KeyFile, "server.key")
	assert.Equal(t, c.TokenTTL, 12*time.Hour)
}
