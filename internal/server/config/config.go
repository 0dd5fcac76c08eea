// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/soteriapass/pswmgr/internal/server/auth"
)

// Config holds runtime settings for the password manager server.
//
// Fields:
//   - AuthAddr / VaultAddr / UserMgmtAddr: bind addresses for the three
//     gRPC endpoints (authentication, password vault, user management).
//   - DatabaseDSN: credential store DSN. "postgres://" selects pgx;
//     anything else is treated as a SQLite file path.
//   - CertFile / KeyFile: TLS certificate pair shared by the endpoints.
//   - CAFile: optional CA bundle used to verify client certificates.
//   - UserMgmtCertFile / UserMgmtKeyFile: optional certificate pair used
//     only by the user management endpoint instead of the shared one.
//   - TokenTTL: lifetime of issued authentication tokens.
type Config struct {
	AuthAddr         string
	VaultAddr        string
	UserMgmtAddr     string
	DatabaseDSN      string
	CertFile         string
	KeyFile          string
	CAFile           string
	UserMgmtCertFile string
	UserMgmtKeyFile  string
	TokenTTL         time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.AuthAddr = ":5000"
	c.VaultAddr = ":5001"
	c.UserMgmtAddr = ":5002"
	c.DatabaseDSN = "pswmgr.db"
	c.CertFile = "server.crt"
	c.KeyFile = "server.key"
	c.TokenTTL = auth.DefaultTokenTTL
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
