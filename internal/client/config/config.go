// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the password manager CLI.
//
// Fields:
//   - AuthAddr / VaultAddr / UserMgmtAddr: host:port of the three
//     backend gRPC endpoints.
//   - CAFile: CA bundle used to verify the server certificate. Empty
//     means the system roots.
//   - ServerName: expected server certificate name; overrides the name
//     derived from the dial address (useful for self-signed setups).
type Config struct {
	AuthAddr     string
	VaultAddr    string
	UserMgmtAddr string
	CAFile       string
	ServerName   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthAddr = "127.0.0.1:5000"
	c.VaultAddr = "127.0.0.1:5001"
	c.UserMgmtAddr = "127.0.0.1:5002"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
