package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/soteriapass/pswmgr/internal/flagx"
	"github.com/soteriapass/pswmgr/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for the token lifetime, which allows parsing both
// string values such as "12h" and integer nanoseconds.
//
// This struct is an intermediate DTO (Data Transfer Object) used only for
// reading JSON configuration files. After unmarshalling, its fields are
// copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	AuthAddr         string         `json:"auth_addr"`
	VaultAddr        string         `json:"vault_addr"`
	UserMgmtAddr     string         `json:"user_mgmt_addr"`
	DatabaseDSN      string         `json:"database_dsn"`
	CertFile         string         `json:"cert_file"`
	KeyFile          string         `json:"key_file"`
	CAFile           string         `json:"ca_file"`
	UserMgmtCertFile string         `json:"user_mgmt_cert_file"`
	UserMgmtKeyFile  string         `json:"user_mgmt_key_file"`
	TokenTTL         timex.Duration `json:"token_ttl"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.AuthAddr = c.AuthAddr
	config.VaultAddr = c.VaultAddr
	config.UserMgmtAddr = c.UserMgmtAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.CertFile = c.CertFile
	config.KeyFile = c.KeyFile
	config.CAFile = c.CAFile
	config.UserMgmtCertFile = c.UserMgmtCertFile
	config.UserMgmtKeyFile = c.UserMgmtKeyFile
	config.TokenTTL = time.Duration(c.TokenTTL.Duration)
}
