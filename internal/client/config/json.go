package config

import (
	"encoding/json"
	"os"

	"github.com/soteriapass/pswmgr/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	AuthAddr     string `json:"auth_addr"`
	VaultAddr    string `json:"vault_addr"`
	UserMgmtAddr string `json:"user_mgmt_addr"`
	CAFile       string `json:"ca_file"`
	ServerName   string `json:"server_name"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is taken from the -c or -config command-line flags via
// flagx.JsonConfigFlags(); if empty, no JSON is loaded. Panics on read
// or unmarshal errors.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.AuthAddr = jc.AuthAddr
	cfg.VaultAddr = jc.VaultAddr
	cfg.UserMgmtAddr = jc.UserMgmtAddr
	cfg.CAFile = jc.CAFile
	cfg.ServerName = jc.ServerName
}
