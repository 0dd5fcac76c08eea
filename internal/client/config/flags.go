package config

import (
	"flag"
	"os"

	"github.com/soteriapass/pswmgr/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   authentication endpoint address (default from Config)
//	-p string   password vault endpoint address (default from Config)
//	-m string   user management endpoint address (default from Config)
//	-o string   CA bundle for verifying the server certificate
//	-n string   expected server certificate name
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-m", "-o", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthAddr, "a", cfg.AuthAddr, "address and port of the authentication endpoint")
	fs.StringVar(&cfg.VaultAddr, "p", cfg.VaultAddr, "address and port of the password vault endpoint")
	fs.StringVar(&cfg.UserMgmtAddr, "m", cfg.UserMgmtAddr, "address and port of the user management endpoint")
	fs.StringVar(&cfg.CAFile, "o", cfg.CAFile, "CA bundle for server certificate verification")
	fs.StringVar(&cfg.ServerName, "n", cfg.ServerName, "expected server certificate name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
