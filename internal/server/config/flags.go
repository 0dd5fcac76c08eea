package config

import (
	"flag"
	"os"
	"time"

	"github.com/soteriapass/pswmgr/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   authentication endpoint bind address (e.g., ":5000")
//	-p string   password vault endpoint bind address (e.g., ":5001")
//	-m string   user management endpoint bind address (e.g., ":5002")
//	-d string   credential store DSN
//	-r string   TLS certificate file
//	-k string   TLS private key file
//	-o string   CA bundle for verifying client certificates
//	-R string   user management TLS certificate file override
//	-K string   user management TLS private key file override
//	-t int      token lifetime, minutes
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The token lifetime flag is accepted as an integer in minutes and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-m", "-d", "-r", "-k", "-o", "-R", "-K", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.AuthAddr, "a", config.AuthAddr, "address and port of the authentication endpoint")
	fs.StringVar(&config.VaultAddr, "p", config.VaultAddr, "address and port of the password vault endpoint")
	fs.StringVar(&config.UserMgmtAddr, "m", config.UserMgmtAddr, "address and port of the user management endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "credential store DSN")
	fs.StringVar(&config.CertFile, "r", config.CertFile, "TLS certificate file")
	fs.StringVar(&config.KeyFile, "k", config.KeyFile, "TLS private key file")
	fs.StringVar(&config.CAFile, "o", config.CAFile, "CA bundle for client certificate verification")
	fs.StringVar(&config.UserMgmtCertFile, "R", config.UserMgmtCertFile, "user management TLS certificate file")
	fs.StringVar(&config.UserMgmtKeyFile, "K", config.UserMgmtKeyFile, "user management TLS private key file")

	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token_ttl (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
}
