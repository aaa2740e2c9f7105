package config

import (
	"flag"
	"os"

	"github.com/wpsaas/wpcloud/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address for the HTTP endpoint (default from Config)
//	-d string   PostgreSQL DSN
//	-k string   JWT signing secret
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port to bind the HTTP endpoint")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
