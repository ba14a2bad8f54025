package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string      storage backend: sqlite, postgres or memory
//	-f string      SQLite database file path
//	-d string      PostgreSQL DSN
//	-hash string   password hashing scheme: sha256 or argon2id
//	-l string      log level: debug, info, warn or error
//
// The hashing flag is spelled out because -h collides with the flag
// package's built-in help.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-d", "-hash", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite, postgres, memory)")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "SQLite database file path")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.HashScheme, "hash", cfg.HashScheme, "password hashing scheme (sha256, argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
