// Package config loads runtime configuration for the accountkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string      storage backend: sqlite, postgres or memory
//	-f string      SQLite database file path
//	-d string      PostgreSQL DSN (pgx)
//	-hash string   password hashing scheme: sha256 or argon2id
//	-l string      log level: debug, info, warn or error
//
// # JSON schema
//
//	{
//	  "backend": "sqlite",
//	  "database_path": "users.db",
//	  "database_dsn": "postgres://...",
//	  "hash_scheme": "sha256",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds backend, storage and hashing settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
