// Package cli provides the interactive accountkeeper command-line tool.
//
// It wires configuration, a storage backend, the account service, and an
// interactive REPL. Typical flow: pick a backend from config, run migrations,
// and execute user commands until exit.
//
// Key features:
//   - Register an account (email + password, stored inactive)
//   - Activate an account
//   - Login (credential check against active accounts)
//   - Reset a password
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
