// Package migrations embeds the goose SQL migrations shipped with the
// binary, one directory per supported dialect.
package migrations

import "embed"

//go:embed sqlite postgres
var Migrations embed.FS
