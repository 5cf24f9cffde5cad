// Package migrations embeds the goose migration scripts for the SQLite
// storage backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
