// Package migrations embeds the goose SQL migrations applied at startup.
// The DDL is kept dialect-neutral so the same files run on both PostgreSQL
// and SQLite.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
