// Package migrations embeds the goose schema migrations for the SQL record
// store backends.
package migrations

import "embed"

// Postgres holds migrations under the "postgres" directory.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds migrations under the "sqlite" directory.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
