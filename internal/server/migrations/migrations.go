// Package migrations embeds the goose schema migrations for each supported
// dialect. Files for a dialect live under the directory of the same name.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)
