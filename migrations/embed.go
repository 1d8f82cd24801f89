// Package migrations embeds the goose migrations for every SQL dialect
package migrations

import "embed"

// FS holds one directory of migrations per dialect
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Directories inside FS
const (
	DirPostgres = "postgres"
	DirSQLite   = "sqlite"
)
