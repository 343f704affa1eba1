package migrations

import "embed"

// MigrationFiles holds one goose directory per dialect: postgres and sqlite3.
//
//go:embed postgres/*.sql sqlite3/*.sql
var MigrationFiles embed.FS
