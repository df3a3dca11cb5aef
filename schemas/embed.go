// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains SQL migration files, one directory per database dialect.
//
//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var Migrations embed.FS
