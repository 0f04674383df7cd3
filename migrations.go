// Package marketplace exposes repository-level assets shared by the binaries.
package marketplace

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
