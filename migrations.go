// Package pylintd holds assets shared by the binaries of the module.
package pylintd

import "embed"

// Migrations are the goose migrations of the service tables, applied by
// `pylintd migrate`.
//
//go:embed migrations/*.sql
var Migrations embed.FS
