// Package migrations holds the embedded SQL migration files applied at
// startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
