// Package migrations embeds the client database schema, applied by goose at
// startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
