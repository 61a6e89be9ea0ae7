// Package migrations embeds the SQL schema migrations so the migrate
// binary needs no filesystem layout at deploy time.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
