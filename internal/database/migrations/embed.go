// Package migrations embeds the goose SQL migrations for the record store.
package migrations

import "embed"

// FS holds every versioned migration, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
