// Package migrations embeds the schema migration files. They are applied
// in lexical order, so new files take the next numeric prefix.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
