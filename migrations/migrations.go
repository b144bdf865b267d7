// Package migrations embeds the SQL migrations so they ship inside the binary.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
