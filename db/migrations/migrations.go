// Package migrations embeds SQL migration files stored in this directory.
// The golang-migrate library reads them via the iofs driver when applying
// migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate targets.
const Version = 1
