package migrations

import "embed"

// FS embeds the SQL migrations for the campaigns and campaign_analyses
// tables. golang-migrate reads them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 1
