package models

import "time"

// SchemaVersion is bumped only for additive changes (new tables or
// columns with defaults); the database file carries no other format
// guarantee.
const SchemaVersion = 1

// SchemaMeta is a single-row bookkeeping table recording the schema
// version that last wrote the database.
type SchemaMeta struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

const SchemaVersionKey = "schema_version"
