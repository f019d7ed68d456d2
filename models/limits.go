package models

// Per-user capacity limits. Services enforce these with a count check
// inside the same transaction as the insert; hitting a limit is an
// expected condition signalled by a nil return, never an error.
const (
	MaxFavoritesPerUser   = 20
	MaxCustomFoodsPerUser = 30
	MaxLogsPerDay         = 30
	MaxRecentSearches     = 10
	MaxRecentItems        = 8
)

// LogRetentionDays bounds the log table: rows logged before this
// window are hard-deleted at startup, soft-deleted ones included.
const LogRetentionDays = 90
