package models

import "time"

// RecentSearch is a saved free-text query. Retention is bounded to the
// most recent MaxRecentSearches per user; older rows are pruned, not
// soft-deleted.
type RecentSearch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Term      string    `gorm:"not null" json:"term"`
	CreatedAt time.Time `json:"created_at"`
}
