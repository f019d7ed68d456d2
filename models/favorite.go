package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite pins a food for fast recall. At most one active favorite
// exists per (user, food_type, food_id); the favorite service is the
// correctness boundary for that invariant, not the schema.
type Favorite struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	UserID    string   `gorm:"index;not null" json:"user_id"`
	FoodType  FoodType `gorm:"type:varchar(16);not null" json:"food_type"`
	FoodID    string   `gorm:"index;not null" json:"food_id"`
	SortOrder int      `json:"sort_order"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
