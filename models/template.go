package models

import (
	"time"

	"gorm.io/gorm"
)

// MealTemplate is a named, reusable bundle of food items with a
// precomputed total kcal.
type MealTemplate struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Name      string         `gorm:"not null" json:"name"`
	TotalKcal float64        `json:"total_kcal"`
	Items     []TemplateItem `gorm:"foreignKey:TemplateID" json:"items"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TemplateItem snapshots one food of a template, same denormalized
// shape as a log entry.
type TemplateItem struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	TemplateID   string   `gorm:"index;not null" json:"template_id"`
	FoodType     FoodType `gorm:"type:varchar(16);not null" json:"food_type"`
	FoodID       string   `gorm:"not null" json:"food_id"`
	Portion      Portion  `gorm:"type:varchar(8);not null" json:"portion"`
	NameSnapshot string   `gorm:"not null" json:"name_snapshot"`
	Kcal         float64  `json:"kcal"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Carbs        float64  `json:"carbs"`
}
