package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodType tells whether a log or favorite points at the system
// catalog or at a user's custom foods.
type FoodType string

const (
	FoodTypeSystem FoodType = "system"
	FoodTypeCustom FoodType = "custom"
)

func (t FoodType) Valid() bool {
	return t == FoodTypeSystem || t == FoodTypeCustom
}

// Portion is one of the catalog portion sizes, or "single" for a
// custom food with only one serving.
type Portion string

const (
	PortionS      Portion = "S"
	PortionM      Portion = "M"
	PortionL      Portion = "L"
	PortionSingle Portion = "single"
)

func (p Portion) Valid() bool {
	switch p {
	case PortionS, PortionM, PortionL, PortionSingle:
		return true
	}
	return false
}

// FoodLog is one eaten item. Nutrition values are snapshotted at
// creation and never recomputed from the source food, so later edits
// or deletion of a custom food cannot corrupt history.
type FoodLog struct {
	ID           string   `gorm:"primaryKey" json:"id"`
	UserID       string   `gorm:"index;not null" json:"user_id"`
	FoodType     FoodType `gorm:"type:varchar(16);not null" json:"food_type"`
	FoodID       string   `gorm:"index;not null" json:"food_id"`
	Portion      Portion  `gorm:"type:varchar(8);not null" json:"portion"`
	NameSnapshot string   `gorm:"not null" json:"name_snapshot"`
	Kcal         float64  `json:"kcal"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Carbs        float64  `json:"carbs"`

	LoggedAt  time.Time      `gorm:"index;not null" json:"logged_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
