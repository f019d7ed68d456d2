package models

import (
	"time"
)

// User is a local profile. There is no authentication; one default
// profile is created at first run, but every table is keyed by user id
// so the schema stays multi-user capable.
type User struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	DailyKcalGoal    float64 `json:"daily_kcal_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbsGoal   float64 `json:"daily_carbs_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyGoals is the goals object handed to UI collaborators.
type DailyGoals struct {
	DailyKcal    float64 `json:"daily_kcal"`
	DailyProtein float64 `json:"daily_protein"`
	DailyCarbs   float64 `json:"daily_carbs"`
	DailyFat     float64 `json:"daily_fat"`
}

// Default targets applied to a freshly created profile.
const (
	DefaultKcalGoal    = 1800
	DefaultProteinGoal = 75
	DefaultCarbsGoal   = 200
	DefaultFatGoal     = 60
)

func (u *User) Goals() DailyGoals {
	return DailyGoals{
		DailyKcal:    u.DailyKcalGoal,
		DailyProtein: u.DailyProteinGoal,
		DailyCarbs:   u.DailyCarbsGoal,
		DailyFat:     u.DailyFatGoal,
	}
}
