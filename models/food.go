package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodCategory groups catalog entries for the category tabs.
type FoodCategory string

const (
	CategoryNoodles     FoodCategory = "noodles"
	CategoryRice        FoodCategory = "rice"
	CategoryBanhMi      FoodCategory = "banh_mi"
	CategorySnacks      FoodCategory = "snacks"
	CategoryDrinks      FoodCategory = "drinks"
	CategoryDesserts    FoodCategory = "desserts"
	CategoryCleanEating FoodCategory = "clean_eating"
)

// PortionNutrition holds the nutrition values of one portion size.
type PortionNutrition struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

// SystemFood is an immutable catalog entry with S/M/L portion
// snapshots. Seeded once at first run, never mutated by users.
type SystemFood struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	NameVi     string       `gorm:"not null;index" json:"name_vi"`
	NameEn     string       `gorm:"not null" json:"name_en"`
	Category   FoodCategory `gorm:"type:varchar(32);index;not null" json:"category"`
	Serving    string       `json:"serving"`    // e.g. "1 bowl (450g)"
	Confidence float64      `json:"confidence"` // data confidence 0-1

	KcalS    float64 `json:"kcal_s"`
	ProteinS float64 `json:"protein_s"`
	FatS     float64 `json:"fat_s"`
	CarbsS   float64 `json:"carbs_s"`
	KcalM    float64 `json:"kcal_m"`
	ProteinM float64 `json:"protein_m"`
	FatM     float64 `json:"fat_m"`
	CarbsM   float64 `json:"carbs_m"`
	KcalL    float64 `json:"kcal_l"`
	ProteinL float64 `json:"protein_l"`
	FatL     float64 `json:"fat_l"`
	CarbsL   float64 `json:"carbs_l"`

	CreatedAt time.Time `json:"created_at"`
}

// CustomFood is a user-authored single-portion food. Soft-deleted rows
// stay referenced by old logs and favorites; their nutrition lives on
// in the log snapshots, not here.
type CustomFood struct {
	ID      string   `gorm:"primaryKey" json:"id"`
	UserID  string   `gorm:"index;not null" json:"user_id"`
	Name    string   `gorm:"not null" json:"name"`
	Kcal    float64  `json:"kcal"`
	Protein *float64 `json:"protein,omitempty"`
	Carbs   *float64 `json:"carbs,omitempty"`
	Fat     *float64 `json:"fat,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Portions groups the three catalog portion snapshots.
type Portions struct {
	S PortionNutrition `json:"S"`
	M PortionNutrition `json:"M"`
	L PortionNutrition `json:"L"`
}

// FoodItem is the unified food shape consumed by UI collaborators.
// Custom foods carry identical S/M/L values, which signals "single
// portion" to the portion picker.
type FoodItem struct {
	ID         string       `json:"id"`
	NameVi     string       `json:"name_vi"`
	NameEn     string       `json:"name_en"`
	Category   FoodCategory `json:"category"`
	Portions   Portions     `json:"portions"`
	Serving    string       `json:"serving"`
	Confidence float64      `json:"confidence"`
}

// Portion returns the nutrition snapshot for the given portion size.
// Unknown sizes fall back to M.
func (f *SystemFood) Portion(p Portion) PortionNutrition {
	switch p {
	case PortionS:
		return PortionNutrition{Kcal: f.KcalS, Protein: f.ProteinS, Fat: f.FatS, Carbs: f.CarbsS}
	case PortionL:
		return PortionNutrition{Kcal: f.KcalL, Protein: f.ProteinL, Fat: f.FatL, Carbs: f.CarbsL}
	default:
		return PortionNutrition{Kcal: f.KcalM, Protein: f.ProteinM, Fat: f.FatM, Carbs: f.CarbsM}
	}
}

func (f *SystemFood) FoodItem() FoodItem {
	return FoodItem{
		ID:         f.ID,
		NameVi:     f.NameVi,
		NameEn:     f.NameEn,
		Category:   f.Category,
		Serving:    f.Serving,
		Confidence: f.Confidence,
		Portions: Portions{
			S: f.Portion(PortionS),
			M: f.Portion(PortionM),
			L: f.Portion(PortionL),
		},
	}
}

// Nutrition returns the single-portion snapshot, with unset macros as zero.
func (c *CustomFood) Nutrition() PortionNutrition {
	n := PortionNutrition{Kcal: c.Kcal}
	if c.Protein != nil {
		n.Protein = *c.Protein
	}
	if c.Carbs != nil {
		n.Carbs = *c.Carbs
	}
	if c.Fat != nil {
		n.Fat = *c.Fat
	}
	return n
}

func (c *CustomFood) FoodItem() FoodItem {
	n := c.Nutrition()
	return FoodItem{
		ID:         c.ID,
		NameVi:     c.Name,
		NameEn:     c.Name,
		Confidence: 1,
		Portions:   Portions{S: n, M: n, L: n},
	}
}
