package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/pkg/search"
)

// MaxSearchResults caps a combined search result list.
const MaxSearchResults = 20

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// ---------- System catalog (read-only) ----------

func (s *FoodService) GetAllSystemFoods() ([]models.SystemFood, error) {
	var foods []models.SystemFood
	err := s.db.Order("name_vi ASC").Find(&foods).Error
	return foods, err
}

func (s *FoodService) GetSystemFoodsByCategory(category models.FoodCategory) ([]models.SystemFood, error) {
	var foods []models.SystemFood
	err := s.db.Where("category = ?", category).Order("name_vi ASC").Find(&foods).Error
	return foods, err
}

// GetSystemFoodByID returns nil when the id is not in the catalog.
func (s *FoodService) GetSystemFoodByID(id string) (*models.SystemFood, error) {
	var food models.SystemFood
	err := s.db.Where("id = ?", id).First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// SearchSystemFoods ranks the catalog against a query. The catalog is
// small enough to score in memory.
func (s *FoodService) SearchSystemFoods(query string) ([]search.Result, error) {
	foods, err := s.GetAllSystemFoods()
	if err != nil {
		return nil, err
	}
	items := make([]models.FoodItem, len(foods))
	for i := range foods {
		items[i] = foods[i].FoodItem()
	}
	return search.Rank(items, search.SanitizeQuery(query)), nil
}

// ---------- Custom foods ----------

type CustomFoodInput struct {
	Name    string   `json:"name"`
	Kcal    float64  `json:"kcal"`
	Protein *float64 `json:"protein,omitempty"`
	Carbs   *float64 `json:"carbs,omitempty"`
	Fat     *float64 `json:"fat,omitempty"`
}

// CreateCustomFood inserts a user food. Returns nil without error when
// the user already holds the maximum number of custom foods; the count
// check and insert share one transaction so concurrent creates cannot
// both slip under the cap.
func (s *FoodService) CreateCustomFood(userID string, in CustomFoodInput) (*models.CustomFood, error) {
	var created *models.CustomFood
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CustomFood{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count >= models.MaxCustomFoodsPerUser {
			return nil // limit reached, signalled by nil result
		}

		cf := models.CustomFood{
			ID:      uuid.NewString(),
			UserID:  userID,
			Name:    strings.TrimSpace(in.Name),
			Kcal:    in.Kcal,
			Protein: in.Protein,
			Carbs:   in.Carbs,
			Fat:     in.Fat,
		}
		if err := tx.Create(&cf).Error; err != nil {
			return err
		}
		created = &cf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCustomFood edits an active custom food. Returns nil when the
// row does not exist or is deleted. Existing log snapshots are not
// touched.
func (s *FoodService) UpdateCustomFood(userID, id string, in CustomFoodInput) (*models.CustomFood, error) {
	var cf models.CustomFood
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&cf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cf.Name = strings.TrimSpace(in.Name)
	cf.Kcal = in.Kcal
	cf.Protein = in.Protein
	cf.Carbs = in.Carbs
	cf.Fat = in.Fat

	if err := s.db.Save(&cf).Error; err != nil {
		return nil, err
	}
	return &cf, nil
}

// DeleteCustomFood soft-deletes. Idempotent: deleting a missing or
// already-deleted food succeeds silently.
func (s *FoodService) DeleteCustomFood(userID, id string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CustomFood{}).Error
}

func (s *FoodService) GetCustomFoodsByUser(userID string) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&foods).Error
	return foods, err
}

// GetCustomFoodByID returns nil for missing or soft-deleted rows.
// Callers holding an old log or favorite treat nil as "source
// deleted": the referencing row stays displayable from its snapshot.
func (s *FoodService) GetCustomFoodByID(id string) (*models.CustomFood, error) {
	var cf models.CustomFood
	err := s.db.Where("id = ?", id).First(&cf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

func (s *FoodService) GetCustomFoodCount(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.CustomFood{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *FoodService) SearchCustomFoods(userID, query string) ([]search.Result, error) {
	foods, err := s.GetCustomFoodsByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]models.FoodItem, len(foods))
	for i := range foods {
		items[i] = foods[i].FoodItem()
	}
	return search.Rank(items, search.SanitizeQuery(query)), nil
}

// ---------- Combined search ----------

// CombinedResult is one hit from searching system and custom foods
// together.
type CombinedResult struct {
	Food         models.FoodItem   `json:"food"`
	FoodType     models.FoodType   `json:"food_type"`
	MatchedField search.MatchField `json:"matched_field"`
}

// SearchAll scores system and custom foods independently, merges the
// two lists, applies the secondary exact/prefix/alphabetical ordering,
// and truncates to MaxSearchResults.
func (s *FoodService) SearchAll(userID, query string) ([]CombinedResult, error) {
	sanitized := search.SanitizeQuery(query)

	systemHits, err := s.SearchSystemFoods(sanitized)
	if err != nil {
		return nil, err
	}
	customHits, err := s.SearchCustomFoods(userID, sanitized)
	if err != nil {
		return nil, err
	}

	combined := make([]CombinedResult, 0, len(systemHits)+len(customHits))
	for _, hit := range systemHits {
		combined = append(combined, CombinedResult{Food: hit.Food, FoodType: models.FoodTypeSystem, MatchedField: hit.MatchedField})
	}
	for _, hit := range customHits {
		combined = append(combined, CombinedResult{Food: hit.Food, FoodType: models.FoodTypeCustom, MatchedField: hit.MatchedField})
	}

	ranker := search.NewRanker(sanitized)
	sort.SliceStable(combined, func(i, j int) bool {
		return ranker.Less(combined[i].Food.NameVi, combined[j].Food.NameVi)
	})

	if len(combined) > MaxSearchResults {
		combined = combined[:MaxSearchResults]
	}
	return combined, nil
}
