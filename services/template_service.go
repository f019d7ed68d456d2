package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
)

type TemplateService struct{ db *gorm.DB }

func NewTemplateService(db *gorm.DB) *TemplateService { return &TemplateService{db: db} }

type TemplateItemInput struct {
	FoodType     models.FoodType `json:"food_type"`
	FoodID       string          `json:"food_id"`
	Portion      models.Portion  `json:"portion"`
	NameSnapshot string          `json:"name_snapshot"`
	Kcal         float64         `json:"kcal"`
	Protein      float64         `json:"protein"`
	Fat          float64         `json:"fat"`
	Carbs        float64         `json:"carbs"`
}

// Create saves a named bundle of food snapshots with a precomputed
// total kcal. The template and its items share one transaction.
func (s *TemplateService) Create(userID, name string, items []TemplateItemInput) (*models.MealTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("template name is required")
	}
	if len(items) == 0 {
		return nil, errors.New("template needs at least one item")
	}
	for i := range items {
		if !items[i].FoodType.Valid() {
			return nil, fmt.Errorf("item %d: invalid food type %q", i, items[i].FoodType)
		}
		if !items[i].Portion.Valid() {
			return nil, fmt.Errorf("item %d: invalid portion %q", i, items[i].Portion)
		}
	}

	tmpl := models.MealTemplate{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
	for _, in := range items {
		tmpl.TotalKcal += in.Kcal
		tmpl.Items = append(tmpl.Items, models.TemplateItem{
			TemplateID:   tmpl.ID,
			FoodType:     in.FoodType,
			FoodID:       in.FoodID,
			Portion:      in.Portion,
			NameSnapshot: in.NameSnapshot,
			Kcal:         in.Kcal,
			Protein:      in.Protein,
			Fat:          in.Fat,
			Carbs:        in.Carbs,
		})
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tmpl).Error
	}); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// GetByUser lists active templates with items, newest first.
func (s *TemplateService) GetByUser(userID string) ([]models.MealTemplate, error) {
	var tmpls []models.MealTemplate
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tmpls).Error
	return tmpls, err
}

// GetByID returns nil for missing or deleted templates.
func (s *TemplateService) GetByID(userID, id string) (*models.MealTemplate, error) {
	var tmpl models.MealTemplate
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&tmpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// Delete soft-deletes a template; its item rows stay for history.
func (s *TemplateService) Delete(userID, id string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.MealTemplate{}).Error
}

// Rename changes the display name of an active template. Returns nil
// when the template does not exist.
func (s *TemplateService) Rename(userID, id, name string) (*models.MealTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("template name is required")
	}

	tmpl, err := s.GetByID(userID, id)
	if err != nil || tmpl == nil {
		return nil, err
	}
	if err := s.db.Model(&models.MealTemplate{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return nil, err
	}
	tmpl.Name = name
	return tmpl, nil
}
