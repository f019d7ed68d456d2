package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/config"
	"github.com/lia-dsgnr/calo-tracker/models"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Create makes a profile with the default goals.
func (s *UserService) Create(name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = config.DefaultUserName
	}
	user := models.User{
		ID:               uuid.NewString(),
		Name:             name,
		DailyKcalGoal:    models.DefaultKcalGoal,
		DailyProteinGoal: models.DefaultProteinGoal,
		DailyCarbsGoal:   models.DefaultCarbsGoal,
		DailyFatGoal:     models.DefaultFatGoal,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns nil when no such profile exists.
func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Default returns the first profile, creating one when the database
// is new.
func (s *UserService) Default() (*models.User, error) {
	return config.EnsureDefaultUser(s.db)
}

// UpdateGoals replaces the four daily targets.
func (s *UserService) UpdateGoals(id string, goals models.DailyGoals) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}

	user.DailyKcalGoal = goals.DailyKcal
	user.DailyProteinGoal = goals.DailyProtein
	user.DailyCarbsGoal = goals.DailyCarbs
	user.DailyFatGoal = goals.DailyFat

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
