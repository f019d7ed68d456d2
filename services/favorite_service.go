package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
)

type FavoriteService struct{ db *gorm.DB }

func NewFavoriteService(db *gorm.DB) *FavoriteService { return &FavoriteService{db: db} }

// Add pins a food. Idempotent: an already-favorited food returns the
// existing row. Returns nil without error at the 20-favorite cap; the
// uniqueness lookup, count, and insert share one transaction since the
// schema carries no unique constraint over active rows.
func (s *FavoriteService) Add(userID string, foodType models.FoodType, foodID string) (*models.Favorite, error) {
	var result *models.Favorite
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := getFavorite(tx, userID, foodType, foodID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		var count int64
		if err := tx.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count >= models.MaxFavoritesPerUser {
			return nil // limit reached
		}

		var maxOrder *int
		if err := tx.Model(&models.Favorite{}).
			Where("user_id = ?", userID).
			Select("MAX(sort_order)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		sortOrder := 0
		if maxOrder != nil {
			sortOrder = *maxOrder + 1
		}

		fav := models.Favorite{
			ID:        uuid.NewString(),
			UserID:    userID,
			FoodType:  foodType,
			FoodID:    foodID,
			SortOrder: sortOrder,
		}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		result = &fav
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func getFavorite(tx *gorm.DB, userID string, foodType models.FoodType, foodID string) (*models.Favorite, error) {
	var fav models.Favorite
	err := tx.Where("user_id = ? AND food_type = ? AND food_id = ?", userID, foodType, foodID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Get returns the active favorite for (user, type, food), or nil.
func (s *FavoriteService) Get(userID string, foodType models.FoodType, foodID string) (*models.Favorite, error) {
	return getFavorite(s.db, userID, foodType, foodID)
}

// GetByID returns nil for missing or removed favorites.
func (s *FavoriteService) GetByID(id string) (*models.Favorite, error) {
	var fav models.Favorite
	err := s.db.Where("id = ?", id).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// GetByUser lists active favorites in sort order.
func (s *FavoriteService) GetByUser(userID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := s.db.Where("user_id = ?", userID).Order("sort_order ASC").Find(&favs).Error
	return favs, err
}

func (s *FavoriteService) IsFavorited(userID string, foodType models.FoodType, foodID string) (bool, error) {
	fav, err := s.Get(userID, foodType, foodID)
	return fav != nil, err
}

// Remove soft-deletes. Idempotent: removing a non-favorite is a no-op.
func (s *FavoriteService) Remove(userID string, foodType models.FoodType, foodID string) error {
	return s.db.
		Where("user_id = ? AND food_type = ? AND food_id = ?", userID, foodType, foodID).
		Delete(&models.Favorite{}).Error
}

// Toggle removes when present, adds otherwise. Returns the favorite
// when one was added, nil when removed, so callers can sync UI state.
func (s *FavoriteService) Toggle(userID string, foodType models.FoodType, foodID string) (*models.Favorite, error) {
	existing, err := s.Get(userID, foodType, foodID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, s.Remove(userID, foodType, foodID)
	}
	return s.Add(userID, foodType, foodID)
}

// Count counts active favorites only.
func (s *FavoriteService) Count(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Reorder rewrites sort positions to follow orderedIDs.
func (s *FavoriteService) Reorder(userID string, orderedIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			err := tx.Model(&models.Favorite{}).
				Where("id = ? AND user_id = ?", id, userID).
				Update("sort_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
