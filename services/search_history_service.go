package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
	"github.com/lia-dsgnr/calo-tracker/pkg/search"
)

type SearchHistoryService struct{ db *gorm.DB }

func NewSearchHistoryService(db *gorm.DB) *SearchHistoryService {
	return &SearchHistoryService{db: db}
}

// Add saves a search term. Re-searching an existing term moves it to
// the top instead of duplicating it, and retention is pruned to the
// most recent MaxRecentSearches rows. Blank terms are ignored.
func (s *SearchHistoryService) Add(userID, term string) (*models.RecentSearch, error) {
	term = search.SanitizeQuery(term)
	if strings.TrimSpace(term) == "" {
		return nil, nil
	}

	var created models.RecentSearch
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND term = ?", userID, term).
			Delete(&models.RecentSearch{}).Error; err != nil {
			return err
		}

		created = models.RecentSearch{UserID: userID, Term: term}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		keep := tx.Model(&models.RecentSearch{}).
			Select("id").
			Where("user_id = ?", userID).
			Order("created_at DESC, id DESC").
			Limit(models.MaxRecentSearches)
		return tx.Where("user_id = ? AND id NOT IN (?)", userID, keep).
			Delete(&models.RecentSearch{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Recent lists saved searches, newest first.
func (s *SearchHistoryService) Recent(userID string) ([]models.RecentSearch, error) {
	var rows []models.RecentSearch
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(models.MaxRecentSearches).
		Find(&rows).Error
	return rows, err
}

// Delete removes one saved search. Idempotent.
func (s *SearchHistoryService) Delete(id uint) error {
	return s.db.Delete(&models.RecentSearch{}, id).Error
}

// Clear removes every saved search for a user.
func (s *SearchHistoryService) Clear(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.RecentSearch{}).Error
}
