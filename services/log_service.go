package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lia-dsgnr/calo-tracker/models"
)

type LogService struct{ db *gorm.DB }

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

// LogInput carries everything needed to record one eaten item. The
// nutrition values are the snapshot: they are stored verbatim and
// never recomputed from the source food.
type LogInput struct {
	FoodType     models.FoodType `json:"food_type"`
	FoodID       string          `json:"food_id"`
	Portion      models.Portion  `json:"portion"`
	NameSnapshot string          `json:"name_snapshot"`
	Kcal         float64         `json:"kcal"`
	Protein      float64         `json:"protein"`
	Fat          float64         `json:"fat"`
	Carbs        float64         `json:"carbs"`
}

func (in *LogInput) validate() error {
	if !in.FoodType.Valid() {
		return fmt.Errorf("invalid food type %q", in.FoodType)
	}
	if !in.Portion.Valid() {
		return fmt.Errorf("invalid portion %q", in.Portion)
	}
	if in.FoodID == "" {
		return errors.New("food id is required")
	}
	if in.NameSnapshot == "" {
		return errors.New("name snapshot is required")
	}
	return nil
}

// Create records one log entry. Returns nil without error when the
// user already has the maximum number of logs for the day; the count
// and insert share one transaction.
func (s *LogService) Create(userID string, in LogInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	var created *models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		count, err := countLogsForDay(tx, userID, now)
		if err != nil {
			return err
		}
		if count >= models.MaxLogsPerDay {
			return nil // daily limit reached
		}

		log := newLog(userID, in, now)
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		created = &log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// LogTemplate records every item of a template in one transaction:
// either all items become logs or none do. Returns nil without error
// when the batch would push the day past the limit.
func (s *LogService) LogTemplate(userID string, tmpl *models.MealTemplate) ([]models.FoodLog, error) {
	if len(tmpl.Items) == 0 {
		return nil, errors.New("template has no items")
	}

	now := time.Now()
	var created []models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		count, err := countLogsForDay(tx, userID, now)
		if err != nil {
			return err
		}
		if count+int64(len(tmpl.Items)) > models.MaxLogsPerDay {
			return nil
		}

		for _, item := range tmpl.Items {
			in := LogInput{
				FoodType:     item.FoodType,
				FoodID:       item.FoodID,
				Portion:      item.Portion,
				NameSnapshot: item.NameSnapshot,
				Kcal:         item.Kcal,
				Protein:      item.Protein,
				Fat:          item.Fat,
				Carbs:        item.Carbs,
			}
			if err := in.validate(); err != nil {
				return err // rolls back every item of the batch
			}
			log := newLog(userID, in, now)
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
			created = append(created, log)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func newLog(userID string, in LogInput, at time.Time) models.FoodLog {
	return models.FoodLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		FoodType:     in.FoodType,
		FoodID:       in.FoodID,
		Portion:      in.Portion,
		NameSnapshot: in.NameSnapshot,
		Kcal:         in.Kcal,
		Protein:      in.Protein,
		Fat:          in.Fat,
		Carbs:        in.Carbs,
		LoggedAt:     at,
	}
}

func countLogsForDay(tx *gorm.DB, userID string, day time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.FoodLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, dayStart(day), dayStart(day).AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

// Delete soft-deletes a log (the "undo" path). Idempotent.
func (s *LogService) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.FoodLog{}).Error
}

// Restore clears the soft-delete marker on a log, the redo half of
// undo. Returns nil without error when the id is unknown or when
// restoring would push the log's day past the daily limit; restoring
// an active log returns it unchanged.
func (s *LogService) Restore(id string) (*models.FoodLog, error) {
	var restored *models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var log models.FoodLog
		err := tx.Unscoped().Where("id = ?", id).First(&log).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !log.DeletedAt.Valid {
			restored = &log
			return nil
		}

		count, err := countLogsForDay(tx, log.UserID, log.LoggedAt)
		if err != nil {
			return err
		}
		if count >= models.MaxLogsPerDay {
			return nil
		}

		if err := tx.Unscoped().Model(&models.FoodLog{}).
			Where("id = ?", id).
			Update("deleted_at", nil).Error; err != nil {
			return err
		}
		log.DeletedAt = gorm.DeletedAt{}
		restored = &log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restored, nil
}

// PruneOldLogs hard-deletes logs, soft-deleted ones included, whose
// logged-at falls before the retention window. Keeps the database file
// bounded; run at startup.
func (s *LogService) PruneOldLogs(days int) (int64, error) {
	if days <= 0 {
		days = models.LogRetentionDays
	}
	cutoff := dayStart(time.Now()).AddDate(0, 0, -days)
	res := s.db.Unscoped().Where("logged_at < ?", cutoff).Delete(&models.FoodLog{})
	return res.RowsAffected, res.Error
}

// GetByID returns nil for missing or deleted logs.
func (s *LogService) GetByID(id string) (*models.FoodLog, error) {
	var log models.FoodLog
	err := s.db.Where("id = ?", id).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetForDate returns the day's logs, most recent first.
func (s *LogService) GetForDate(userID string, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, dayStart(date), dayStart(date).AddDate(0, 0, 1)).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *LogService) GetToday(userID string) ([]models.FoodLog, error) {
	return s.GetForDate(userID, time.Now())
}

// GetRecent returns logs from the trailing window of whole days,
// most recent first.
func (s *LogService) GetRecent(userID string, days int) ([]models.FoodLog, error) {
	if days <= 0 {
		days = 7
	}
	since := dayStart(time.Now()).AddDate(0, 0, -(days - 1))
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

// FoodFrequency is one row of the recall ranking: how often a food was
// logged inside a trailing window.
type FoodFrequency struct {
	FoodType models.FoodType `json:"food_type"`
	FoodID   string          `json:"food_id"`
	Name     string          `json:"name"`
	LogCount int64           `json:"log_count"`
}

// GetMostLogged aggregates log counts per food over the trailing
// window. Backs the favorites grid ordering and suggestions.
func (s *LogService) GetMostLogged(userID string, days, limit int) ([]FoodFrequency, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = models.MaxRecentItems
	}
	since := dayStart(time.Now()).AddDate(0, 0, -(days - 1))

	var rows []FoodFrequency
	err := s.db.Model(&models.FoodLog{}).
		Select("food_type, food_id, MAX(name_snapshot) AS name, COUNT(*) AS log_count").
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Group("food_type, food_id").
		Order("log_count DESC, MAX(logged_at) DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
