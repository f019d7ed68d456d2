package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lia-dsgnr/calo-tracker/config"
	"github.com/lia-dsgnr/calo-tracker/models"
)

// newTestDB opens a private in-memory database per test. The single
// connection keeps the in-memory image alive for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user, err := NewUserService(db).Create("Test User")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// insertLog writes a log row directly, bypassing the daily cap, for
// tests that need controlled timestamps.
func insertLog(t *testing.T, db *gorm.DB, userID, foodID, name string, kcal float64, at time.Time) models.FoodLog {
	t.Helper()
	log := models.FoodLog{
		ID:           uuid.NewString(),
		UserID:       userID,
		FoodType:     models.FoodTypeSystem,
		FoodID:       foodID,
		Portion:      models.PortionM,
		NameSnapshot: name,
		Kcal:         kcal,
		Protein:      10,
		Fat:          5,
		Carbs:        20,
		LoggedAt:     at,
	}
	require.NoError(t, db.Create(&log).Error)
	return log
}
