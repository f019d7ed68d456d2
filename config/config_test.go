package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lia-dsgnr/calo-tracker/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestConnectIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calo.db")

	require.NoError(t, Connect(path))
	first := DB
	require.NotNil(t, first)
	t.Cleanup(func() { _ = Close() })

	// A second call keeps the live handle.
	require.NoError(t, Connect(path))
	assert.Same(t, first, DB)
}

func TestConnectSurvivesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calo.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o644))

	require.NoError(t, Connect(path))
	t.Cleanup(func() { _ = Close() })
	require.NotNil(t, DB)

	// The unreadable file was moved aside, not destroyed.
	_, err := os.Stat(path + ".corrupt")
	assert.NoError(t, err)

	// The fresh database is usable.
	var count int64
	require.NoError(t, DB.Model(&models.SystemFood{}).Count(&count).Error)
}

func TestMigrateRecordsSchemaVersion(t *testing.T) {
	db := openTestDB(t)

	version, err := StoredSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, models.SchemaVersion, version)

	// Re-running the migration leaves the marker alone.
	require.NoError(t, Migrate(db))
	version, err = StoredSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, models.SchemaVersion, version)
}

func TestMigrateKeepsNewerSchemaVersion(t *testing.T) {
	db := openTestDB(t)

	newer := models.SchemaVersion + 5
	require.NoError(t, db.Model(&models.SchemaMeta{}).
		Where("key = ?", models.SchemaVersionKey).
		Update("value", newer).Error)

	require.NoError(t, Migrate(db))
	version, err := StoredSchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, newer, version)
}

func TestSeedSystemFoodsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedSystemFoods(db))
	var first int64
	require.NoError(t, db.Model(&models.SystemFood{}).Count(&first).Error)
	assert.NotZero(t, first)

	require.NoError(t, SeedSystemFoods(db))
	var second int64
	require.NoError(t, db.Model(&models.SystemFood{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestSeedCatalogValues(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedSystemFoods(db))

	var pho models.SystemFood
	require.NoError(t, db.Where("id = ?", "pho-bo-tai").First(&pho).Error)
	assert.Equal(t, "Phở bò tái", pho.NameVi)
	assert.Equal(t, 420.0, pho.KcalM)
	assert.Equal(t, 28.0, pho.ProteinM)

	var banhMi models.SystemFood
	require.NoError(t, db.Where("id = ?", "banh-mi-thit").First(&banhMi).Error)
	assert.Equal(t, 350.0, banhMi.KcalM)

	// Every entry carries names in both languages and a category.
	var foods []models.SystemFood
	require.NoError(t, db.Find(&foods).Error)
	for _, f := range foods {
		assert.NotEmpty(t, f.NameVi, f.ID)
		assert.NotEmpty(t, f.NameEn, f.ID)
		assert.NotEmpty(t, f.Category, f.ID)
	}
}

func TestEnsureDefaultUser(t *testing.T) {
	db := openTestDB(t)

	user, err := EnsureDefaultUser(db)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, DefaultUserName, user.Name)
	assert.Equal(t, float64(models.DefaultKcalGoal), user.DailyKcalGoal)

	again, err := EnsureDefaultUser(db)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}
