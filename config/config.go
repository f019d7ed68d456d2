package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lia-dsgnr/calo-tracker/models"
)

// DB is the process-wide database handle. Repositories borrow it per
// call and never cache it. Guarded by a single connection, so at most
// one logical operation touches the live handle at a time.
var DB *gorm.DB

const DefaultDBPath = "calo.db"

// MustInit loads the environment and opens the database, exiting on
// failure. Intended for main(); tests use Connect directly.
func MustInit() {
	// .env is optional for a local app
	_ = godotenv.Load()

	path := os.Getenv("CALO_DB_PATH")
	if path == "" {
		path = DefaultDBPath
	}

	if err := Connect(path); err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
}

// Connect opens the embedded database at path. Idempotent: subsequent
// calls return immediately while a handle is live. A saved file that
// cannot be read is moved aside and replaced with a fresh database,
// since a load failure must not block app start.
func Connect(path string) error {
	if DB != nil {
		return nil
	}

	db, err := open(path)
	if err != nil {
		if !isFileBacked(path) {
			return err
		}
		// Corrupted image: move it aside and start fresh.
		log.Printf("Saved database unreadable (%v), starting fresh", err)
		if renameErr := os.Rename(path, path+".corrupt"); renameErr != nil {
			return fmt.Errorf("failed to move corrupt database aside: %w", renameErr)
		}
		db, err = open(path)
		if err != nil {
			return err
		}
	}

	DB = db
	return nil
}

func open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serializes every operation on the live handle.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func isFileBacked(path string) bool {
	if path == ":memory:" || path == "file::memory:" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Migrate applies the additive schema and records the schema version.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.SystemFood{},
		&models.CustomFood{},
		&models.FoodLog{},
		&models.Favorite{},
		&models.RecentSearch{},
		&models.MealTemplate{},
		&models.TemplateItem{},
		&models.SchemaMeta{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return writeSchemaVersion(db)
}

// writeSchemaVersion records the current schema version. A newer
// stored version is left untouched: changes are additive only, so an
// older binary can still read the file.
func writeSchemaVersion(db *gorm.DB) error {
	var meta models.SchemaMeta
	err := db.Where("key = ?", models.SchemaVersionKey).First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&models.SchemaMeta{
			Key:   models.SchemaVersionKey,
			Value: models.SchemaVersion,
		}).Error
	case err != nil:
		return err
	}

	if meta.Value < models.SchemaVersion {
		meta.Value = models.SchemaVersion
		return db.Save(&meta).Error
	}
	return nil
}

// StoredSchemaVersion reads the schema version recorded in the file.
func StoredSchemaVersion(db *gorm.DB) (int, error) {
	var meta models.SchemaMeta
	if err := db.Where("key = ?", models.SchemaVersionKey).First(&meta).Error; err != nil {
		return 0, err
	}
	return meta.Value, nil
}

// Close tears down the live handle. Used by tests and on shutdown.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	DB = nil
	return sqlDB.Close()
}
