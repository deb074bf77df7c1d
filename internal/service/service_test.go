package service

import (
	"testing"

	"github.com/slimmom/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the full schema. The pool is
// pinned to one connection: every sqlite :memory: connection is a separate
// empty database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Diary{},
		&models.DiaryEntry{},
		&models.Summary{},
		&models.SummaryRecord{},
	))
	return db
}

// seedProduct inserts a catalog entry and returns it.
func seedProduct(t *testing.T, db *gorm.DB, title string, caloriesPer100g float64) *models.Product {
	t.Helper()

	p := &models.Product{Title: title, Calories: caloriesPer100g}
	require.NoError(t, db.Create(p).Error)
	return p
}
