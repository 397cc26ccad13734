package services

import (
	"testing"

	"github.com/animalfamily/animal-family-backend/internal/config"
	"github.com/animalfamily/animal-family-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Post{},
		&models.Adoption{},
		&models.Comment{},
		&models.Animal{},
		&models.Sound{},
		&models.Report{},
		&models.Like{},
		&models.Block{},
		&models.AdminMessage{},
	))

	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.ReportThreshold = 3
	cfg.DailyReportLimit = 10
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	user := models.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, ownerID uuid.UUID) models.Post {
	t.Helper()
	post := models.Post{
		OwnerID: ownerID,
		Caption: "a very good dog",
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func createTestAdoption(t *testing.T, db *gorm.DB, ownerID uuid.UUID) models.Adoption {
	t.Helper()
	listing := models.Adoption{
		OwnerID: ownerID,
		Title:   "tabby looking for a home",
		Species: "cat",
		Status:  "pending",
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}
