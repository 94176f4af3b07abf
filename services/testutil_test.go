package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global DB for an in-memory sqlite instance and
// restores the previous one when the test finishes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Habit{},
		&models.SwotAnalysis{},
		&models.Strength{},
		&models.Weakness{},
		&models.Opportunity{},
		&models.Threat{},
		&models.Course{},
		&models.CoursePurchase{},
		&models.VideoLecture{},
		&models.Quiz{},
		&models.MoodTracking{},
		&models.Accomplishment{},
		&models.AccomplishmentShare{},
		&models.Conversation{},
		&models.ConversationParticipant{},
		&models.Message{},
	))

	prevDB, prevRedis := config.DB, config.Redis
	config.DB = db
	config.Redis = nil // cache helpers treat a nil client as a miss
	t.Cleanup(func() {
		config.DB = prevDB
		config.Redis = prevRedis
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Email: email, Password: "x", FirstName: "Test"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
