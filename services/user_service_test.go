package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSettings(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "settings@example.com")

	settings, err := GetOrCreateSettings(user.ID)
	require.NoError(t, err)
	assert.True(t, settings.EmailNotifications)
	assert.True(t, settings.PushNotifications)
	assert.Equal(t, "09:00", settings.ReminderTime)
	assert.Nil(t, settings.LastReminderSent)

	again, err := GetOrCreateSettings(user.ID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpdateSettings(t *testing.T) {
	t.Run("partial update touches only the given fields", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "settings@example.com")

		settings, err := UpdateSettings(user.ID, SettingsInput{
			ReminderTime: strPtr("21:30"),
			DarkMode:     boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "21:30", settings.ReminderTime)
		assert.True(t, settings.DarkMode)
		assert.True(t, settings.EmailNotifications) // untouched default
	})

	t.Run("bad reminder time is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "settings@example.com")

		_, err := UpdateSettings(user.ID, SettingsInput{ReminderTime: strPtr("9 o'clock")})
		assert.Error(t, err)

		settings, err := GetOrCreateSettings(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "09:00", settings.ReminderTime)
	})

	t.Run("disabling email notifications excludes the user from the sweep", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "settings@example.com")
		createTestHabit(t, db, user.ID, 0, nil)

		_, err := UpdateSettings(user.ID, SettingsInput{EmailNotifications: boolPtr(false)})
		require.NoError(t, err)

		mailer := &fakeMailer{}
		nineAM := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Empty(t, mailer.sent)
	})
}
