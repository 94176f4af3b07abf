package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMood(t *testing.T) {
	t.Run("second entry the same day overwrites", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "mood@example.com")

		first, err := RecordMood(user.ID, MoodInput{
			CurrentMood: "Happy", EnergyLevel: 8, StressLevel: 2, Date: "2026-03-10",
		})
		require.NoError(t, err)

		second, err := RecordMood(user.ID, MoodInput{
			CurrentMood: "Tired", EnergyLevel: 3, StressLevel: 6, Date: "2026-03-10",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		var count int64
		require.NoError(t, db.Model(&models.MoodTracking{}).Where("user_id = ?", user.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		var stored models.MoodTracking
		require.NoError(t, db.First(&stored, first.ID).Error)
		assert.Equal(t, "Tired", stored.CurrentMood)
		assert.Equal(t, 3, stored.EnergyLevel)
	})

	t.Run("different days are separate entries", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "mood@example.com")

		_, err := RecordMood(user.ID, MoodInput{CurrentMood: "Calm", EnergyLevel: 5, StressLevel: 5, Date: "2026-03-10"})
		require.NoError(t, err)
		_, err = RecordMood(user.ID, MoodInput{CurrentMood: "Focused", EnergyLevel: 7, StressLevel: 3, Date: "2026-03-11"})
		require.NoError(t, err)

		history, err := MoodHistory(user.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "Focused", history[0].CurrentMood) // newest first
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "mood@example.com")

		_, err := RecordMood(user.ID, MoodInput{CurrentMood: "Happy", EnergyLevel: 5, StressLevel: 5, Date: "10-03-2026"})
		assert.Error(t, err)
	})
}

func TestTodayMood(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "mood@example.com")

	_, err := TodayMood(user.ID)
	assert.ErrorIs(t, err, ErrNoMoodToday)

	_, err = RecordMood(user.ID, MoodInput{CurrentMood: "Happy", EnergyLevel: 8, StressLevel: 2})
	require.NoError(t, err)

	mood, err := TodayMood(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Happy", mood.CurrentMood)
}
