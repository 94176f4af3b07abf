package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestHabit(t *testing.T, db *gorm.DB, userID uint, streak int, lastCompleted *time.Time) *models.Habit {
	t.Helper()

	habit := models.Habit{
		UserID:        userID,
		Name:          "Morning run",
		Category:      models.HabitCategoryHealth,
		Frequency:     models.HabitFrequencyDaily,
		Priority:      models.HabitPriorityMedium,
		TargetValue:   1,
		IsActive:      true,
		Streak:        streak,
		LastCompleted: lastCompleted,
	}
	require.NoError(t, db.Create(&habit).Error)
	return &habit
}

func TestNextStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)

	t.Run("first completion starts at one", func(t *testing.T) {
		assert.Equal(t, 1, nextStreak(0, nil, today))
	})

	t.Run("same day keeps the count", func(t *testing.T) {
		assert.Equal(t, 5, nextStreak(5, &today, today))
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		assert.Equal(t, 6, nextStreak(5, &yesterday, today))
	})

	t.Run("gap restarts at one", func(t *testing.T) {
		assert.Equal(t, 1, nextStreak(12, &lastWeek, today))
	})

	t.Run("time of day is irrelevant", func(t *testing.T) {
		lateYesterday := time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local)
		earlyToday := time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local)
		assert.Equal(t, 4, nextStreak(3, &lateYesterday, earlyToday))
	})
}

func TestCompleteHabit(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)

	t.Run("double completion on one day is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "runner@example.com")
		habit := createTestHabit(t, db, user.ID, 0, nil)

		first, err := CompleteHabit(user.ID, habit.ID, today)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Streak)

		second, err := CompleteHabit(user.ID, habit.ID, today.Add(5*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, second.Streak)
		assert.True(t, second.LastCompleted.Equal(*first.LastCompleted))
	})

	t.Run("streak grows across consecutive days", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "runner@example.com")
		habit := createTestHabit(t, db, user.ID, 0, nil)

		for i := 0; i < 4; i++ {
			updated, err := CompleteHabit(user.ID, habit.ID, today.AddDate(0, 0, i))
			require.NoError(t, err)
			assert.Equal(t, i+1, updated.Streak)
		}
	})

	t.Run("missed day resets to one", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "runner@example.com")
		twoDaysAgo := dayStartLocal(today.AddDate(0, 0, -2))
		habit := createTestHabit(t, db, user.ID, 9, &twoDaysAgo)

		updated, err := CompleteHabit(user.ID, habit.ID, today)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Streak)
	})

	t.Run("last completed is stored at day start", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "runner@example.com")
		habit := createTestHabit(t, db, user.ID, 0, nil)

		updated, err := CompleteHabit(user.ID, habit.ID, today)
		require.NoError(t, err)
		require.NotNil(t, updated.LastCompleted)
		assert.True(t, updated.LastCompleted.Equal(dayStartLocal(today)))
	})

	t.Run("foreign habit id is not found", func(t *testing.T) {
		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		other := createTestUser(t, db, "other@example.com")
		habit := createTestHabit(t, db, owner.ID, 3, nil)

		_, err := CompleteHabit(other.ID, habit.ID, today)
		assert.ErrorIs(t, err, ErrHabitNotFound)

		// untouched
		var reloaded models.Habit
		require.NoError(t, db.First(&reloaded, habit.ID).Error)
		assert.Equal(t, 3, reloaded.Streak)
	})
}

func TestResetHabitStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)

	t.Run("reset zeroes but keeps the completion date", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "runner@example.com")
		yesterday := dayStartLocal(today.AddDate(0, 0, -1))
		habit := createTestHabit(t, db, user.ID, 7, &yesterday)

		updated, err := ResetHabitStreak(user.ID, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Streak)
		require.NotNil(t, updated.LastCompleted)

		// completion the next day still follows the date rule: 0 -> 1
		after, err := CompleteHabit(user.ID, habit.ID, today)
		require.NoError(t, err)
		assert.Equal(t, 1, after.Streak)
	})

	t.Run("reset of a foreign habit is not found", func(t *testing.T) {
		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		other := createTestUser(t, db, "other@example.com")
		habit := createTestHabit(t, db, owner.ID, 7, nil)

		_, err := ResetHabitStreak(other.ID, habit.ID)
		assert.ErrorIs(t, err, ErrHabitNotFound)
	})
}

func TestListHabits(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "runner@example.com")

	active := createTestHabit(t, db, user.ID, 0, nil)
	inactive := createTestHabit(t, db, user.ID, 0, nil)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	all, err := ListHabits(user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := ListHabits(user.ID, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)
}
