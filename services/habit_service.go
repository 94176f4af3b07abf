package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrHabitNotFound = errors.New("habit not found")

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time) bool {
	return dayStartLocal(a).Equal(dayStartLocal(b))
}

// nextStreak is the streak transition as a pure function of the previous
// state and the completion date: same day keeps the count (idempotent),
// the day after the last completion extends it, anything else restarts at 1.
func nextStreak(prevStreak int, lastCompleted *time.Time, today time.Time) int {
	if lastCompleted == nil {
		return 1
	}
	if sameDay(*lastCompleted, today) {
		return prevStreak
	}
	if dayStartLocal(*lastCompleted).AddDate(0, 0, 1).Equal(dayStartLocal(today)) {
		return prevStreak + 1
	}
	return 1
}

// CompleteHabit marks the habit done for `today`. Calling it twice on the
// same day is a no-op for the streak. Lookup is scoped to the owning user,
// so a foreign habit ID surfaces as ErrHabitNotFound before any mutation.
func CompleteHabit(userID, habitID uint, today time.Time) (*models.Habit, error) {
	var habit models.Habit
	err := config.DB.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	if habit.LastCompleted != nil && sameDay(*habit.LastCompleted, today) {
		return &habit, nil // already recorded today
	}

	habit.Streak = nextStreak(habit.Streak, habit.LastCompleted, today)
	start := dayStartLocal(today)
	habit.LastCompleted = &start

	if err := config.DB.Save(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// ResetHabitStreak zeroes the streak unconditionally. The completion date is
// left alone so the next completion still follows the date-delta rule.
func ResetHabitStreak(userID, habitID uint) (*models.Habit, error) {
	var habit models.Habit
	err := config.DB.Where("id = ? AND user_id = ?", habitID, userID).First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	habit.Streak = 0
	if err := config.DB.Save(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListHabits returns the user's habits, active first, newest within each group.
func ListHabits(userID uint, activeOnly bool) ([]models.Habit, error) {
	q := config.DB.Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var habits []models.Habit
	err := q.Order("is_active desc, created_at desc").Find(&habits).Error
	return habits, err
}
