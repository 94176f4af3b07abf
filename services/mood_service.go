package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrNoMoodToday = errors.New("no mood entry for today")

type MoodInput struct {
	CurrentMood string `json:"current_mood" binding:"required"`
	EnergyLevel int    `json:"energy_level" binding:"required,min=1,max=10"`
	StressLevel int    `json:"stress_level" binding:"required,min=1,max=10"`
	Notes       string `json:"notes"`
	Date        string `json:"date"` // YYYY-MM-DD, defaults to today
}

// RecordMood upserts the single entry allowed per user per day.
func RecordMood(userID uint, input MoodInput) (*models.MoodTracking, error) {
	date := dayStartLocal(time.Now())
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, errors.New("invalid date format. Use YYYY-MM-DD")
		}
		date = dayStartLocal(parsed)
	}

	mood := models.MoodTracking{
		UserID:      userID,
		Date:        date,
		CurrentMood: input.CurrentMood,
		EnergyLevel: input.EnergyLevel,
		StressLevel: input.StressLevel,
		Notes:       input.Notes,
	}

	// Upsert by (user_id, date @ local midnight)
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(mood).
		FirstOrCreate(&mood).Error
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

func TodayMood(userID uint) (*models.MoodTracking, error) {
	start := dayStartLocal(time.Now())

	var mood models.MoodTracking
	err := config.DB.Where("user_id = ? AND date = ?", userID, start).First(&mood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMoodToday
		}
		return nil, err
	}
	return &mood, nil
}

func MoodHistory(userID uint) ([]models.MoodTracking, error) {
	var moods []models.MoodTracking
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&moods).Error
	return moods, err
}
