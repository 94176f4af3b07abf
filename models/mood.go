package models

import (
	"time"

	"gorm.io/gorm"
)

// Mood choices
var MoodChoices = []string{
	"Happy", "Excited", "Calm", "Focused",
	"Tired", "Stressed", "Anxious", "Frustrated",
}

// MoodTracking is one entry per user per day; Date is a day-start timestamp.
type MoodTracking struct {
	gorm.Model
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_mood_date"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_user_mood_date"`
	CurrentMood string    `gorm:"size:20;not null"`
	EnergyLevel int       // 1..10
	StressLevel int       // 1..10
	Notes       string    `gorm:"type:text"`
}
