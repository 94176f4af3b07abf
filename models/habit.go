package models

import (
	"time"

	"gorm.io/gorm"
)

// Habit categories
const (
	HabitCategoryHealth       = "health"
	HabitCategoryLearning     = "learning"
	HabitCategoryProductivity = "productivity"
	HabitCategoryMindfulness  = "mindfulness"
	HabitCategorySocial       = "social"
	HabitCategoryCareer       = "career"
)

// Habit frequencies
const (
	HabitFrequencyDaily   = "daily"
	HabitFrequencyWeekly  = "weekly"
	HabitFrequencyMonthly = "monthly"
)

// Habit priorities
const (
	HabitPriorityLow    = "low"
	HabitPriorityMedium = "medium"
	HabitPriorityHigh   = "high"
)

type Habit struct {
	gorm.Model
	UserID       uint    `gorm:"index;not null"`
	Name         string  `gorm:"size:200;not null"`
	Category     string  `gorm:"size:20"`
	Frequency    string  `gorm:"size:20;default:'daily'"`
	Priority     string  `gorm:"size:20;default:'medium'"`
	Description  string  `gorm:"type:text"`
	TargetValue  int     `gorm:"default:1"`
	Unit         string  `gorm:"size:50"`
	ReminderTime *string `gorm:"size:5"` // HH:MM, optional per-habit override
	IsActive     bool

	// Streak is never negative; LastCompleted, when set, is a day-start date
	// no later than today. Both are mutated only by complete/reset.
	Streak        int `gorm:"default:0"`
	LastCompleted *time.Time
}
