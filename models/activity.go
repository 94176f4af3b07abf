package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity types
const (
	ActivityPhysical = "physical"
	ActivityLearning = "learning"
	ActivityWork     = "work"
	ActivitySocial   = "social"
)

// Activity statuses
const (
	ActivityPlanned    = "planned"
	ActivityInProgress = "in_progress"
	ActivityCompleted  = "completed"
)

type Activity struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Title        string `gorm:"size:255;not null"`
	ActivityType string `gorm:"size:20;default:'physical'"`
	Date         *time.Time
	Duration     *uint // minutes
	Description  string `gorm:"type:text"`
	Status       string `gorm:"size:20;default:'planned'"`
	Timesheet    string `gorm:"type:text"`
}
