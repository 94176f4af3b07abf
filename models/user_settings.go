package models

import (
	"time"

	"gorm.io/gorm"
)

// UserSettings holds per-user notification preferences. One row per user,
// created lazily on first access.
type UserSettings struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null"`
	EmailNotifications bool
	PushNotifications  bool
	ReminderTime       string `gorm:"size:5;default:'09:00'"` // HH:MM, local time
	DarkMode           bool

	// LastReminderSent is the date gate for the daily reminder sweep:
	// at most one reminder is recorded per user per calendar day.
	LastReminderSent *time.Time
}
