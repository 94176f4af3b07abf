package models

import (
	"gorm.io/gorm"
)

// UserJob is a saved job posting the user is tracking.
type UserJob struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Title        string `gorm:"size:255;not null"`
	Company      string `gorm:"size:255"`
	Location     string `gorm:"size:255"`
	Category     string `gorm:"size:100"`
	ContractType string `gorm:"size:50"`
	Description  string `gorm:"type:text"`
}
