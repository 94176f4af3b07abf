package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string `gorm:"size:30"`
	LastName       string `gorm:"size:30"`
	ProfilePicture string
	Disabled       bool `gorm:"default:false"`
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
}
