package models

import (
	"time"

	"gorm.io/gorm"
)

// Coach is a public coaching profile, optionally linked to a platform user.
// JSON-ish fields (availability, specializations, ...) are stored as text.
type Coach struct {
	gorm.Model
	UserID          *uint   `gorm:"uniqueIndex"`
	Name            string  `gorm:"size:100"`
	Expertise       string  `gorm:"size:100"`
	Description     string  `gorm:"type:text"`
	ProfilePicture  string
	Email           string  `gorm:"uniqueIndex;not null"`
	PhoneNumber     string  `gorm:"size:15"`
	Location        string  `gorm:"size:100"`
	Availability    string  `gorm:"type:text"`
	Certifications  string  `gorm:"type:text"`
	Experience      string  `gorm:"type:text"`
	Rating          float64 `gorm:"default:0"`
	Specializations string  `gorm:"type:text"`
	Bio             string  `gorm:"type:text"`
	SocialMedia     string  `gorm:"type:text"`
	LanguagesSpoken string  `gorm:"type:text"`
	Nationality     string  `gorm:"size:30"`
	DateOfBirth     *time.Time
	Gender          string  `gorm:"size:10"`
	Country         string  `gorm:"size:30"`
	State           string  `gorm:"size:30"`
	City            string  `gorm:"size:30"`
}

// CoachRequest statuses
const (
	CoachRequestPending  = "pending"
	CoachRequestAccepted = "accepted"
	CoachRequestRejected = "rejected"
)

type CoachRequest struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	CoachID uint   `gorm:"index;not null"`
	Status  string `gorm:"size:20;default:'pending'"`
}
