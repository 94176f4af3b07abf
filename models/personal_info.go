package models

import (
	"time"

	"gorm.io/gorm"
)

// PersonalInformation is the user's one-to-one identity sheet.
type PersonalInformation struct {
	gorm.Model
	UserID            uint   `gorm:"uniqueIndex;not null"`
	ProfilePicture    string
	FirstName         string `gorm:"size:30"`
	MiddleName        string `gorm:"size:30"`
	LastName          string `gorm:"size:30"`
	PreferredFullName string `gorm:"size:60"`
	Email             string
	PhoneNumber       string `gorm:"size:15"`
	Nationality       string `gorm:"size:30"`
	DateOfBirth       *time.Time
	BirthName         string `gorm:"size:30"`
	MaritalStatus     string `gorm:"size:20"`
	Suffix            string `gorm:"size:10"`
	Gender            string `gorm:"size:10"`
	Country           string `gorm:"size:30"`
	State             string `gorm:"size:30"`
	City              string `gorm:"size:30"`
}
