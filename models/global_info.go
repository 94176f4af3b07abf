package models

import (
	"gorm.io/gorm"
)

// GlobalInformation is the user's one-to-one availability/background sheet.
// List fields are stored comma-joined, link maps as raw JSON text.
type GlobalInformation struct {
	gorm.Model
	UserID                 uint   `gorm:"uniqueIndex;not null"`
	Nationality            string `gorm:"size:100;default:'Not Specified'"`
	CurrentLocation        string `gorm:"size:200;default:'Not Specified'"`
	Languages              string `gorm:"type:text"`
	TimeZone               string `gorm:"size:50;default:'UTC'"`
	Availability           string `gorm:"size:200;default:'Full-time'"`
	PreferredCommunication string `gorm:"size:100;default:'Email'"`
	SocialMediaLinks       string `gorm:"type:text"`
	HobbiesInterests       string `gorm:"type:text"`
	VolunteerWork          string `gorm:"type:text"`
	TravelExperience       string `gorm:"type:text"`
	CulturalBackground     string `gorm:"type:text"`
	DietaryPreferences     string `gorm:"size:200"`
}
