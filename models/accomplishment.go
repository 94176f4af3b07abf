package models

import (
	"time"

	"gorm.io/gorm"
)

// Accomplishment categories
var AccomplishmentCategories = []string{
	"professional", "academic", "personal", "certification",
	"award", "project", "publication", "volunteer",
}

type Accomplishment struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	Title         string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"size:20;default:'professional'"`
	Date          time.Time
	Impact        string `gorm:"type:text"`
	Evidence      string // S3 URL
	IsPublic      bool   `gorm:"default:false"`
	Tags          string `gorm:"type:text"` // comma-joined
	SkillsUsed    string `gorm:"type:text"` // comma-joined
	Metrics       string `gorm:"type:text"` // raw JSON
	ExternalLinks string `gorm:"type:text"` // comma-joined
}

// Share platforms
var SharePlatforms = []string{
	"linkedin", "twitter", "facebook", "email", "connections", "portfolio",
}

type AccomplishmentShare struct {
	gorm.Model
	AccomplishmentID uint   `gorm:"index;not null"`
	Platform         string `gorm:"size:20;not null"`
	Message          string `gorm:"type:text"`
	IsSuccessful     bool
}
