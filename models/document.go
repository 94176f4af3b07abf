package models

import (
	"gorm.io/gorm"
)

// Document types
var DocumentTypes = []string{
	"resume", "cover_letter", "portfolio", "education",
	"professional", "bank", "other",
}

type DocumentUpload struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	DocumentType string `gorm:"size:20;not null"`
	DocumentURL  string `gorm:"not null"` // S3 URL
}
