package models

import (
	"gorm.io/gorm"
)

type Note struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Title    string `gorm:"size:255;not null"`
	Content  string `gorm:"type:text"`
	Tags     string `gorm:"type:text"` // comma-joined
	IsPinned bool   `gorm:"default:false"`
}
