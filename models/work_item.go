package models

import (
	"gorm.io/gorm"
)

// Work item types
const (
	WorkItemPost    = "post"
	WorkItemArticle = "article"
	WorkItemVideo   = "video"
	WorkItemJournal = "journal"
)

type WorkItem struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	WorkType    string `gorm:"size:10"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
}
