package models

import (
	"gorm.io/gorm"
)

// SwotAnalysis owns the four item tables. A fresh analysis is seeded with one
// default row per quadrant (see services.GetOrCreateSwot).
type SwotAnalysis struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	Strengths     []Strength    `gorm:"foreignKey:SwotAnalysisID"`
	Weaknesses    []Weakness    `gorm:"foreignKey:SwotAnalysisID"`
	Opportunities []Opportunity `gorm:"foreignKey:SwotAnalysisID"`
	Threats       []Threat      `gorm:"foreignKey:SwotAnalysisID"`
}

type Strength struct {
	gorm.Model
	SwotAnalysisID uint   `gorm:"index;not null"`
	Description    string `gorm:"type:text"`
}

type Weakness struct {
	gorm.Model
	SwotAnalysisID uint   `gorm:"index;not null"`
	Description    string `gorm:"type:text"`
}

type Opportunity struct {
	gorm.Model
	SwotAnalysisID uint   `gorm:"index;not null"`
	Description    string `gorm:"type:text"`
}

type Threat struct {
	gorm.Model
	SwotAnalysisID uint   `gorm:"index;not null"`
	Description    string `gorm:"type:text"`
}
