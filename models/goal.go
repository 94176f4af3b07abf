package models

import (
	"time"

	"gorm.io/gorm"
)

// MainGoal categories
const (
	GoalCategorySpiritual    = "spiritual"
	GoalCategoryFitness      = "fitness"
	GoalCategoryFamily       = "family"
	GoalCategoryCareer       = "career"
	GoalCategoryFinancial    = "financial"
	GoalCategorySocial       = "social"
	GoalCategoryIntellectual = "intellectual"
)

type MainGoal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:20"`
	StartDate   time.Time
	EndDate     time.Time
	Status      string  `gorm:"size:50"`
	Weightage   float64 `gorm:"default:1"`

	SubGoals []SubGoal `gorm:"foreignKey:MainGoalID"`
}

type SubGoal struct {
	gorm.Model
	MainGoalID     uint   `gorm:"index;not null"`
	Name           string `gorm:"size:255;not null"`
	Description    string `gorm:"type:text"`
	StartDate      time.Time
	EndDate        time.Time
	Status         string  `gorm:"size:50"`
	RequiredEffort float64 `gorm:"default:0"`
	SpentEffort    float64 `gorm:"default:0"`
	Coach          string  `gorm:"size:255"`
	Accomplishment string  `gorm:"type:text"`
}
