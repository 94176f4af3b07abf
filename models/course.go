package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title           string `gorm:"size:255;not null"`
	InstructorID    *uint  `gorm:"index"`
	Description     string `gorm:"type:text"`
	StartDate       *time.Time
	EndDate         *time.Time
	CreditHours     *int
	Price           float64 `gorm:"not null"`
	DiscountedPrice *float64
	IsActive        bool

	Lectures []VideoLecture `gorm:"foreignKey:CourseID"`
}

// FinalPrice prefers the discount when one is set.
func (c *Course) FinalPrice() float64 {
	if c.DiscountedPrice != nil {
		return *c.DiscountedPrice
	}
	return c.Price
}

// CoursePurchase records a user buying a course; the pair is unique.
type CoursePurchase struct {
	gorm.Model
	CourseID uint `gorm:"not null;uniqueIndex:idx_course_purchaser"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_course_purchaser"`
}

type VideoLecture struct {
	gorm.Model
	CourseID    uint   `gorm:"index;not null"`
	Title       string `gorm:"size:255;not null"`
	VideoURL    string // S3 URL
	Description string `gorm:"type:text"`

	Quizzes []Quiz `gorm:"foreignKey:VideoLectureID"`
}

type Quiz struct {
	gorm.Model
	VideoLectureID uint   `gorm:"index;not null"`
	Question       string `gorm:"size:255;not null"`
	OptionA        string `gorm:"size:255"`
	OptionB        string `gorm:"size:255"`
	OptionC        string `gorm:"size:255"`
	OptionD        string `gorm:"size:255"`
	CorrectAnswer  string `gorm:"size:1"` // A | B | C | D
}
