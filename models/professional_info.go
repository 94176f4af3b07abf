package models

import (
	"time"

	"gorm.io/gorm"
)

// ProfessionalInformation aggregates a user's career records. The child
// tables below hang off it rather than off the user directly.
type ProfessionalInformation struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	WorkExperiences     []WorkExperience           `gorm:"foreignKey:ProfessionalInfoID"`
	PreviousExperiences []PreviousExperience       `gorm:"foreignKey:ProfessionalInfoID"`
	Educations          []Education                `gorm:"foreignKey:ProfessionalInfoID"`
	LanguageSkills      []LanguageSkill            `gorm:"foreignKey:ProfessionalInfoID"`
	Certificates        []Certificate              `gorm:"foreignKey:ProfessionalInfoID"`
	HonorsAwards        []HonorsAwardsPublications `gorm:"foreignKey:ProfessionalInfoID"`
	FunctionalSkills    []FunctionalSkill          `gorm:"foreignKey:ProfessionalInfoID"`
	TechnicalSkills     []TechnicalSkill           `gorm:"foreignKey:ProfessionalInfoID"`
}

type WorkExperience struct {
	gorm.Model
	ProfessionalInfoID   uint   `gorm:"index;not null"`
	OrganizationName     string `gorm:"size:100"`
	OrganizationLocation string `gorm:"size:100"`
	Duration             string `gorm:"size:50"`
	IsCurrent            bool   `gorm:"default:false"`
	StartDate            time.Time
	EndDate              *time.Time
	Description          string `gorm:"type:text"`
}

type PreviousExperience struct {
	gorm.Model
	ProfessionalInfoID  uint   `gorm:"index;not null"`
	Title               string `gorm:"size:255"`
	CompanyName         string `gorm:"size:255"`
	StartDate           time.Time
	EndDate             *time.Time
	JobResponsibilities string `gorm:"type:text"`
}

type Education struct {
	gorm.Model
	ProfessionalInfoID uint   `gorm:"index;not null"`
	CollegeUniversity  string `gorm:"size:100"`
	Degree             string `gorm:"size:100"`
	AreaOfStudy        string `gorm:"size:100"`
	DegreeCompleted    bool   `gorm:"default:false"`
	DateCompleted      time.Time
}

type LanguageSkill struct {
	gorm.Model
	ProfessionalInfoID  uint   `gorm:"index;not null"`
	Language            string `gorm:"size:50"`
	SpeakingProficiency string `gorm:"size:50"`
	WritingProficiency  string `gorm:"size:50"`
	ReadingProficiency  string `gorm:"size:50"`
}

type Certificate struct {
	gorm.Model
	ProfessionalInfoID   uint   `gorm:"index;not null"`
	CertificationLicense string `gorm:"size:100"`
	Description          string `gorm:"type:text"`
	Institution          string `gorm:"size:100"`
	EffectiveDate        time.Time
	ExpirationDate       *time.Time
	Attachment           string // S3 URL
}

type HonorsAwardsPublications struct {
	gorm.Model
	ProfessionalInfoID     uint   `gorm:"index;not null"`
	HonorRewardPublication string `gorm:"size:100"`
	Description            string `gorm:"type:text"`
	Institution            string `gorm:"size:100"`
	IssueDate              time.Time
	Attachment             string // S3 URL
}

type FunctionalSkill struct {
	gorm.Model
	ProfessionalInfoID uint   `gorm:"index;not null"`
	Skill              string `gorm:"size:100"`
	Proficiency        string `gorm:"size:50"`
}

type TechnicalSkill struct {
	gorm.Model
	ProfessionalInfoID uint   `gorm:"index;not null"`
	Skill              string `gorm:"size:100"`
	Proficiency        string `gorm:"size:50"`
}
