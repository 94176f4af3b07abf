package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// GetOrCreateSwot returns the user's SWOT analysis, seeding a fresh one with
// one default row per quadrant, all in one transaction.
func GetOrCreateSwot(userID uint) (*models.SwotAnalysis, error) {
	var swot models.SwotAnalysis
	err := config.DB.
		Preload("Strengths").
		Preload("Weaknesses").
		Preload("Opportunities").
		Preload("Threats").
		Where("user_id = ?", userID).
		First(&swot).Error
	if err == nil {
		return &swot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		swot = models.SwotAnalysis{UserID: userID}
		if err := tx.Create(&swot).Error; err != nil {
			return err
		}
		seeds := []interface{}{
			&models.Strength{SwotAnalysisID: swot.ID, Description: "Default Strength"},
			&models.Weakness{SwotAnalysisID: swot.ID, Description: "Default Weakness"},
			&models.Opportunity{SwotAnalysisID: swot.ID, Description: "Default Opportunity"},
			&models.Threat{SwotAnalysisID: swot.ID, Description: "Default Threat"},
		}
		for _, seed := range seeds {
			if err := tx.Create(seed).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetOrCreateSwot(userID)
}
