package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var ErrAccomplishmentNotFound = errors.New("accomplishment not found")

// ShareAccomplishment records a share of a user-owned accomplishment on a
// platform. The social-network delivery itself is out of band.
func ShareAccomplishment(userID, accomplishmentID uint, platform, message string) (*models.AccomplishmentShare, error) {
	var acc models.Accomplishment
	err := config.DB.Where("id = ? AND user_id = ?", accomplishmentID, userID).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccomplishmentNotFound
		}
		return nil, err
	}

	share := models.AccomplishmentShare{
		AccomplishmentID: acc.ID,
		Platform:         platform,
		Message:          message,
		IsSuccessful:     true,
	}
	if err := config.DB.Create(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// AccomplishmentStats aggregates counts for the user's dashboard tile.
// Cached in Redis for a minute; invalidated on accomplishment writes.
func AccomplishmentStats(userID uint) (map[string]interface{}, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("accomplishments:stats:%d", userID)

	var stats map[string]interface{}
	if hit, err := utils.GetCache(ctx, config.Redis, cacheKey, &stats); err == nil && hit {
		return stats, nil
	}

	base := config.DB.Model(&models.Accomplishment{}).Where("user_id = ?", userID)

	var total, publicCount, recent int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_public = ?", true).Count(&publicCount).Error; err != nil {
		return nil, err
	}
	cutoff := dayStartLocal(time.Now()).AddDate(0, 0, -30)
	if err := base.Session(&gorm.Session{}).Where("date >= ?", cutoff).Count(&recent).Error; err != nil {
		return nil, err
	}

	byCategory := map[string]int64{}
	for _, category := range models.AccomplishmentCategories {
		var n int64
		if err := base.Session(&gorm.Session{}).Where("category = ?", category).Count(&n).Error; err != nil {
			return nil, err
		}
		byCategory[category] = n
	}

	stats = map[string]interface{}{
		"total":        total,
		"public_count": publicCount,
		"recent":       recent,
		"by_category":  byCategory,
	}

	_ = utils.SetCache(ctx, config.Redis, cacheKey, stats, time.Minute)
	return stats, nil
}

func InvalidateAccomplishmentStats(userID uint) {
	_ = utils.DeleteCache(context.Background(), config.Redis, fmt.Sprintf("accomplishments:stats:%d", userID))
}
