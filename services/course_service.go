package services

import (
	"context"
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrAlreadyPurchased = errors.New("course already purchased")
)

const courseListCacheKey = "courses:active"

// ListCourses serves the active catalog, cached in Redis for a minute.
func ListCourses() ([]models.Course, error) {
	ctx := context.Background()

	var courses []models.Course
	if hit, err := utils.GetCache(ctx, config.Redis, courseListCacheKey, &courses); err == nil && hit {
		return courses, nil
	}

	err := config.DB.
		Preload("Lectures").
		Preload("Lectures.Quizzes").
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	_ = utils.SetCache(ctx, config.Redis, courseListCacheKey, courses, time.Minute)
	return courses, nil
}

func InvalidateCourseCache() {
	_ = utils.DeleteCache(context.Background(), config.Redis, courseListCacheKey)
}

// PurchaseCourse records a purchase; buying the same course twice is rejected.
func PurchaseCourse(userID, courseID uint) error {
	var course models.Course
	err := config.DB.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	var existing models.CoursePurchase
	err = config.DB.Where("course_id = ? AND user_id = ?", courseID, userID).First(&existing).Error
	if err == nil {
		return ErrAlreadyPurchased
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return config.DB.Create(&models.CoursePurchase{CourseID: courseID, UserID: userID}).Error
}

// HasPurchased reports whether the user owns the course.
func HasPurchased(userID, courseID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.CoursePurchase{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}
