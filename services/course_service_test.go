package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCourse(t *testing.T, db *gorm.DB, title string, price float64, active bool) *models.Course {
	t.Helper()

	course := models.Course{Title: title, Price: price, IsActive: active}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func TestCourseFinalPrice(t *testing.T) {
	course := models.Course{Price: 100}
	assert.Equal(t, 100.0, course.FinalPrice())

	discount := 59.99
	course.DiscountedPrice = &discount
	assert.Equal(t, 59.99, course.FinalPrice())
}

func TestCourseInactiveSurvivesCreate(t *testing.T) {
	// Zero-value false must round-trip through create unchanged.
	db := setupTestDB(t)
	createTestCourse(t, db, "Retired Course", 10, false)

	var stored models.Course
	require.NoError(t, db.Where("title = ?", "Retired Course").First(&stored).Error)
	assert.False(t, stored.IsActive)
}

func TestListCourses(t *testing.T) {
	db := setupTestDB(t)
	createTestCourse(t, db, "Go Fundamentals", 50, true)
	createTestCourse(t, db, "Retired Course", 10, false)

	courses, err := ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Fundamentals", courses[0].Title)
}

func TestPurchaseCourse(t *testing.T) {
	t.Run("purchase and duplicate rejection", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "buyer@example.com")
		course := createTestCourse(t, db, "Go Fundamentals", 50, true)

		require.NoError(t, PurchaseCourse(user.ID, course.ID))

		owned, err := HasPurchased(user.ID, course.ID)
		require.NoError(t, err)
		assert.True(t, owned)

		assert.ErrorIs(t, PurchaseCourse(user.ID, course.ID), ErrAlreadyPurchased)
	})

	t.Run("inactive course cannot be bought", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "buyer@example.com")
		course := createTestCourse(t, db, "Retired Course", 10, false)

		assert.ErrorIs(t, PurchaseCourse(user.ID, course.ID), ErrCourseNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "buyer@example.com")

		assert.ErrorIs(t, PurchaseCourse(user.ID, 9999), ErrCourseNotFound)
	})
}
