package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type ActivityInput struct {
	Title        string `json:"title" binding:"required"`
	ActivityType string `json:"activity_type" binding:"omitempty,oneof=physical learning work social"`
	Date         string `json:"date"` // YYYY-MM-DD
	Duration     *uint  `json:"duration"`
	Description  string `json:"description"`
	Status       string `json:"status" binding:"omitempty,oneof=planned in_progress completed"`
	Timesheet    string `json:"timesheet"`
}

func ListActivities(c *gin.Context) {
	uid := c.GetUint("userID")

	q := config.DB.Where("user_id = ?", uid)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if activityType := c.Query("type"); activityType != "" {
		q = q.Where("activity_type = ?", activityType)
	}

	var activities []models.Activity
	if err := q.Order("date desc, created_at desc").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func CreateActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		UserID:       uid,
		Title:        input.Title,
		ActivityType: input.ActivityType,
		Duration:     input.Duration,
		Description:  input.Description,
		Status:       input.Status,
		Timesheet:    input.Timesheet,
	}
	if activity.ActivityType == "" {
		activity.ActivityType = models.ActivityPhysical
	}
	if activity.Status == "" {
		activity.Status = models.ActivityPlanned
	}
	if input.Date != "" {
		if d, err := time.Parse("2006-01-02", input.Date); err == nil {
			activity.Date = &d
		}
	}

	if err := config.DB.Create(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var activity models.Activity
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&activity).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity.Title = input.Title
	if input.ActivityType != "" {
		activity.ActivityType = input.ActivityType
	}
	if input.Date != "" {
		if d, err := time.Parse("2006-01-02", input.Date); err == nil {
			activity.Date = &d
		}
	}
	activity.Duration = input.Duration
	activity.Description = input.Description
	if input.Status != "" {
		activity.Status = input.Status
	}
	activity.Timesheet = input.Timesheet

	if err := config.DB.Save(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func DeleteActivity(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Activity{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
