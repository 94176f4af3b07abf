package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type HabitInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Frequency    string  `json:"frequency"`
	Priority     string  `json:"priority"`
	Description  string  `json:"description"`
	TargetValue  int     `json:"target_value"`
	Unit         string  `json:"unit"`
	ReminderTime *string `json:"reminder_time"`
	IsActive     *bool   `json:"is_active"`
}

func ListHabits(c *gin.Context) {
	uid := c.GetUint("userID")

	habits, err := services.ListHabits(uid, c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, habits)
}

func CreateHabit(c *gin.Context) {
	uid := c.GetUint("userID")

	var input HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit := models.Habit{
		UserID:       uid,
		Name:         input.Name,
		Category:     input.Category,
		Frequency:    input.Frequency,
		Priority:     input.Priority,
		Description:  input.Description,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		ReminderTime: input.ReminderTime,
		IsActive:     true,
	}
	if habit.Frequency == "" {
		habit.Frequency = models.HabitFrequencyDaily
	}
	if habit.Priority == "" {
		habit.Priority = models.HabitPriorityMedium
	}
	if habit.TargetValue <= 0 {
		habit.TargetValue = 1
	}

	if err := config.DB.Create(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func UpdateHabit(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var habit models.Habit
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&habit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}

	var input HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit.Name = input.Name
	habit.Category = input.Category
	if input.Frequency != "" {
		habit.Frequency = input.Frequency
	}
	if input.Priority != "" {
		habit.Priority = input.Priority
	}
	habit.Description = input.Description
	if input.TargetValue > 0 {
		habit.TargetValue = input.TargetValue
	}
	habit.Unit = input.Unit
	habit.ReminderTime = input.ReminderTime
	if input.IsActive != nil {
		// Toggling activity never touches the streak; resuming completion
		// later follows the usual date-delta rule.
		habit.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, habit)
}

func DeleteHabit(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Habit{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /habits/:id/complete
func CompleteHabit(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	habit, err := services.CompleteHabit(uid, uint(id), time.Now())
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"streak":         habit.Streak,
		"last_completed": habit.LastCompleted.Format("2006-01-02"),
		"message":        "Habit marked as completed",
	})
}

// POST /habits/:id/reset-streak
func ResetHabitStreak(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	habit, err := services.ResetHabitStreak(uid, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"streak":  habit.Streak,
		"message": "Streak reset successfully",
	})
}
