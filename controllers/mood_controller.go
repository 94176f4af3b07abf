package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func RecordMood(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := false
	for _, choice := range models.MoodChoices {
		if input.CurrentMood == choice {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mood", "choices": models.MoodChoices})
		return
	}

	mood, err := services.RecordMood(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mood)
}

func GetTodayMood(c *gin.Context) {
	uid := c.GetUint("userID")

	mood, err := services.TodayMood(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoMoodToday) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mood)
}

func GetMoodHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	moods, err := services.MoodHistory(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, moods)
}
