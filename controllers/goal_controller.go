package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type MainGoalInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	Weightage   float64 `json:"weightage"`
}

type SubGoalInput struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	RequiredEffort float64 `json:"required_effort"`
	SpentEffort    float64 `json:"spent_effort"`
	Coach          string  `json:"coach"`
	Accomplishment string  `json:"accomplishment"`
}

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func ListMainGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var goals []models.MainGoal
	if err := config.DB.Preload("SubGoals").Where("user_id = ?", uid).Order("created_at desc").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func CreateMainGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input MainGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.MainGoal{
		UserID:      uid,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		StartDate:   parseDate(input.StartDate),
		EndDate:     parseDate(input.EndDate),
		Status:      input.Status,
		Weightage:   input.Weightage,
	}
	if goal.Weightage == 0 {
		goal.Weightage = 1
	}

	if err := config.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func UpdateMainGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var goal models.MainGoal
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	var input MainGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal.Name = input.Name
	goal.Description = input.Description
	goal.Category = input.Category
	if input.StartDate != "" {
		goal.StartDate = parseDate(input.StartDate)
	}
	if input.EndDate != "" {
		goal.EndDate = parseDate(input.EndDate)
	}
	goal.Status = input.Status
	if input.Weightage > 0 {
		goal.Weightage = input.Weightage
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func DeleteMainGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.MainGoal{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedMainGoal loads a main goal only if the acting user owns it.
func ownedMainGoal(c *gin.Context, goalID int) (*models.MainGoal, bool) {
	uid := c.GetUint("userID")

	var goal models.MainGoal
	if err := config.DB.Where("id = ? AND user_id = ?", goalID, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return nil, false
	}
	return &goal, true
}

// POST /goals/:id/subgoals
func CreateSubGoal(c *gin.Context) {
	goalID, _ := strconv.Atoi(c.Param("id"))
	goal, ok := ownedMainGoal(c, goalID)
	if !ok {
		return
	}

	var input SubGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := models.SubGoal{
		MainGoalID:     goal.ID,
		Name:           input.Name,
		Description:    input.Description,
		StartDate:      parseDate(input.StartDate),
		EndDate:        parseDate(input.EndDate),
		Status:         input.Status,
		RequiredEffort: input.RequiredEffort,
		SpentEffort:    input.SpentEffort,
		Coach:          input.Coach,
		Accomplishment: input.Accomplishment,
	}

	if err := config.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// PUT /goals/:id/subgoals/:subId
func UpdateSubGoal(c *gin.Context) {
	goalID, _ := strconv.Atoi(c.Param("id"))
	goal, ok := ownedMainGoal(c, goalID)
	if !ok {
		return
	}
	subID, _ := strconv.Atoi(c.Param("subId"))

	var sub models.SubGoal
	if err := config.DB.Where("id = ? AND main_goal_id = ?", subID, goal.ID).First(&sub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subgoal not found"})
		return
	}

	var input SubGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub.Name = input.Name
	sub.Description = input.Description
	if input.StartDate != "" {
		sub.StartDate = parseDate(input.StartDate)
	}
	if input.EndDate != "" {
		sub.EndDate = parseDate(input.EndDate)
	}
	sub.Status = input.Status
	sub.RequiredEffort = input.RequiredEffort
	sub.SpentEffort = input.SpentEffort
	sub.Coach = input.Coach
	sub.Accomplishment = input.Accomplishment

	if err := config.DB.Save(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DELETE /goals/:id/subgoals/:subId
func DeleteSubGoal(c *gin.Context) {
	goalID, _ := strconv.Atoi(c.Param("id"))
	goal, ok := ownedMainGoal(c, goalID)
	if !ok {
		return
	}
	subID, _ := strconv.Atoi(c.Param("subId"))

	res := config.DB.Where("id = ? AND main_goal_id = ?", subID, goal.ID).Delete(&models.SubGoal{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "subgoal not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
