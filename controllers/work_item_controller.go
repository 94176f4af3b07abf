package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type WorkItemInput struct {
	WorkType    string `json:"work_type" binding:"required,oneof=post article video journal"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func ListWorkItems(c *gin.Context) {
	uid := c.GetUint("userID")

	q := config.DB.Where("user_id = ?", uid)
	if workType := c.Query("type"); workType != "" {
		q = q.Where("work_type = ?", workType)
	}

	var items []models.WorkItem
	if err := q.Order("created_at desc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateWorkItem(c *gin.Context) {
	uid := c.GetUint("userID")

	var input WorkItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.WorkItem{
		UserID:      uid,
		WorkType:    input.WorkType,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateWorkItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.WorkItem
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "work item not found"})
		return
	}

	var input WorkItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.WorkType = input.WorkType
	item.Title = input.Title
	item.Description = input.Description

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteWorkItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.WorkItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "work item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
