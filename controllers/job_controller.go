package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type JobInput struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	ContractType string `json:"contract_type"`
	Description  string `json:"description"`
}

func ListJobs(c *gin.Context) {
	uid := c.GetUint("userID")

	q := config.DB.Where("user_id = ?", uid)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var jobs []models.UserJob
	if err := q.Order("created_at desc").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func CreateJob(c *gin.Context) {
	uid := c.GetUint("userID")

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := models.UserJob{
		UserID:       uid,
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		Category:     input.Category,
		ContractType: input.ContractType,
		Description:  input.Description,
	}
	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

func UpdateJob(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var job models.UserJob
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job.Title = input.Title
	job.Company = input.Company
	job.Location = input.Location
	job.Category = input.Category
	job.ContractType = input.ContractType
	job.Description = input.Description

	if err := config.DB.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

func DeleteJob(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.UserJob{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
