package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AccomplishmentInput struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Date          string `json:"date"` // YYYY-MM-DD
	Impact        string `json:"impact"`
	Evidence      string `json:"evidence"` // base64, uploaded to S3
	IsPublic      *bool  `json:"is_public"`
	Tags          string `json:"tags"`
	SkillsUsed    string `json:"skills_used"`
	Metrics       string `json:"metrics"`
	ExternalLinks string `json:"external_links"`
}

func validAccomplishmentCategory(category string) bool {
	for _, c := range models.AccomplishmentCategories {
		if category == c {
			return true
		}
	}
	return false
}

func ListAccomplishments(c *gin.Context) {
	uid := c.GetUint("userID")

	q := config.DB.Where("user_id = ?", uid)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var accomplishments []models.Accomplishment
	if err := q.Order("date desc").Find(&accomplishments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accomplishments)
}

func CreateAccomplishment(c *gin.Context) {
	uid := c.GetUint("userID")

	var input AccomplishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Category == "" {
		input.Category = "professional"
	}
	if !validAccomplishmentCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category", "choices": models.AccomplishmentCategories})
		return
	}

	acc := models.Accomplishment{
		UserID:        uid,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Date:          time.Now(),
		Impact:        input.Impact,
		Tags:          input.Tags,
		SkillsUsed:    input.SkillsUsed,
		Metrics:       input.Metrics,
		ExternalLinks: input.ExternalLinks,
	}
	if input.Date != "" {
		if d, err := time.Parse("2006-01-02", input.Date); err == nil {
			acc.Date = d
		}
	}
	if input.IsPublic != nil {
		acc.IsPublic = *input.IsPublic
	}
	if input.Evidence != "" {
		if url, err := utils.UploadBase64ToS3(input.Evidence, "accomplishment-evidence", input.Title); err == nil {
			acc.Evidence = url
		}
	}

	if err := config.DB.Create(&acc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateAccomplishmentStats(uid)
	c.JSON(http.StatusCreated, acc)
}

func UpdateAccomplishment(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var acc models.Accomplishment
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&acc).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "accomplishment not found"})
		return
	}

	var input AccomplishmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Category != "" && !validAccomplishmentCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category", "choices": models.AccomplishmentCategories})
		return
	}

	acc.Title = input.Title
	acc.Description = input.Description
	if input.Category != "" {
		acc.Category = input.Category
	}
	if input.Date != "" {
		if d, err := time.Parse("2006-01-02", input.Date); err == nil {
			acc.Date = d
		}
	}
	acc.Impact = input.Impact
	if input.IsPublic != nil {
		acc.IsPublic = *input.IsPublic
	}
	acc.Tags = input.Tags
	acc.SkillsUsed = input.SkillsUsed
	acc.Metrics = input.Metrics
	acc.ExternalLinks = input.ExternalLinks
	if input.Evidence != "" {
		if url, err := utils.UploadBase64ToS3(input.Evidence, "accomplishment-evidence", acc.Title); err == nil {
			acc.Evidence = url
		}
	}

	if err := config.DB.Save(&acc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateAccomplishmentStats(uid)
	c.JSON(http.StatusOK, acc)
}

func DeleteAccomplishment(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Accomplishment{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "accomplishment not found"})
		return
	}
	services.InvalidateAccomplishmentStats(uid)
	c.Status(http.StatusNoContent)
}

type ShareInput struct {
	Platform string `json:"platform" binding:"required"`
	Message  string `json:"message"`
}

// POST /accomplishments/:id/share
func ShareAccomplishment(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var input ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := false
	for _, p := range models.SharePlatforms {
		if input.Platform == p {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid platform", "choices": models.SharePlatforms})
		return
	}

	share, err := services.ShareAccomplishment(uid, uint(id), input.Platform, input.Message)
	if err != nil {
		if errors.Is(err, services.ErrAccomplishmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, share)
}

// ListPublicAccomplishments is the cross-user public feed.
func ListPublicAccomplishments(c *gin.Context) {
	q := config.DB.Where("is_public = ?", true)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var accomplishments []models.Accomplishment
	if err := q.Order("date desc").Limit(100).Find(&accomplishments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accomplishments)
}

func GetAccomplishmentStats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := services.AccomplishmentStats(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
