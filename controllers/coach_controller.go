package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CoachInput struct {
	Name            string  `json:"name"`
	Expertise       string  `json:"expertise"`
	Description     string  `json:"description"`
	ProfilePicture  string  `json:"profile_picture"` // base64, uploaded to S3
	Email           string  `json:"email" binding:"required,email"`
	PhoneNumber     string  `json:"phone_number"`
	Location        string  `json:"location"`
	Availability    string  `json:"availability"`
	Certifications  string  `json:"certifications"`
	Experience      string  `json:"experience"`
	Specializations string  `json:"specializations"`
	Bio             string  `json:"bio"`
	SocialMedia     string  `json:"social_media"`
	LanguagesSpoken string  `json:"languages_spoken"`
	Nationality     string  `json:"nationality"`
	DateOfBirth     string  `json:"date_of_birth"`
	Gender          string  `json:"gender"`
	Country         string  `json:"country"`
	State           string  `json:"state"`
	City            string  `json:"city"`
	Rating          float64 `json:"rating"`
}

func applyCoachInput(coach *models.Coach, input CoachInput) {
	coach.Name = input.Name
	coach.Expertise = input.Expertise
	coach.Description = input.Description
	coach.Email = input.Email
	coach.PhoneNumber = input.PhoneNumber
	coach.Location = input.Location
	coach.Availability = input.Availability
	coach.Certifications = input.Certifications
	coach.Experience = input.Experience
	coach.Specializations = input.Specializations
	coach.Bio = input.Bio
	coach.SocialMedia = input.SocialMedia
	coach.LanguagesSpoken = input.LanguagesSpoken
	coach.Nationality = input.Nationality
	coach.Gender = input.Gender
	coach.Country = input.Country
	coach.State = input.State
	coach.City = input.City

	if input.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", input.DateOfBirth); err == nil {
			coach.DateOfBirth = &dob
		}
	}
	if input.ProfilePicture != "" {
		if url, err := utils.UploadBase64ToS3(input.ProfilePicture, "coach-pictures", coach.Email); err == nil {
			coach.ProfilePicture = url
		}
	}
}

func ListCoaches(c *gin.Context) {
	q := config.DB.Order("rating desc")
	if expertise := c.Query("expertise"); expertise != "" {
		q = q.Where("expertise ILIKE ?", "%"+expertise+"%")
	}
	if location := c.Query("location"); location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}

	var coaches []models.Coach
	if err := q.Find(&coaches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, coaches)
}

func GetCoach(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var coach models.Coach
	if err := config.DB.First(&coach, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach not found"})
		return
	}
	c.JSON(http.StatusOK, coach)
}

// CreateCoachProfile registers the acting user as a coach. One profile per user.
func CreateCoachProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var existing models.Coach
	if err := config.DB.Where("user_id = ?", uid).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "coach profile already exists"})
		return
	}

	var input CoachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coach := models.Coach{UserID: &uid}
	applyCoachInput(&coach, input)

	if err := config.DB.Create(&coach).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, coach)
}

func GetMyCoachProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var coach models.Coach
	if err := config.DB.Where("user_id = ?", uid).First(&coach).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach profile not found"})
		return
	}
	c.JSON(http.StatusOK, coach)
}

func UpdateMyCoachProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var coach models.Coach
	if err := config.DB.Where("user_id = ?", uid).First(&coach).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach profile not found"})
		return
	}

	var input CoachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyCoachInput(&coach, input)
	if err := config.DB.Save(&coach).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, coach)
}

// POST /coaches/:id/request. A user asks a coach to take them on.
func RequestCoach(c *gin.Context) {
	uid := c.GetUint("userID")
	coachID, _ := strconv.Atoi(c.Param("id"))

	var coach models.Coach
	if err := config.DB.First(&coach, coachID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach not found"})
		return
	}

	var existing models.CoachRequest
	err := config.DB.Where("user_id = ? AND coach_id = ? AND status = ?",
		uid, coach.ID, models.CoachRequestPending).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "request already pending"})
		return
	}

	req := models.CoachRequest{UserID: uid, CoachID: coach.ID, Status: models.CoachRequestPending}
	if err := config.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListCoachRequests shows incoming requests for the acting user's coach profile.
func ListCoachRequests(c *gin.Context) {
	uid := c.GetUint("userID")

	var coach models.Coach
	if err := config.DB.Where("user_id = ?", uid).First(&coach).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach profile not found"})
		return
	}

	q := config.DB.Where("coach_id = ?", coach.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.CoachRequest
	if err := q.Order("created_at desc").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}

type HandleRequestInput struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// PUT /coach/requests/:id. Only the targeted coach may accept or reject.
func HandleCoachRequest(c *gin.Context) {
	uid := c.GetUint("userID")
	reqID, _ := strconv.Atoi(c.Param("id"))

	var coach models.Coach
	if err := config.DB.Where("user_id = ?", uid).First(&coach).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "coach profile not found"})
		return
	}

	var req models.CoachRequest
	if err := config.DB.Where("id = ? AND coach_id = ?", reqID, coach.ID).First(&req).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	if req.Status != models.CoachRequestPending {
		c.JSON(http.StatusConflict, gin.H{"error": "request already handled"})
		return
	}

	var input HandleRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Status = input.Status
	if err := config.DB.Save(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListMyCoachRequests shows the acting user's outgoing requests.
func ListMyCoachRequests(c *gin.Context) {
	uid := c.GetUint("userID")

	var requests []models.CoachRequest
	if err := config.DB.Where("user_id = ?", uid).Order("created_at desc").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}
