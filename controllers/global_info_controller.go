package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GlobalInfoInput struct {
	Nationality            string `json:"nationality"`
	CurrentLocation        string `json:"current_location"`
	Languages              string `json:"languages"` // comma-joined
	TimeZone               string `json:"time_zone"`
	Availability           string `json:"availability"`
	PreferredCommunication string `json:"preferred_communication"`
	SocialMediaLinks       string `json:"social_media_links"` // raw JSON
	HobbiesInterests       string `json:"hobbies_interests"`
	VolunteerWork          string `json:"volunteer_work"`
	TravelExperience       string `json:"travel_experience"`
	CulturalBackground     string `json:"cultural_background"`
	DietaryPreferences     string `json:"dietary_preferences"`
}

func GetGlobalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	var info models.GlobalInformation
	err := config.DB.Where("user_id = ?", uid).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.GlobalInformation{UserID: uid}
		if err := config.DB.Create(&info).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func UpdateGlobalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	var info models.GlobalInformation
	err := config.DB.Where("user_id = ?", uid).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.GlobalInformation{UserID: uid}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var input GlobalInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info.Nationality = input.Nationality
	info.CurrentLocation = input.CurrentLocation
	info.Languages = input.Languages
	info.TimeZone = input.TimeZone
	info.Availability = input.Availability
	info.PreferredCommunication = input.PreferredCommunication
	info.SocialMediaLinks = input.SocialMediaLinks
	info.HobbiesInterests = input.HobbiesInterests
	info.VolunteerWork = input.VolunteerWork
	info.TravelExperience = input.TravelExperience
	info.CulturalBackground = input.CulturalBackground
	info.DietaryPreferences = input.DietaryPreferences

	if err := config.DB.Save(&info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
