package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonalInfoInput struct {
	ProfilePicture    string `json:"profile_picture"`
	FirstName         string `json:"first_name"`
	MiddleName        string `json:"middle_name"`
	LastName          string `json:"last_name"`
	PreferredFullName string `json:"preferred_full_name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	Nationality       string `json:"nationality"`
	DateOfBirth       string `json:"date_of_birth"` // YYYY-MM-DD
	BirthName         string `json:"birth_name"`
	MaritalStatus     string `json:"marital_status"`
	Suffix            string `json:"suffix"`
	Gender            string `json:"gender"`
	Country           string `json:"country"`
	State             string `json:"state"`
	City              string `json:"city"`
}

func getOrCreatePersonalInfo(userID uint) (*models.PersonalInformation, error) {
	var info models.PersonalInformation
	err := config.DB.Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.PersonalInformation{UserID: userID}
		if err := config.DB.Create(&info).Error; err != nil {
			return nil, err
		}
		return &info, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func GetPersonalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	info, err := getOrCreatePersonalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func UpdatePersonalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	info, err := getOrCreatePersonalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var input PersonalInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info.ProfilePicture = input.ProfilePicture
	info.FirstName = input.FirstName
	info.MiddleName = input.MiddleName
	info.LastName = input.LastName
	info.PreferredFullName = input.PreferredFullName
	info.Email = input.Email
	info.PhoneNumber = input.PhoneNumber
	info.Nationality = input.Nationality
	info.BirthName = input.BirthName
	info.MaritalStatus = input.MaritalStatus
	info.Suffix = input.Suffix
	info.Gender = input.Gender
	info.Country = input.Country
	info.State = input.State
	info.City = input.City

	if input.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", input.DateOfBirth); err == nil {
			info.DateOfBirth = &dob
		}
	}

	if err := config.DB.Save(info).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func DeletePersonalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := config.DB.Where("user_id = ?", uid).Delete(&models.PersonalInformation{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
