package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getOrCreateProfessionalInfo(userID uint) (*models.ProfessionalInformation, error) {
	var info models.ProfessionalInformation
	err := config.DB.Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.ProfessionalInformation{UserID: userID}
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

// sectionModel maps the :section path param to a fresh child record.
func sectionModel(section string) (interface{}, bool) {
	switch section {
	case "work-experiences":
		return &models.WorkExperience{}, true
	case "previous-experiences":
		return &models.PreviousExperience{}, true
	case "educations":
		return &models.Education{}, true
	case "language-skills":
		return &models.LanguageSkill{}, true
	case "certificates":
		return &models.Certificate{}, true
	case "honors-awards":
		return &models.HonorsAwardsPublications{}, true
	case "functional-skills":
		return &models.FunctionalSkill{}, true
	case "technical-skills":
		return &models.TechnicalSkill{}, true
	default:
		return nil, false
	}
}

func setProfessionalInfoID(record interface{}, infoID uint) {
	switch r := record.(type) {
	case *models.WorkExperience:
		r.ProfessionalInfoID = infoID
	case *models.PreviousExperience:
		r.ProfessionalInfoID = infoID
	case *models.Education:
		r.ProfessionalInfoID = infoID
	case *models.LanguageSkill:
		r.ProfessionalInfoID = infoID
	case *models.Certificate:
		r.ProfessionalInfoID = infoID
	case *models.HonorsAwardsPublications:
		r.ProfessionalInfoID = infoID
	case *models.FunctionalSkill:
		r.ProfessionalInfoID = infoID
	case *models.TechnicalSkill:
		r.ProfessionalInfoID = infoID
	}
}

// GET /professional-info
func GetProfessionalInfo(c *gin.Context) {
	uid := c.GetUint("userID")

	info, err := getOrCreateProfessionalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var full models.ProfessionalInformation
	err = config.DB.
		Preload("WorkExperiences").
		Preload("PreviousExperiences").
		Preload("Educations").
		Preload("LanguageSkills").
		Preload("Certificates").
		Preload("HonorsAwards").
		Preload("FunctionalSkills").
		Preload("TechnicalSkills").
		First(&full, info.ID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, full)
}

// POST /professional-info/:section
func AddProfessionalRecord(c *gin.Context) {
	uid := c.GetUint("userID")

	record, ok := sectionModel(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	info, err := getOrCreateProfessionalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setProfessionalInfoID(record, info.ID)

	if err := config.DB.Create(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// PUT /professional-info/:section/:id
func UpdateProfessionalRecord(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	record, ok := sectionModel(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	info, err := getOrCreateProfessionalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Where("id = ? AND professional_info_id = ?", id, info.ID).First(record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setProfessionalInfoID(record, info.ID)

	if err := config.DB.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DELETE /professional-info/:section/:id
func DeleteProfessionalRecord(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	record, ok := sectionModel(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	info, err := getOrCreateProfessionalInfo(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := config.DB.Where("id = ? AND professional_info_id = ?", id, info.ID).Delete(record)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
