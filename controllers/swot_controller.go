package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// swotItem maps the :section path param to a fresh quadrant record.
func swotItem(section string) (interface{}, bool) {
	switch section {
	case "strengths":
		return &models.Strength{}, true
	case "weaknesses":
		return &models.Weakness{}, true
	case "opportunities":
		return &models.Opportunity{}, true
	case "threats":
		return &models.Threat{}, true
	default:
		return nil, false
	}
}

func setSwotID(record interface{}, swotID uint) {
	switch r := record.(type) {
	case *models.Strength:
		r.SwotAnalysisID = swotID
	case *models.Weakness:
		r.SwotAnalysisID = swotID
	case *models.Opportunity:
		r.SwotAnalysisID = swotID
	case *models.Threat:
		r.SwotAnalysisID = swotID
	}
}

// GET /swot
func GetSwot(c *gin.Context) {
	uid := c.GetUint("userID")

	swot, err := services.GetOrCreateSwot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, swot)
}

// POST /swot/:section
func AddSwotItem(c *gin.Context) {
	uid := c.GetUint("userID")

	record, ok := swotItem(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	swot, err := services.GetOrCreateSwot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setSwotID(record, swot.ID)

	if err := config.DB.Create(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// PUT /swot/:section/:id
func UpdateSwotItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	record, ok := swotItem(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	swot, err := services.GetOrCreateSwot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Where("id = ? AND swot_analysis_id = ?", id, swot.ID).First(record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setSwotID(record, swot.ID)

	if err := config.DB.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// DELETE /swot/:section/:id
func DeleteSwotItem(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	record, ok := swotItem(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	swot, err := services.GetOrCreateSwot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	res := config.DB.Where("id = ? AND swot_analysis_id = ?", id, swot.ID).Delete(record)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
