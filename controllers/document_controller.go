package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DocumentInput struct {
	DocumentType string `json:"document_type" binding:"required"`
	FileData     string `json:"file_data" binding:"required"` // base64
	Filename     string `json:"filename"`
}

func ListDocuments(c *gin.Context) {
	uid := c.GetUint("userID")

	q := config.DB.Where("user_id = ?", uid)
	if docType := c.Query("type"); docType != "" {
		q = q.Where("document_type = ?", docType)
	}

	var docs []models.DocumentUpload
	if err := q.Order("created_at desc").Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func UploadDocument(c *gin.Context) {
	uid := c.GetUint("userID")

	var input DocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := false
	for _, t := range models.DocumentTypes {
		if input.DocumentType == t {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document type", "choices": models.DocumentTypes})
		return
	}

	url, err := utils.UploadBase64ToS3(input.FileData, "documents/"+input.DocumentType, input.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	doc := models.DocumentUpload{
		UserID:       uid,
		DocumentType: input.DocumentType,
		DocumentURL:  url,
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func DeleteDocument(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.DocumentUpload{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
