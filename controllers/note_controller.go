package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

type NoteInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	IsPinned *bool  `json:"is_pinned"`
}

func ListNotes(c *gin.Context) {
	uid := c.GetUint("userID")

	var notes []models.Note
	err := config.DB.Where("user_id = ?", uid).
		Order("is_pinned desc, updated_at desc").
		Find(&notes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context) {
	uid := c.GetUint("userID")

	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := models.Note{
		UserID:  uid,
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	}
	if input.IsPinned != nil {
		note.IsPinned = *input.IsPinned
	}

	if err := config.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

func UpdateNote(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var note models.Note
	if err := config.DB.Where("id = ? AND user_id = ?", id, uid).First(&note).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note.Title = input.Title
	note.Content = input.Content
	note.Tags = input.Tags
	if input.IsPinned != nil {
		note.IsPinned = *input.IsPinned
	}

	if err := config.DB.Save(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Note{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
