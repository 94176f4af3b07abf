package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpoint_arn": dev.EndpointARN})
}

func (dc *DeviceController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var devices []models.UserDevice
	if err := config.DB.Where("user_id = ?", uid).Find(&devices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devices)
}

type DeviceToggleInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// Toggle flips push delivery for a single device without unregistering it.
func (dc *DeviceController) Toggle(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var input DeviceToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := config.DB.Model(&models.UserDevice{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("enabled", *input.Enabled)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *input.Enabled})
}
