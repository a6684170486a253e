package controllers

import (
	"net/http"

	"fittrack/config"
	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{Push: push}
}

// RegisterDevice binds a push token to the authenticated user so streak
// milestones reach the device.
func (h *DeviceController) RegisterDevice(c *gin.Context) {
	if h.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}
	uid := c.GetUint("userID")

	var input services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform and token required"})
		return
	}

	dev, err := h.Push.RegisterDevice(uid, input.Platform, input.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"device": dev})
}

// ToggleNotifications enables or disables push on every device of the
// user without deleting the SNS endpoints.
func (h *DeviceController) ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", *input.Enabled).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *input.Enabled})
}

// ListAlerts returns the user's notification feed, newest first.
func (h *DeviceController) ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
