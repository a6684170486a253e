package controllers

import (
	"fmt"
	"net/http"

	"fittrack/config"
	"fittrack/utils"

	"github.com/gin-gonic/gin"
)

func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"photo_url":    user.PhotoURL,
	})
}

func UpdateDisplayName(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		DisplayName string `json:"display_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user.DisplayName = input.DisplayName
	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"display_name": user.DisplayName})
}

// UploadAvatar moderates a base64 image, uploads it to S3 and saves the
// resulting URL as the user's photo.
func UploadAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := utils.ModerateImage(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "moderation failed: " + err.Error()})
		return
	}
	if len(labels) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "image rejected by moderation",
			"labels": labels,
		})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.ImageBase64, fmt.Sprintf("user-%d", user.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.PhotoURL = url
	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
