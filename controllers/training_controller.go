package controllers

import (
	"net/http"

	"fittrack/services"

	"github.com/gin-gonic/gin"
)

func ListMuscleGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"muscle_groups": services.ListMuscleGroups()})
}

func GetMuscleGroup(c *gin.Context) {
	group, err := services.GetMuscleGroup(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"muscle_group": group})
}
