package controllers

import (
	"net/http"

	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{Coach: coach}
}

// Chat answers one fitness question. The coach is stateless; clients keep
// their own transcript.
func (h *CoachController) Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.Coach.Ask(input.Message)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
