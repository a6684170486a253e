package controllers

import (
	"net/http"

	"fittrack/services"
	"fittrack/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(p *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: p}
}

// GetProfile returns the biometric profile plus the numbers derived from
// it (energy goals, macro targets, BMI). first_time signals the client to
// run the setup flow.
func (h *ProfileController) GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := h.Profiles.GetProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil, "first_time": true})
		return
	}

	goals := services.ComputeGoals(*profile)
	macros := services.ComputeMacroTargets(*profile, goals.CalorieGoal)

	out := gin.H{
		"profile":       profile,
		"first_time":    false,
		"goals":         goals,
		"macro_targets": macros,
	}
	if bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProfileController) UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Profiles.SaveProfile(uid, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}

	goals := services.ComputeGoals(*profile)
	c.JSON(http.StatusOK, gin.H{"profile": profile, "goals": goals})
}
