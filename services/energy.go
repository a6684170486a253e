package services

import (
	"math"

	"fittrack/models"
)

// activityMultipliers maps an activity level to its TDEE multiplier.
// Unknown levels fall back to "moderate".
var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

type EnergyGoals struct {
	BMR         float64 `json:"bmr"`
	TDEE        int     `json:"tdee"`
	CalorieGoal int     `json:"calorie_goal"`
}

type MacroTargets struct {
	Protein int `json:"protein"` // g
	Carbs   int `json:"carbs"`   // g
	Fats    int `json:"fats"`    // g
}

// ComputeBMR applies Mifflin-St Jeor. A zero return means the profile is
// incomplete (missing weight, height or age), not a real BMR.
func ComputeBMR(p models.Profile) float64 {
	if p.WeightKg == 0 || p.HeightCm == 0 || p.AgeYears == 0 {
		return 0
	}
	if p.Sex == "male" {
		return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears) + 5
	}
	return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears) - 161
}

// ComputeGoals derives BMR, TDEE and the daily calorie goal from a profile.
// Pure and deterministic; re-evaluated whenever the profile changes.
// An incomplete profile yields TDEE 0 and the 2000 kcal fallback goal.
func ComputeGoals(p models.Profile) EnergyGoals {
	bmr := ComputeBMR(p)

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.55
	}
	tdee := int(math.Round(bmr * mult))

	goal := tdee
	switch {
	case tdee == 0:
		goal = 2000
	case p.Goal == "lose":
		goal = tdee - 500
	case p.Goal == "gain":
		goal = tdee + 500
	}

	return EnergyGoals{BMR: bmr, TDEE: tdee, CalorieGoal: goal}
}

// ComputeMacroTargets splits the calorie goal into gram targets:
// protein 2 g/kg bodyweight (140 g when weight is unknown), carbs 40% of
// calories at 4 kcal/g, fats 30% at 9 kcal/g.
func ComputeMacroTargets(p models.Profile, calorieGoal int) MacroTargets {
	protein := 140
	if p.WeightKg > 0 {
		protein = int(math.Round(p.WeightKg * 2))
	}
	return MacroTargets{
		Protein: protein,
		Carbs:   int(math.Round(float64(calorieGoal) * 0.4 / 4)),
		Fats:    int(math.Round(float64(calorieGoal) * 0.3 / 9)),
	}
}
