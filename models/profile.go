package models

import (
	"gorm.io/gorm"
)

// Profile holds the biometric inputs the energy calculator runs on.
// One row per user, created during first-time setup.
type Profile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	WeightKg      float64 `json:"weight_kg"` // 30–300
	HeightCm      float64 `json:"height_cm"` // 100–250
	AgeYears      int     `json:"age_years"` // 10–120
	Sex           string  `json:"sex"`       // "male" | "female"
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"` // "lose" | "maintain" | "gain"
}
