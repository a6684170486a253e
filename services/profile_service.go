package services

import (
	"errors"

	"fittrack/models"

	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

type ProfileInput struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	AgeYears      int     `json:"age_years"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

var validSexes = map[string]bool{"male": true, "female": true}
var validGoals = map[string]bool{"lose": true, "maintain": true, "gain": true}

// ValidateProfileInput rejects out-of-range biometrics before any write.
func ValidateProfileInput(in ProfileInput) error {
	if in.WeightKg < 30 || in.WeightKg > 300 {
		return &ValidationError{Field: "weight_kg", Reason: "must be between 30 and 300"}
	}
	if in.HeightCm < 100 || in.HeightCm > 250 {
		return &ValidationError{Field: "height_cm", Reason: "must be between 100 and 250"}
	}
	if in.AgeYears < 10 || in.AgeYears > 120 {
		return &ValidationError{Field: "age_years", Reason: "must be between 10 and 120"}
	}
	if !validSexes[in.Sex] {
		return &ValidationError{Field: "sex", Reason: "must be male or female"}
	}
	if _, ok := activityMultipliers[in.ActivityLevel]; !ok {
		return &ValidationError{Field: "activity_level", Reason: "unknown activity level"}
	}
	if !validGoals[in.Goal] {
		return &ValidationError{Field: "goal", Reason: "must be lose, maintain or gain"}
	}
	return nil
}

// GetProfile returns the user's profile, or nil if setup hasn't happened yet.
func (s *ProfileService) GetProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Op: "load profile", Err: err}
	}
	return &p, nil
}

// SaveProfile validates and upserts the user's biometric profile.
func (s *ProfileService) SaveProfile(userID uint, in ProfileInput) (*models.Profile, error) {
	if err := ValidateProfileInput(in); err != nil {
		return nil, err
	}

	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ReadError{Op: "load profile", Err: err}
	}

	p.UserID = userID
	p.WeightKg = in.WeightKg
	p.HeightCm = in.HeightCm
	p.AgeYears = in.AgeYears
	p.Sex = in.Sex
	p.ActivityLevel = in.ActivityLevel
	p.Goal = in.Goal

	if err := s.db.Save(&p).Error; err != nil {
		return nil, &WriteError{Op: "save profile", Err: err}
	}
	return &p, nil
}
