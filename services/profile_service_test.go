package services

import (
	"errors"
	"testing"
)

func validInput() ProfileInput {
	return ProfileInput{
		WeightKg: 70, HeightCm: 175, AgeYears: 30,
		Sex: "male", ActivityLevel: "moderate", Goal: "lose",
	}
}

func TestValidateProfileInput(t *testing.T) {
	if err := ValidateProfileInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ProfileInput)
		field  string
	}{
		{"weight too low", func(in *ProfileInput) { in.WeightKg = 25 }, "weight_kg"},
		{"weight too high", func(in *ProfileInput) { in.WeightKg = 350 }, "weight_kg"},
		{"height too low", func(in *ProfileInput) { in.HeightCm = 90 }, "height_cm"},
		{"height too high", func(in *ProfileInput) { in.HeightCm = 260 }, "height_cm"},
		{"age too low", func(in *ProfileInput) { in.AgeYears = 8 }, "age_years"},
		{"age too high", func(in *ProfileInput) { in.AgeYears = 130 }, "age_years"},
		{"bad sex", func(in *ProfileInput) { in.Sex = "other" }, "sex"},
		{"bad activity", func(in *ProfileInput) { in.ActivityLevel = "extreme" }, "activity_level"},
		{"bad goal", func(in *ProfileInput) { in.Goal = "bulk" }, "goal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			err := ValidateProfileInput(in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Errorf("Field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestValidateProfileInputBoundaries(t *testing.T) {
	in := validInput()
	in.WeightKg, in.HeightCm, in.AgeYears = 30, 100, 10
	if err := ValidateProfileInput(in); err != nil {
		t.Errorf("lower boundaries rejected: %v", err)
	}
	in.WeightKg, in.HeightCm, in.AgeYears = 300, 250, 120
	if err := ValidateProfileInput(in); err != nil {
		t.Errorf("upper boundaries rejected: %v", err)
	}
}

func TestSaveProfileCreatesThenUpdates(t *testing.T) {
	svc := NewProfileService(testDB(t))

	p, err := svc.SaveProfile(1, validInput())
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if p.WeightKg != 70 {
		t.Errorf("WeightKg = %v, want 70", p.WeightKg)
	}

	in := validInput()
	in.WeightKg = 68
	in.Goal = "maintain"
	if _, err := svc.SaveProfile(1, in); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetProfile(1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.WeightKg != 68 || got.Goal != "maintain" {
		t.Errorf("got weight=%v goal=%q, want 68/maintain", got.WeightKg, got.Goal)
	}
}

func TestSaveProfileRejectsInvalidWithoutWriting(t *testing.T) {
	svc := NewProfileService(testDB(t))

	in := validInput()
	in.AgeYears = 5
	if _, err := svc.SaveProfile(1, in); err == nil {
		t.Fatal("invalid input accepted")
	}

	p, err := svc.GetProfile(1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p != nil {
		t.Errorf("profile persisted despite validation failure: %+v", p)
	}
}

func TestGetProfileBeforeSetup(t *testing.T) {
	svc := NewProfileService(testDB(t))

	p, err := svc.GetProfile(99)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p != nil {
		t.Errorf("p = %+v, want nil before first-time setup", p)
	}
}
