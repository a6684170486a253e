package models

import "time"

// DailyRecord is the per-user, per-calendar-day metrics document.
// Key is "{userID}_{YYYY-MM-DD}"; partial updates merge into the row
// field by field, they never replace it.
type DailyRecord struct {
	Key            string    `gorm:"primaryKey;size:64" json:"key"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Date           time.Time `gorm:"index;not null" json:"date"` // local midnight
	Calories       float64   `json:"calories"`
	Protein        float64   `json:"protein"`
	Carbs          float64   `json:"carbs"`
	Fats           float64   `json:"fats"`
	Water          int       `json:"water"` // glasses
	Steps          int       `json:"steps"`
	WorkoutMinutes float64   `json:"workout_minutes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
