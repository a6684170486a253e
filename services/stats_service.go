package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"fittrack/models"

	"gorm.io/gorm"
)

// metricColumns is the closed set of metric names the client may write,
// mapped to their record columns. Anything else is a ValidationError —
// metric names come in as strings from the UI and typos must not become
// silent no-ops.
var metricColumns = map[string]string{
	"calories":       "calories",
	"protein":        "protein",
	"carbs":          "carbs",
	"fats":           "fats",
	"water":          "water",
	"steps":          "steps",
	"workoutMinutes": "workout_minutes",
}

// water and steps are stored as whole counts
var integerMetrics = map[string]bool{
	"water": true,
	"steps": true,
}

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// RecordKey derives the per-day document key: "{userID}_{YYYY-MM-DD}".
// The date is the calendar day in local time at call time; no timezone is
// persisted, so a user crossing timezones can double-count or skip a day.
func RecordKey(userID uint, date time.Time) string {
	return fmt.Sprintf("%d_%s", userID, date.Format("2006-01-02"))
}

func dayStart(t time.Time) time.Time {
	tt := t.Local()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, tt.Location())
}

// daysBetween returns floor((later - earlier) / 24h) for day-truncated times.
func daysBetween(earlier, later time.Time) int {
	return int(math.Floor(later.Sub(earlier).Hours() / 24))
}

// UpsertMetric merges a single {metric: value} into the record for
// (userID, date), creating the record on first write of the day. All other
// fields are preserved; concurrent writers race per field, last writer wins.
func (s *StatsService) UpsertMetric(userID uint, date time.Time, metric string, value float64) (*models.DailyRecord, error) {
	col, ok := metricColumns[metric]
	if !ok {
		return nil, &ValidationError{Field: "metric", Reason: "unknown metric name"}
	}
	if value < 0 {
		return nil, &ValidationError{Field: metric, Reason: "must be non-negative"}
	}

	key := RecordKey(userID, date)
	rec := models.DailyRecord{Key: key}
	err := s.db.
		Where(models.DailyRecord{Key: key}).
		Attrs(models.DailyRecord{UserID: userID, Date: dayStart(date)}).
		FirstOrCreate(&rec).Error
	if err != nil {
		return nil, &WriteError{Op: "upsert " + metric, Err: err}
	}

	var stored any = value
	if integerMetrics[metric] {
		stored = int(math.Round(value))
	}
	if err := s.db.Model(&models.DailyRecord{}).
		Where("key = ?", key).
		Update(col, stored).Error; err != nil {
		return nil, &WriteError{Op: "upsert " + metric, Err: err}
	}

	var out models.DailyRecord
	if err := s.db.First(&out, "key = ?", key).Error; err != nil {
		return nil, &ReadError{Op: "reload record", Err: err}
	}
	return &out, nil
}

// LoadRecord returns the record for exactly that day, or nil when absent.
// Absent means all metrics are implicitly zero; no record is fabricated.
func (s *StatsService) LoadRecord(userID uint, date time.Time) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	err := s.db.First(&rec, "key = ?", RecordKey(userID, date)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Op: "load record", Err: err}
	}
	return &rec, nil
}

// ListRecords fetches the user's full history. Windowing and streak math
// happen client-side on the result; no date filtering is pushed down.
func (s *StatsService) ListRecords(userID uint) ([]models.DailyRecord, error) {
	var recs []models.DailyRecord
	if err := s.db.Where("user_id = ?", userID).Find(&recs).Error; err != nil {
		return nil, &ReadError{Op: "list records", Err: err}
	}
	return recs, nil
}

// WeeklyWindow sorts the history ascending by date and keeps the trailing
// seven records. Missing days are not filled in: an inactive stretch yields
// a shorter, non-contiguous window, and chart labels come from each
// record's actual weekday rather than a fixed calendar range.
func WeeklyWindow(records []models.DailyRecord) []models.DailyRecord {
	out := make([]models.DailyRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > 7 {
		out = out[len(out)-7:]
	}
	return out
}

// ComputeStreak walks the history backward from today counting consecutive
// active days. A record is active when workoutMinutes>0 or calories>0.
// The walk halts at the first record that is more than a day away from the
// last counted day, or that is inactive — so an inactive record logged
// today ends the streak even though yesterday was active.
func ComputeStreak(records []models.DailyRecord, today time.Time) int {
	recs := make([]models.DailyRecord, len(records))
	copy(recs, records)
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date.After(recs[j].Date) })

	streak := 0
	lastDate := dayStart(today)
	for _, r := range recs {
		d := dayStart(r.Date)
		diff := daysBetween(d, lastDate)
		if (diff == 0 || diff == 1) && (r.WorkoutMinutes > 0 || r.Calories > 0) {
			streak++
			lastDate = d
			continue
		}
		break
	}
	return streak
}

// ChartDay is one bar of the weekly calories chart.
type ChartDay struct {
	Date     string  `json:"date"`
	Day      string  `json:"day"` // weekday of the record itself
	Calories float64 `json:"calories"`
}

// WeeklyChart shapes a weekly window for charting: one bar per present
// record, labelled with that record's weekday.
func WeeklyChart(window []models.DailyRecord) []ChartDay {
	days := make([]ChartDay, 0, len(window))
	for _, r := range window {
		days = append(days, ChartDay{
			Date:     r.Date.Format("2006-01-02"),
			Day:      r.Date.Weekday().String()[:3],
			Calories: r.Calories,
		})
	}
	return days
}
