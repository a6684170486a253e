package controllers

import (
	"errors"
	"net/http"
	"time"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats    *services.StatsService
	Profiles *services.ProfileService
	RT       *services.RealtimeHub
}

func NewStatsController(stats *services.StatsService, profiles *services.ProfileService, rt *services.RealtimeHub) *StatsController {
	return &StatsController{Stats: stats, Profiles: profiles, RT: rt}
}

// parseDate reads an optional YYYY-MM-DD query/body date. The client sends
// the date it derived in its own timezone; absent that, the server's local
// date is used (see DESIGN.md on timezone drift).
func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", dateStr, time.Local)
}

func statusForServiceError(err error) int {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetToday returns today's record; metrics are implicitly zero when no
// record exists yet.
func (h *StatsController) GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	rec, err := h.Stats.LoadRecord(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"record": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

type metricInput struct {
	Metric string  `json:"metric" binding:"required"`
	Value  float64 `json:"value"`
	Date   string  `json:"date"` // optional YYYY-MM-DD
}

// SaveMetric merges one metric into today's record, then recomputes the
// streak so milestone alerts fire as soon as they are earned. On failure
// nothing is advanced; the client re-presents the unsaved input.
func (h *StatsController) SaveMetric(c *gin.Context) {
	uid := c.GetUint("userID")

	var input metricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	rec, err := h.Stats.UpsertMetric(uid, date, input.Metric, input.Value)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}

	if history, err := h.Stats.ListRecords(uid); err == nil {
		streak := services.ComputeStreak(history, time.Now())
		services.NotifyStreakMilestone(uid, streak)
	}

	if h.RT != nil {
		h.RT.SendToUser(uid, gin.H{"kind": "stats.updated", "record": rec})
	}

	c.JSON(http.StatusOK, gin.H{"record": rec})
}

func (h *StatsController) GetStreak(c *gin.Context) {
	uid := c.GetUint("userID")

	history, err := h.Stats.ListRecords(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": services.ComputeStreak(history, time.Now())})
}

func (h *StatsController) GetWeekly(c *gin.Context) {
	uid := c.GetUint("userID")

	history, err := h.Stats.ListRecords(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	window := services.WeeklyWindow(history)
	goal := 2000
	if profile, err := h.Profiles.GetProfile(uid); err == nil && profile != nil {
		goal = services.ComputeGoals(*profile).CalorieGoal
	}

	c.JSON(http.StatusOK, gin.H{
		"days":         services.WeeklyChart(window),
		"records":      window,
		"calorie_goal": goal,
	})
}

// GetSummary assembles the whole stats screen in one call: profile with
// computed goals, today's record, the weekly window and the streak.
// A failed history fetch degrades the derived views to zero/empty rather
// than serving stale numbers; the failure is reported alongside.
func (h *StatsController) GetSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := h.Profiles.GetProfile(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var p models.Profile
	if profile != nil {
		p = *profile
	}
	goals := services.ComputeGoals(p)
	macros := services.ComputeMacroTargets(p, goals.CalorieGoal)

	today, err := h.Stats.LoadRecord(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	streak := 0
	var chart []services.ChartDay
	var historyErr string
	if history, err := h.Stats.ListRecords(uid); err != nil {
		historyErr = err.Error()
	} else {
		streak = services.ComputeStreak(history, time.Now())
		chart = services.WeeklyChart(services.WeeklyWindow(history))
	}

	out := gin.H{
		"profile":       profile, // null until first-time setup
		"goals":         goals,
		"macro_targets": macros,
		"today":         today,
		"weekly":        chart,
		"streak":        streak,
	}
	if historyErr != "" {
		out["history_error"] = historyErr
	}
	c.JSON(http.StatusOK, out)
}
