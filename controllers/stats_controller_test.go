package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/models"
	"fittrack/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.DailyRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	stats := NewStatsController(services.NewStatsService(db), services.NewProfileService(db), nil)
	profile := NewProfileController(services.NewProfileService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", uint(1)) }) // stand-in auth
	r.GET("/stats/summary", stats.GetSummary)
	r.POST("/stats/metrics", stats.SaveMetric)
	r.GET("/stats/streak", stats.GetStreak)
	r.PUT("/profile", profile.UpdateProfile)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveMetricAndSummary(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "POST", "/stats/metrics", gin.H{"metric": "calories", "value": 1850})
	if w.Code != http.StatusOK {
		t.Fatalf("save metric status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/stats/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d", w.Code)
	}

	var out struct {
		Today *models.DailyRecord `json:"today"`
		Goals struct {
			CalorieGoal int `json:"calorie_goal"`
		} `json:"goals"`
		Streak int `json:"streak"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if out.Today == nil || out.Today.Calories != 1850 {
		t.Errorf("today = %+v, want calories 1850", out.Today)
	}
	if out.Goals.CalorieGoal != 2000 {
		t.Errorf("calorie goal = %d, want 2000 fallback without profile", out.Goals.CalorieGoal)
	}
	if out.Streak != 1 {
		t.Errorf("streak = %d, want 1 after an active day", out.Streak)
	}
}

func TestSaveMetricUnknownMetricIs400(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "POST", "/stats/metrics", gin.H{"metric": "mood", "value": 5})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSaveMetricBadDateIs400(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "POST", "/stats/metrics", gin.H{"metric": "water", "value": 6, "date": "15/06/2026"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateProfileFeedsGoalsIntoSummary(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "PUT", "/profile", gin.H{
		"weight_kg": 70, "height_cm": 175, "age_years": 30,
		"sex": "male", "activity_level": "moderate", "goal": "lose",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/stats/summary", nil)
	var out struct {
		Goals struct {
			TDEE        int `json:"tdee"`
			CalorieGoal int `json:"calorie_goal"`
		} `json:"goals"`
		MacroTargets struct {
			Protein int `json:"protein"`
		} `json:"macro_targets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if out.Goals.TDEE != 2556 || out.Goals.CalorieGoal != 2056 {
		t.Errorf("goals = %+v, want tdee 2556 / goal 2056", out.Goals)
	}
	if out.MacroTargets.Protein != 140 {
		t.Errorf("protein target = %d, want 140", out.MacroTargets.Protein)
	}
}

func TestUpdateProfileValidationIs400(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "PUT", "/profile", gin.H{
		"weight_kg": 20, "height_cm": 175, "age_years": 30,
		"sex": "male", "activity_level": "moderate", "goal": "lose",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestStreakEndpointEmptyHistory(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, "GET", "/stats/streak", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Streak int `json:"streak"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Streak != 0 {
		t.Errorf("streak = %d, want 0", out.Streak)
	}
}
