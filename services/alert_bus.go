package services

import (
	"fmt"
	"time"

	"fittrack/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert and fans it out over the socket and push
// channels. Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.SendToUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "FitTrack", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// NotifyStreakMilestone fires an alert when a freshly recomputed streak
// lands on a weekly milestone.
func NotifyStreakMilestone(userID uint, streak int) {
	if streak > 0 && streak%7 == 0 {
		EmitAlert(userID, "streak", fmt.Sprintf("%d-day streak! Keep going 🔥", streak))
	}
}
