package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HabitMailer is the outbound transport for the daily reminder. The SES
// implementation lives in utils; tests swap in a fake.
type HabitMailer interface {
	SendHabitReminder(to, firstName string, habits []models.Habit) error
}

// ReminderService runs the once-a-minute reminder sweep: one email per user
// per calendar day, gated by UserSettings.LastReminderSent.
type ReminderService struct {
	db        *gorm.DB
	mailer    HabitMailer
	tolerance int // minutes past the configured reminder time that still match
}

func NewReminderService(db *gorm.DB, mailer HabitMailer, toleranceMinutes int) *ReminderService {
	if toleranceMinutes < 0 {
		toleranceMinutes = 0
	}
	return &ReminderService{db: db, mailer: mailer, tolerance: toleranceMinutes}
}

// Sweep processes all users whose reminder time matches `now` and whose gate
// has not been advanced today. Per-user failures are logged and skipped, so
// one bad address never blocks the rest of the run. Returns the number of
// reminders successfully sent and recorded.
func (r *ReminderService) Sweep(now time.Time) (int, error) {
	today := dayStartLocal(now)

	var settings []models.UserSettings
	err := r.db.
		Where("email_notifications = ? AND (last_reminder_sent IS NULL OR last_reminder_sent < ?)", true, today).
		Find(&settings).Error
	if err != nil {
		return 0, fmt.Errorf("reminder sweep query: %w", err)
	}

	sent := 0
	for _, s := range settings {
		if !r.timeMatches(s.ReminderTime, now) {
			continue
		}

		log := logrus.WithFields(logrus.Fields{"user_id": s.UserID, "reminder_time": s.ReminderTime})

		var user models.User
		if err := r.db.Where("id = ? AND disabled = ?", s.UserID, false).First(&user).Error; err != nil {
			log.WithError(err).Warn("reminder: user unavailable")
			continue
		}

		var habits []models.Habit
		if err := r.db.Where("user_id = ? AND is_active = ?", s.UserID, true).Find(&habits).Error; err != nil {
			log.WithError(err).Warn("reminder: habit query failed")
			continue
		}
		if len(habits) == 0 {
			// Nothing to remind about. The gate stays open so the user is
			// still eligible later today if a habit shows up.
			continue
		}

		if err := r.mailer.SendHabitReminder(user.Email, user.FirstName, habits); err != nil {
			// Gate stays open; a later sweep inside the match window retries.
			log.WithError(err).Warn("reminder: send failed")
			continue
		}

		// Update-where-unchanged instead of read-then-write: overlapping
		// sweeps race on the gate, and only one may record the send.
		res := r.db.Model(&models.UserSettings{}).
			Where("id = ? AND (last_reminder_sent IS NULL OR last_reminder_sent < ?)", s.ID, today).
			Update("last_reminder_sent", today)
		if res.Error != nil {
			log.WithError(res.Error).Error("reminder: gate update failed")
			continue
		}
		if res.RowsAffected == 0 {
			log.Warn("reminder: gate already advanced by a concurrent sweep")
			continue
		}

		sent++
		log.Info("reminder sent")
	}

	return sent, nil
}

// timeMatches reports whether `now` falls on the configured HH:MM minute,
// or within the tolerance window after it. Malformed times never match.
func (r *ReminderService) timeMatches(reminderTime string, now time.Time) bool {
	target, ok := parseMinuteOfDay(reminderTime)
	if !ok {
		return false
	}
	current := now.Hour()*60 + now.Minute()
	diff := current - target
	return diff >= 0 && diff <= r.tolerance
}

func parseMinuteOfDay(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
