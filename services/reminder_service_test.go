package services

import (
	"errors"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	sent   []string // recipient emails, in send order
	fail   map[string]error
	onSend func(to string) // runs before the send is recorded
}

func (f *fakeMailer) SendHabitReminder(to, firstName string, habits []models.Habit) error {
	if err := f.fail[to]; err != nil {
		return err
	}
	if f.onSend != nil {
		f.onSend(to)
	}
	f.sent = append(f.sent, to)
	return nil
}

func seedReminderUser(t *testing.T, db *gorm.DB, email, reminderTime string, habitCount int) *models.User {
	t.Helper()

	user := createTestUser(t, db, email)
	settings := models.UserSettings{
		UserID:             user.ID,
		EmailNotifications: true,
		PushNotifications:  true,
		ReminderTime:       reminderTime,
	}
	require.NoError(t, db.Create(&settings).Error)

	for i := 0; i < habitCount; i++ {
		createTestHabit(t, db, user.ID, 0, nil)
	}
	return user
}

func loadSettings(t *testing.T, db *gorm.DB, userID uint) models.UserSettings {
	t.Helper()

	var s models.UserSettings
	require.NoError(t, db.Where("user_id = ?", userID).First(&s).Error)
	return s
}

func TestReminderSweep(t *testing.T) {
	nineAM := time.Date(2026, 3, 10, 9, 0, 30, 0, time.Local)

	t.Run("sends once and advances the gate", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		user := seedReminderUser(t, db, "a@example.com", "09:00", 2)

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, []string{"a@example.com"}, mailer.sent)

		s := loadSettings(t, db, user.ID)
		require.NotNil(t, s.LastReminderSent)
		assert.True(t, s.LastReminderSent.Equal(dayStartLocal(nineAM)))
	})

	t.Run("gate advanced mid-send is not counted", func(t *testing.T) {
		db := setupTestDB(t)
		user := seedReminderUser(t, db, "a@example.com", "09:00", 1)
		today := dayStartLocal(nineAM)

		// An overlapping sweep wins the gate while the email is in flight.
		mailer := &fakeMailer{}
		mailer.onSend = func(string) {
			require.NoError(t, db.Model(&models.UserSettings{}).
				Where("user_id = ?", user.ID).
				Update("last_reminder_sent", today).Error)
		}

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Len(t, mailer.sent, 1)

		s := loadSettings(t, db, user.ID)
		require.NotNil(t, s.LastReminderSent)
		assert.True(t, s.LastReminderSent.Equal(today))
	})

	t.Run("second sweep the same day sends nothing", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		seedReminderUser(t, db, "a@example.com", "09:00", 1)
		svc := NewReminderService(db, mailer, 5)

		sent, err := svc.Sweep(nineAM)
		require.NoError(t, err)
		require.Equal(t, 1, sent)

		sent, err = svc.Sweep(nineAM.Add(2 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("next day is eligible again", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		seedReminderUser(t, db, "a@example.com", "09:00", 1)
		svc := NewReminderService(db, mailer, 0)

		_, err := svc.Sweep(nineAM)
		require.NoError(t, err)

		sent, err := svc.Sweep(nineAM.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, mailer.sent, 2)
	})

	t.Run("wrong minute does not match", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		seedReminderUser(t, db, "a@example.com", "09:30", 1)

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Empty(t, mailer.sent)
	})

	t.Run("tolerance widens the match window", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		seedReminderUser(t, db, "a@example.com", "09:00", 1)

		// 09:03 with a 5 minute window matches; next day at 09:07 does not.
		svc := NewReminderService(db, mailer, 5)
		sent, err := svc.Sweep(nineAM.Add(3 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, sent)

		sent, err = svc.Sweep(nineAM.AddDate(0, 0, 1).Add(7 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("email notifications off skips the user", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		user := seedReminderUser(t, db, "a@example.com", "09:00", 1)
		require.NoError(t, db.Model(&models.UserSettings{}).
			Where("user_id = ?", user.ID).
			Update("email_notifications", false).Error)

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Empty(t, mailer.sent)
	})

	t.Run("no active habits means no send and an open gate", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		user := seedReminderUser(t, db, "a@example.com", "09:00", 0)
		svc := NewReminderService(db, mailer, 60)

		sent, err := svc.Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Nil(t, loadSettings(t, db, user.ID).LastReminderSent)

		// a habit created later the same day still gets today's reminder
		createTestHabit(t, db, user.ID, 0, nil)
		sent, err = svc.Sweep(nineAM.Add(30 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("send failure leaves the gate open for a retry", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{fail: map[string]error{"a@example.com": errors.New("ses throttled")}}
		user := seedReminderUser(t, db, "a@example.com", "09:00", 1)
		svc := NewReminderService(db, mailer, 5)

		sent, err := svc.Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Nil(t, loadSettings(t, db, user.ID).LastReminderSent)

		mailer.fail = nil
		sent, err = svc.Sweep(nineAM.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("one bad user does not block the rest", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{fail: map[string]error{"bad@example.com": errors.New("bounce")}}
		seedReminderUser(t, db, "bad@example.com", "09:00", 1)
		seedReminderUser(t, db, "good@example.com", "09:00", 1)

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, []string{"good@example.com"}, mailer.sent)
	})

	t.Run("disabled account is skipped", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		user := seedReminderUser(t, db, "a@example.com", "09:00", 1)
		require.NoError(t, db.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("disabled", true).Error)

		sent, err := NewReminderService(db, mailer, 0).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("malformed reminder time never matches", func(t *testing.T) {
		db := setupTestDB(t)
		mailer := &fakeMailer{}
		user := seedReminderUser(t, db, "a@example.com", "9am", 1)

		sent, err := NewReminderService(db, mailer, 1440).Sweep(nineAM)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
		assert.Nil(t, loadSettings(t, db, user.ID).LastReminderSent)
	})
}

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		in     string
		minute int
		ok     bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseMinuteOfDay(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.minute, got, tc.in)
		}
	}
}
