package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SchedulerService wraps cron-based background jobs.
type SchedulerService struct {
	cron *cron.Cron
}

func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{cron: cron.New(cron.WithLocation(loc))}
}

// ScheduleReminderSweep fires the reminder sweep at the top of every minute,
// matching the minute granularity of UserSettings.ReminderTime.
func (s *SchedulerService) ScheduleReminderSweep(reminder *ReminderService) (cron.EntryID, error) {
	return s.cron.AddFunc("* * * * *", func() {
		count, err := reminder.Sweep(time.Now())
		if err != nil {
			logrus.WithError(err).Error("reminder sweep failed")
			return
		}
		if count > 0 {
			logrus.WithField("sent", count).Info("reminder sweep finished")
		}
	})
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
