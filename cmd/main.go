package main

import (
	"time"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	config.InitDB(cfg)
	config.InitRedis(cfg)
	utils.InitMailer()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		logrus.WithError(err).Fatal("push service init failed")
	}

	messages := services.NewMessageService(config.DB, hub, push)

	reminders := services.NewReminderService(config.DB, utils.SESMailer{}, cfg.ReminderTolerance)
	scheduler := services.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleReminderSweep(reminders); err != nil {
		logrus.WithError(err).Fatal("failed to schedule reminder sweep")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := routes.SetupRouter(
		controllers.NewMessageController(messages),
		controllers.NewDeviceController(push),
		controllers.NewRealtimeController(hub),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
