package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"backend/models"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

// Config holds the application configuration
type Config struct {
	AppPort    string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	JWTSecret  string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	// ReminderTolerance widens the minute-exact reminder match by N minutes
	// so scheduler jitter does not skip a user for the day.
	ReminderTolerance int
	IsProd            bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // .env is optional outside local dev
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	tolerance, _ := strconv.Atoi(os.Getenv("REMINDER_TOLERANCE_MIN"))
	return &Config{
		AppPort:           os.Getenv("APP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASS"),
		RedisDB:           redisDB,
		ReminderTolerance: tolerance,
		IsProd:            os.Getenv("IS_PROD") == "true",
	}
}

func InitDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.UserDevice{},
		&models.PersonalInformation{},
		&models.GlobalInformation{},
		&models.ProfessionalInformation{},
		&models.WorkExperience{},
		&models.PreviousExperience{},
		&models.Education{},
		&models.LanguageSkill{},
		&models.Certificate{},
		&models.HonorsAwardsPublications{},
		&models.FunctionalSkill{},
		&models.TechnicalSkill{},
		&models.SwotAnalysis{},
		&models.Strength{},
		&models.Weakness{},
		&models.Opportunity{},
		&models.Threat{},
		&models.MainGoal{},
		&models.SubGoal{},
		&models.Course{},
		&models.CoursePurchase{},
		&models.VideoLecture{},
		&models.Quiz{},
		&models.Habit{},
		&models.Coach{},
		&models.CoachRequest{},
		&models.MoodTracking{},
		&models.Accomplishment{},
		&models.AccomplishmentShare{},
		&models.UserJob{},
		&models.WorkItem{},
		&models.DocumentUpload{},
		&models.Conversation{},
		&models.ConversationParticipant{},
		&models.Message{},
		&models.Activity{},
		&models.Note{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func InitRedis(cfg *Config) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := Redis.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
}
