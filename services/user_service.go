package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

// GetOrCreateSettings returns the user's settings row, creating the default
// one on first access. At most one row exists per user.
func GetOrCreateSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := config.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{
			UserID:             userID,
			EmailNotifications: true,
			PushNotifications:  true,
			ReminderTime:       "09:00",
		}
		if err := config.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

type SettingsInput struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	ReminderTime       *string `json:"reminder_time"`
	DarkMode           *bool   `json:"dark_mode"`
}

func UpdateSettings(userID uint, input SettingsInput) (*models.UserSettings, error) {
	settings, err := GetOrCreateSettings(userID)
	if err != nil {
		return nil, err
	}

	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.PushNotifications != nil {
		settings.PushNotifications = *input.PushNotifications
	}
	if input.ReminderTime != nil {
		if _, err := time.Parse("15:04", *input.ReminderTime); err != nil {
			return nil, errors.New("reminder_time must be HH:MM")
		}
		settings.ReminderTime = *input.ReminderTime
	}
	if input.DarkMode != nil {
		settings.DarkMode = *input.DarkMode
	}

	if err := config.DB.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
