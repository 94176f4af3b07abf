package models

import (
	"gorm.io/gorm"
)

type Conversation struct {
	gorm.Model
	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID"`
}

type ConversationParticipant struct {
	gorm.Model
	ConversationID uint `gorm:"not null;uniqueIndex:idx_conv_user"`
	UserID         uint `gorm:"not null;uniqueIndex:idx_conv_user"`
}

type Message struct {
	gorm.Model
	ConversationID uint   `gorm:"index;not null"`
	SenderID       uint   `gorm:"index;not null"`
	Text           string `gorm:"type:text;not null"`
	IsRead         bool   `gorm:"default:false"`
}
