package services

import (
	"errors"
	"strconv"

	"backend/models"

	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
)

// MessageService writes messages and fans out delivery: websocket for online
// participants, push for everyone else.
type MessageService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewMessageService(db *gorm.DB, hub *RealtimeHub, push *PushService) *MessageService {
	return &MessageService{db: db, hub: hub, push: push}
}

func (m *MessageService) isParticipant(conversationID, userID uint) (bool, error) {
	var count int64
	err := m.db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateConversation starts a conversation between the creator and the other
// participants.
func (m *MessageService) CreateConversation(creatorID uint, participantIDs []uint) (*models.Conversation, error) {
	ids := map[uint]struct{}{creatorID: {}}
	for _, id := range participantIDs {
		ids[id] = struct{}{}
	}

	var conv models.Conversation
	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		for id := range ids {
			p := models.ConversationParticipant{ConversationID: conv.ID, UserID: id}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListConversations returns the conversations the user belongs to.
func (m *MessageService) ListConversations(userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := m.db.
		Preload("Participants").
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.created_at desc").
		Find(&convs).Error
	return convs, err
}

// Messages returns the conversation's messages oldest first; the caller must
// be a participant.
func (m *MessageService) Messages(conversationID, userID uint) ([]models.Message, error) {
	ok, err := m.isParticipant(conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConversationNotFound
	}

	var msgs []models.Message
	err = m.db.Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&msgs).Error
	return msgs, err
}

// Send appends a message and notifies the other participants.
func (m *MessageService) Send(conversationID, senderID uint, text string) (*models.Message, error) {
	ok, err := m.isParticipant(conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	msg := models.Message{ConversationID: conversationID, SenderID: senderID, Text: text}
	if err := m.db.Create(&msg).Error; err != nil {
		return nil, err
	}

	var participants []models.ConversationParticipant
	if err := m.db.Where("conversation_id = ?", conversationID).Find(&participants).Error; err == nil {
		for _, p := range participants {
			if p.UserID == senderID {
				continue
			}
			if m.hub != nil && m.hub.IsOnline(p.UserID) {
				m.hub.BroadcastEvent(p.UserID, "message.new", msg)
			} else if m.push != nil {
				m.push.PushToUser(p.UserID, "New message", text, map[string]string{
					"conversation_id": strconv.FormatUint(uint64(conversationID), 10),
				})
			}
		}
	}

	return &msg, nil
}

// MarkAsRead flags everyone else's unread messages in the conversation.
func (m *MessageService) MarkAsRead(conversationID, userID uint) error {
	ok, err := m.isParticipant(conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConversationNotFound
	}

	return m.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Update("is_read", true).Error
}
