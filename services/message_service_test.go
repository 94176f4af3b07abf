package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run with no hub and no push service; fanout is a no-op then.
func newTestMessageService(t *testing.T) (*MessageService, *models.User, *models.User) {
	t.Helper()

	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	return NewMessageService(db, nil, nil), alice, bob
}

func TestCreateConversation(t *testing.T) {
	svc, alice, bob := newTestMessageService(t)

	conv, err := svc.CreateConversation(alice.ID, []uint{bob.ID})
	require.NoError(t, err)

	convs, err := svc.ListConversations(alice.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, conv.ID, convs[0].ID)

	convs, err = svc.ListConversations(bob.ID)
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestCreateConversationDedupesCreator(t *testing.T) {
	svc, alice, bob := newTestMessageService(t)

	// creator listed among the participants must not produce a duplicate row
	conv, err := svc.CreateConversation(alice.ID, []uint{alice.ID, bob.ID})
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ?", conv.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSendAndRead(t *testing.T) {
	svc, alice, bob := newTestMessageService(t)
	conv, err := svc.CreateConversation(alice.ID, []uint{bob.ID})
	require.NoError(t, err)

	_, err = svc.Send(conv.ID, alice.ID, "hello")
	require.NoError(t, err)
	_, err = svc.Send(conv.ID, alice.ID, "anyone there?")
	require.NoError(t, err)

	msgs, err := svc.Messages(conv.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text) // oldest first
	assert.False(t, msgs[0].IsRead)

	require.NoError(t, svc.MarkAsRead(conv.ID, bob.ID))

	msgs, err = svc.Messages(conv.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, msgs[0].IsRead)
	assert.True(t, msgs[1].IsRead)
}

func TestMessagingOutsiderIsRejected(t *testing.T) {
	svc, alice, bob := newTestMessageService(t)
	mallory := createTestUser(t, svc.db, "mallory@example.com")

	conv, err := svc.CreateConversation(alice.ID, []uint{bob.ID})
	require.NoError(t, err)

	_, err = svc.Send(conv.ID, mallory.ID, "let me in")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.Messages(conv.ID, mallory.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	assert.ErrorIs(t, svc.MarkAsRead(conv.ID, mallory.ID), ErrConversationNotFound)
}
