package services

import (
	"testing"
	"time"

	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubNotifier имитирует хаб: отдает заданный результат доставки и
// запоминает последнее событие.
type stubNotifier struct {
	connected bool
	lastEvent string
	lastUser  string
}

func (n *stubNotifier) SendToUser(userID, event string, payload interface{}) bool {
	n.lastUser = userID
	n.lastEvent = event
	return n.connected
}

func (n *stubNotifier) IsClientConnected(userID string) bool { return n.connected }

func seedMessage(t *testing.T, db *gorm.DB, senderID, receiverID, content string, at time.Time) *models.Message {
	t.Helper()
	msg := &models.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	msg.CreatedAt = at
	require.NoError(t, db.Create(msg).Error)
	return msg
}

func TestSendMessagePersists(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)
	bob := createTestUser(t, db, "Bob", "bob@test.io", models.UserRoleProvider)

	resp, err := sc.MessageService.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: bob.ID,
		Content:    "  hello  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.False(t, resp.Delivered)
	assert.False(t, resp.Read)

	var stored models.Message
	require.NoError(t, db.First(&stored, "id = ?", resp.ID).Error)
	assert.Equal(t, alice.ID, stored.SenderID)
	assert.Equal(t, bob.ID, stored.ReceiverID)
}

func TestSendMessageToSelf(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)

	_, err := sc.MessageService.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: alice.ID,
		Content:    "note to self",
	})
	assert.ErrorIs(t, err, apperrors.ErrCannotMessageSelf)
}

func TestSendMessageEmptyContent(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)
	bob := createTestUser(t, db, "Bob", "bob@test.io", models.UserRoleProvider)

	_, err := sc.MessageService.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: bob.ID,
		Content:    "   \n\t ",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyMessageContent)
}

func TestSendMessageMissingReceiver(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)

	_, err := sc.MessageService.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: "ghost",
		Content:    "anyone there?",
	})
	assert.ErrorIs(t, err, apperrors.ErrReceiverNotFound)
}

func TestSendMessageMarksDeliveredWhenConnected(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)
	bob := createTestUser(t, db, "Bob", "bob@test.io", models.UserRoleProvider)

	notifier := &stubNotifier{connected: true}
	svc := NewMessageService(
		repositories.NewMessageRepository(db),
		repositories.NewUserRepository(db),
		notifier,
	)

	resp, err := svc.Send(alice.ID, &dto.SendMessageRequest{ReceiverID: bob.ID, Content: "ping"})
	require.NoError(t, err)
	assert.True(t, resp.Delivered)
	assert.Equal(t, bob.ID, notifier.lastUser)
	assert.Equal(t, "message:new", notifier.lastEvent)

	// флаг в сторе выставляется асинхронно
	assert.Eventually(t, func() bool {
		var stored models.Message
		if err := db.First(&stored, "id = ?", resp.ID).Error; err != nil {
			return false
		}
		return stored.Delivered
	}, 2*time.Second, 20*time.Millisecond)
}

func TestGetHistoryAscendingAndMarksRead(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)
	bob := createTestUser(t, db, "Bob", "bob@test.io", models.UserRoleProvider)

	base := time.Now().Add(-time.Hour)
	seedMessage(t, db, alice.ID, bob.ID, "first", base)
	seedMessage(t, db, bob.ID, alice.ID, "second", base.Add(time.Minute))
	seedMessage(t, db, alice.ID, bob.ID, "third", base.Add(2*time.Minute))

	history, err := sc.MessageService.GetHistory(bob.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)

	// входящие Боба от Алисы теперь прочитаны
	var unread int64
	require.NoError(t, db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", bob.ID, alice.ID, false).
		Count(&unread).Error)
	assert.EqualValues(t, 0, unread)
}

func TestGetRecentChatsGroupsByPeer(t *testing.T) {
	sc, db := newTestContainer(t)
	alice := createTestUser(t, db, "Alice", "alice@test.io", models.UserRoleStudent)
	bob := createTestUser(t, db, "Bob", "bob@test.io", models.UserRoleProvider)
	carol := createTestUser(t, db, "Carol", "carol@test.io", models.UserRoleStudent)

	base := time.Now().Add(-time.Hour)
	seedMessage(t, db, alice.ID, bob.ID, "hi bob", base)
	seedMessage(t, db, bob.ID, alice.ID, "hi alice", base.Add(time.Minute))
	seedMessage(t, db, carol.ID, alice.ID, "ping", base.Add(2*time.Minute))
	seedMessage(t, db, carol.ID, alice.ID, "ping again", base.Add(3*time.Minute))

	chats, err := sc.MessageService.GetRecentChats(alice.ID)
	require.NoError(t, err)
	require.Len(t, chats, 2)

	// свежий диалог первым
	assert.Equal(t, carol.ID, chats[0].PeerID)
	assert.Equal(t, "Carol", chats[0].PeerName)
	assert.Equal(t, "ping again", chats[0].LastMessage)
	assert.EqualValues(t, 2, chats[0].Unread)

	assert.Equal(t, bob.ID, chats[1].PeerID)
	assert.Equal(t, "hi alice", chats[1].LastMessage)
	assert.EqualValues(t, 1, chats[1].Unread)
}
