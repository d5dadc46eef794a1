package repositories

import (
	"errors"

	"unigig_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(msg *models.Message) error
	FindConversation(userA, userB string) ([]models.Message, error)
	FindAllForUser(userID string) ([]models.Message, error)
	MarkDelivered(id string) error
	MarkConversationRead(readerID, peerID string) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// FindConversation возвращает переписку двух пользователей по возрастанию времени.
func (r *MessageRepositoryImpl) FindConversation(userA, userB string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// FindAllForUser возвращает все сообщения пользователя, новые первыми.
func (r *MessageRepositoryImpl) FindAllForUser(userID string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepositoryImpl) MarkDelivered(id string) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update("delivered", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) MarkConversationRead(readerID, peerID string) error {
	return r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", readerID, peerID, false).
		Update("read", true).Error
}
