package services

import (
	"errors"
	"strings"

	"unigig_backend/internal/logger"
	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

type MessageService struct {
	msgRepo  repositories.MessageRepository
	userRepo repositories.UserRepository
	notifier LiveNotifier
}

func NewMessageService(
	msgRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifier LiveNotifier,
) *MessageService {
	return &MessageService{msgRepo: msgRepo, userRepo: userRepo, notifier: notifier}
}

// Send сохраняет сообщение и best-effort толкает его получателю через хаб.
// Провал живой доставки никогда не валит Send: сообщение уже в сторе,
// получатель прочитает его из истории.
func (s *MessageService) Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyMessageContent
	}
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrCannotMessageSelf
	}

	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrReceiverNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    content,
	}
	if err := s.msgRepo.Create(msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toMessageResponse(msg)

	if s.notifier != nil && s.notifier.SendToUser(req.ReceiverID, "message:new", resp) {
		msg.Delivered = true
		resp.Delivered = true
		go func(id string) {
			if err := s.msgRepo.MarkDelivered(id); err != nil {
				logger.Warn("mark delivered failed", "message_id", id, "error", err)
			}
		}(msg.ID)
	}

	return resp, nil
}

// GetHistory — переписка с собеседником по возрастанию времени.
// Попутно помечает входящие от него сообщения прочитанными.
func (s *MessageService) GetHistory(userID, peerID string) ([]dto.MessageResponse, error) {
	msgs, err := s.msgRepo.FindConversation(userID, peerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.msgRepo.MarkConversationRead(userID, peerID); err != nil {
		logger.Warn("mark conversation read failed", "user_id", userID, "peer_id", peerID, "error", err)
	}

	responses := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		responses = append(responses, *toMessageResponse(&msgs[i]))
	}
	return responses, nil
}

// GetRecentChats — по одной сводке на собеседника, свежие диалоги первыми.
func (s *MessageService) GetRecentChats(userID string) ([]dto.ChatSummary, error) {
	msgs, err := s.msgRepo.FindAllForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	seen := make(map[string]int)
	summaries := make([]dto.ChatSummary, 0)
	for i := range msgs {
		msg := &msgs[i]

		peerID := msg.ReceiverID
		peer := msg.Receiver
		if msg.SenderID != userID {
			peerID = msg.SenderID
			peer = msg.Sender
		}

		idx, ok := seen[peerID]
		if !ok {
			peerName := unknownAuthor
			if peer != nil {
				peerName = peer.Name
			}
			summaries = append(summaries, dto.ChatSummary{
				PeerID:        peerID,
				PeerName:      peerName,
				LastMessage:   msg.Content,
				LastTimestamp: msg.CreatedAt,
			})
			idx = len(summaries) - 1
			seen[peerID] = idx
		}
		if msg.ReceiverID == userID && !msg.Read {
			summaries[idx].Unread++
		}
	}
	return summaries, nil
}

func toMessageResponse(msg *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		Delivered:  msg.Delivered,
		Read:       msg.Read,
		CreatedAt:  msg.CreatedAt,
	}
}
