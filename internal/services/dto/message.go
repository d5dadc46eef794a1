package dto

import (
	"time"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid4"`
	Content    string `json:"content" validate:"required,min=1,max=5000"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Delivered  bool      `json:"delivered"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatSummary - последнее сообщение по каждому собеседнику.
type ChatSummary struct {
	PeerID        string    `json:"peer_id"`
	PeerName      string    `json:"peer_name"`
	LastMessage   string    `json:"last_message"`
	LastTimestamp time.Time `json:"last_timestamp"`
	Unread        int       `json:"unread"`
}
