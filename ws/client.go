package ws

import (
	"encoding/json"

	"unigig_backend/internal/logger"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gorilla/websocket"
)

// IncomingMessage — входящее сообщение клиента.
type IncomingMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan OutgoingEvent

	manager        *Manager
	messageService *services.MessageService
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("ws read error", "user_id", c.UserID, "error", err)
			}
			return
		}

		var msg IncomingMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Warn("ws malformed message", "user_id", c.UserID, "error", err)
			continue
		}
		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Warn("ws write error", "user_id", c.UserID, "error", err)
			return
		}
	}
}

// handleMessage — входящие действия. send_message идёт через тот же
// сервис, что и HTTP-ручка: персист, доставка получателю, пометки.
func (c *Client) handleMessage(msg IncomingMessage) {
	switch msg.Action {
	case "send_message":
		var req dto.SendMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError("Invalid send_message payload")
			return
		}
		sent, err := c.messageService.Send(c.UserID, &req)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.trySend(OutgoingEvent{Event: "message:sent", Data: sent})

	default:
		c.sendError("Unknown action: " + msg.Action)
	}
}

func (c *Client) sendError(message string) {
	c.trySend(OutgoingEvent{Event: "error", Data: map[string]string{"message": message}})
}

func (c *Client) trySend(event OutgoingEvent) {
	select {
	case c.Send <- event:
	default:
	}
}
