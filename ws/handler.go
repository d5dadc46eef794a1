package ws

import (
	"net/http"
	"strings"

	"unigig_backend/internal/auth"
	"unigig_backend/internal/logger"
	"unigig_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: ограничить origin доменом фронтенда перед продом
	},
}

type Handler struct {
	manager        *Manager
	messageService *services.MessageService
}

func NewHandler(manager *Manager, messageService *services.MessageService) *Handler {
	return &Handler{manager: manager, messageService: messageService}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws", h.ServeWS)
}

// ServeWS апгрейдит соединение. Токен принимается из query-параметра
// `token` (браузерный WebSocket не умеет ставить заголовки) или из
// Authorization.
func (h *Handler) ServeWS(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.GetHeader("Authorization")
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
		return
	}

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID:         claims.UserID,
		Conn:           conn,
		Send:           make(chan OutgoingEvent, 256),
		manager:        h.manager,
		messageService: h.messageService,
	}

	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
