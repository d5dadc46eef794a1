package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService *services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{BaseHandler: base, messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("", h.SendMessage)
		messages.GET("/recent", h.GetRecentChats)
		messages.GET("/:peerId", h.GetHistory)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	msg, err := h.messageService.Send(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": msg})
}

func (h *MessageHandler) GetHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	msgs, err := h.messageService.GetHistory(userID, c.Param("peerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": msgs, "total": len(msgs)})
}

func (h *MessageHandler) GetRecentChats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	chats, err := h.messageService.GetRecentChats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chats": chats, "total": len(chats)})
}
