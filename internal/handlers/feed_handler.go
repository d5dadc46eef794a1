package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	*BaseHandler
	feedService *services.FeedService
}

func NewFeedHandler(base *BaseHandler, feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{BaseHandler: base, feedService: feedService}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/feed", middleware.OptionalAuthMiddleware(), h.GetFeed)
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	feed, err := h.feedService.GetFeed(c.Request.Context(), h.ViewerID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"items":        feed.Items,
		"total":        len(feed.Items),
		"generated_at": feed.GeneratedAt,
	})
}
