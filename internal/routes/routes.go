package routes

import (
	"net/http"

	"unigig_backend/internal/handlers"
	"unigig_backend/internal/logger"
	"unigig_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
		appHandlers.GigHandler.RegisterRoutes(api)
		appHandlers.SkillCardHandler.RegisterRoutes(api)
		appHandlers.FeedHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
	}

	// Токен проверяется внутри ServeWS: браузерный WebSocket
	// не умеет ставить Authorization-заголовок.
	wsGroup := ginRouter.Group("")
	wsHandler.RegisterRoutes(wsGroup)
	logger.Info("WebSocket route /ws registered")
}
