package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService      *services.UserService
	skillCardService *services.SkillCardService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, skillCardService *services.SkillCardService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService, skillCardService: skillCardService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.OptionalAuthMiddleware())
	{
		users.GET("/:userId", h.GetUser)
		users.GET("/:userId/popularity", h.GetPopularity)
		users.GET("/:userId/skillcards", h.GetUserSkillCards)
	}

	me := r.Group("/users")
	me.Use(middleware.AuthMiddleware())
	{
		me.PUT("/me", h.UpdateMe)
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Param("userId"), h.ViewerID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetPopularity пересчитывает счёт с нуля и возвращает свежее значение.
func (h *UserHandler) GetPopularity(c *gin.Context) {
	score, err := h.userService.GetPopularity(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "popularity": score})
}

func (h *UserHandler) GetUserSkillCards(c *gin.Context) {
	cards, err := h.skillCardService.ListByOwner(c.Param("userId"), h.ViewerID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skillcards": cards, "total": len(cards)})
}
