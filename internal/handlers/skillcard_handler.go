package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillCardHandler struct {
	*BaseHandler
	skillCardService *services.SkillCardService
}

func NewSkillCardHandler(base *BaseHandler, skillCardService *services.SkillCardService) *SkillCardHandler {
	return &SkillCardHandler{BaseHandler: base, skillCardService: skillCardService}
}

func (h *SkillCardHandler) RegisterRoutes(r *gin.RouterGroup) {
	cards := r.Group("/skillcards")
	cards.Use(middleware.AuthMiddleware())
	{
		cards.GET("", h.GetMySkillCards)
		cards.POST("", h.CreateSkillCard)
		cards.GET("/:cardId", h.GetSkillCard)
		cards.PUT("/:cardId", h.UpdateSkillCard)
		cards.DELETE("/:cardId", h.DeleteSkillCard)
		cards.POST("/:cardId/endorse", h.Endorse)
		cards.POST("/:cardId/unendorse", h.Unendorse)
	}
}

func (h *SkillCardHandler) GetMySkillCards(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	cards, err := h.skillCardService.ListByOwner(userID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skillcards": cards, "total": len(cards)})
}

func (h *SkillCardHandler) CreateSkillCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSkillCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	card, err := h.skillCardService.CreateSkillCard(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "skillcard": card})
}

func (h *SkillCardHandler) GetSkillCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	card, err := h.skillCardService.GetSkillCard(c.Param("cardId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skillcard": card})
}

func (h *SkillCardHandler) UpdateSkillCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateSkillCardRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	card, err := h.skillCardService.UpdateSkillCard(c.Param("cardId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skillcard": card})
}

func (h *SkillCardHandler) DeleteSkillCard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.skillCardService.DeleteSkillCard(c.Param("cardId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SkillCardHandler) Endorse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.skillCardService.Endorse(userID, c.Param("cardId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SkillCardHandler) Unendorse(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.skillCardService.Unendorse(userID, c.Param("cardId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
