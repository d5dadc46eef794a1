package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService *services.GigService
}

func NewGigHandler(base *BaseHandler, gigService *services.GigService) *GigHandler {
	return &GigHandler{BaseHandler: base, gigService: gigService}
}

func (h *GigHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/gigs")
	{
		public.GET("", h.ListGigs)
		public.GET("/:gigId", h.GetGig)
	}

	protected := r.Group("/gigs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateGig)
		protected.PUT("/:gigId", h.UpdateGig)
		protected.DELETE("/:gigId", h.DeleteGig)
		protected.POST("/:gigId/apply", h.ApplyToGig)
		protected.GET("/:gigId/applicants", h.GetApplicants)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("/my", h.GetMyApplications)
	}
}

func (h *GigHandler) ListGigs(c *gin.Context) {
	filter := repositories.GigFilter{
		PostedByRole: models.UserRole(c.Query("role")),
		GigType:      models.GigType(c.Query("type")),
		CreatedByID:  c.Query("created_by"),
	}
	gigs, err := h.gigService.ListGigs(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "gigs": gigs, "total": len(gigs)})
}

func (h *GigHandler) GetGig(c *gin.Context) {
	gig, err := h.gigService.GetGig(c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "gig": gig})
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	gig, err := h.gigService.CreateGig(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "gig": gig})
}

func (h *GigHandler) UpdateGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	gig, err := h.gigService.UpdateGig(c.Param("gigId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "gig": gig})
}

func (h *GigHandler) DeleteGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.gigService.DeleteGig(c.Param("gigId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GigHandler) ApplyToGig(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	// Тело опционально: отклик без SkillCard валиден.
	var req dto.ApplyToGigRequest
	if c.Request.ContentLength > 0 && !h.BindAndValidateJSON(c, &req) {
		return
	}
	application, err := h.gigService.ApplyToGig(userID, c.Param("gigId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "application": application})
}

func (h *GigHandler) GetApplicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicants, err := h.gigService.GetApplicants(c.Param("gigId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applicants": applicants, "total": len(applicants)})
}

func (h *GigHandler) GetMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applications, err := h.gigService.GetMyApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications, "total": len(applications)})
}
