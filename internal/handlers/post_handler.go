package handlers

import (
	"net/http"

	"unigig_backend/internal/middleware"
	"unigig_backend/internal/services"
	"unigig_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService *services.PostService
}

func NewPostHandler(base *BaseHandler, postService *services.PostService) *PostHandler {
	return &PostHandler{BaseHandler: base, postService: postService}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/posts")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.ListPosts)
		public.GET("/:postId", h.GetPost)
	}

	protected := r.Group("/posts")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreatePost)
		protected.PUT("/:postId", h.UpdatePost)
		protected.DELETE("/:postId", h.DeletePost)
		protected.POST("/:postId/like", h.LikePost)
		protected.POST("/:postId/unlike", h.UnlikePost)
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(h.ViewerID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts, "total": len(posts)})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("postId"), h.ViewerID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	post, err := h.postService.CreatePost(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	post, err := h.postService.UpdatePost(c.Param("postId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.postService.DeletePost(c.Param("postId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.postService.LikePost(userID, c.Param("postId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.postService.UnlikePost(userID, c.Param("postId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
