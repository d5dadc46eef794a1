package dto

import (
	"time"
)

// --- Post Requests ---

type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required,min=1,max=200"`
	Content string   `json:"content" validate:"required,max=10000"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	Images  []string `json:"images" validate:"omitempty,max=10,dive,max=1000"`
}

type UpdatePostRequest struct {
	Title   *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string  `json:"content,omitempty" validate:"omitempty,max=10000"`
	Tags    []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Images  []string `json:"images,omitempty" validate:"omitempty,max=10,dive,max=1000"`
}

// --- Post Responses ---

type PostResponse struct {
	ID            string       `json:"id"`
	AuthorID      string       `json:"author_id"`
	Title         string       `json:"title"`
	Content       string       `json:"content,omitempty"`
	Tags          []string     `json:"tags"`
	Images        []string     `json:"images,omitempty"`
	Likes         int64        `json:"likes"`
	LikedByViewer bool         `json:"liked_by_viewer"`
	Author        *UserSummary `json:"author,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
