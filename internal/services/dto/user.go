package dto

import (
	"time"

	"unigig_backend/internal/models"
)

type UpdateUserRequest struct {
	Name       *string                 `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio        *string                 `json:"bio,omitempty" validate:"omitempty,max=2000"`
	JobTitle   *string                 `json:"job_title,omitempty" validate:"omitempty,max=200"`
	ProfilePic *string                 `json:"profile_pic,omitempty" validate:"omitempty,max=1000"`
	Visibility *models.Visibility      `json:"visibility,omitempty"`
	Education  []models.EducationEntry `json:"education,omitempty"`
	Links      []string                `json:"links,omitempty"`
}

type UserResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email,omitempty"`
	Role            models.UserRole         `json:"role"`
	Bio             string                  `json:"bio,omitempty"`
	JobTitle        string                  `json:"job_title,omitempty"`
	ProfilePic      string                  `json:"profile_pic,omitempty"`
	Visibility      models.Visibility       `json:"visibility"`
	Education       []models.EducationEntry `json:"education,omitempty"`
	Links           []string                `json:"links,omitempty"`
	PopularityScore int                     `json:"popularity_score"`
	CreatedAt       time.Time               `json:"created_at"`
}

// UserSummary - краткая карточка пользователя внутри других ответов
type UserSummary struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       models.UserRole `json:"role"`
	JobTitle   string          `json:"job_title,omitempty"`
	ProfilePic string          `json:"profile_pic,omitempty"`
}
