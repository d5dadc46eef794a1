package dto

import (
	"time"

	"unigig_backend/internal/models"
)

// --- Gig Requests ---

type CreateGigRequest struct {
	Title       string         `json:"title" validate:"required,min=3,max=200"`
	Description string         `json:"description" validate:"omitempty,max=10000"`
	Location    string         `json:"location" validate:"omitempty,max=200"`
	GigType     models.GigType `json:"gig_type" validate:"required,gigtype"`

	// Поля internship
	Stipend  string `json:"stipend" validate:"omitempty,max=100"`
	Duration string `json:"duration" validate:"omitempty,max=100"`

	// Поля freelance
	Rate         string `json:"rate" validate:"omitempty,max=100"`
	Availability string `json:"availability" validate:"omitempty,max=200"`

	Skills []string `json:"skills" validate:"omitempty,max=30,dive,max=50"`
}

type UpdateGigRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Stipend      *string  `json:"stipend,omitempty" validate:"omitempty,max=100"`
	Duration     *string  `json:"duration,omitempty" validate:"omitempty,max=100"`
	Rate         *string  `json:"rate,omitempty" validate:"omitempty,max=100"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,max=200"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,max=30,dive,max=50"`
}

type ApplyToGigRequest struct {
	SkillCardID *string `json:"skill_card_id,omitempty"`
}

// --- Gig Responses ---

type GigResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Location     string          `json:"location,omitempty"`
	GigType      models.GigType  `json:"gig_type"`
	PostedByRole models.UserRole `json:"posted_by_role"`
	Stipend      string          `json:"stipend,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	Rate         string          `json:"rate,omitempty"`
	Availability string          `json:"availability,omitempty"`
	Skills       []string        `json:"skills"`
	CreatedByID  string          `json:"created_by_id"`
	CreatedBy    *UserSummary    `json:"created_by,omitempty"`
	Applicants   int64           `json:"applicants"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	GigID       string                   `json:"gig_id"`
	ApplicantID string                   `json:"applicant_id"`
	SkillCardID *string                  `json:"skill_card_id,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	Applicant   *UserSummary             `json:"applicant,omitempty"`
	SkillCard   *SkillCardResponse       `json:"skill_card,omitempty"`
	Gig         *GigResponse             `json:"gig,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
}
