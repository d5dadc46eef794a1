package dto

import (
	"time"
)

// --- SkillCard Requests ---

type CreateSkillCardRequest struct {
	Title  string   `json:"title" validate:"required,min=1,max=200"`
	Level  string   `json:"level" validate:"omitempty,max=50"`
	Skills []string `json:"skills" validate:"omitempty,max=30,dive,max=50"`
}

type UpdateSkillCardRequest struct {
	Title  *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Level  *string  `json:"level,omitempty" validate:"omitempty,max=50"`
	Skills []string `json:"skills,omitempty" validate:"omitempty,max=30,dive,max=50"`
}

// --- SkillCard Responses ---

type SkillCardResponse struct {
	ID               string       `json:"id"`
	OwnerID          string       `json:"owner_id"`
	Title            string       `json:"title"`
	Level            string       `json:"level"`
	Skills           []string     `json:"skills"`
	Endorsements     int64        `json:"endorsements"`
	EndorsedByViewer bool         `json:"endorsed_by_viewer"`
	Owner            *UserSummary `json:"owner,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
