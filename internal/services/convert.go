package services

import (
	"encoding/json"

	"unigig_backend/internal/models"
	"unigig_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// Общие конвертеры models <-> dto. JSONB-колонки храним как datatypes.JSON,
// наружу всегда отдаём раскодированные срезы.

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func educationToJSON(entries []models.EducationEntry) datatypes.JSON {
	if entries == nil {
		return nil
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func educationFromJSON(raw datatypes.JSON) []models.EducationEntry {
	if len(raw) == 0 {
		return nil
	}
	var entries []models.EducationEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func toUserSummary(user *models.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:         user.ID,
		Name:       user.Name,
		Role:       user.Role,
		JobTitle:   user.JobTitle,
		ProfilePic: user.ProfilePic,
	}
}

// toUserResponse собирает публичный профиль. includePrivate=true для
// владельца: email и скрытые private-профилем поля видны только ему.
func toUserResponse(user *models.User, includePrivate bool) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Role:            user.Role,
		Visibility:      user.Visibility,
		PopularityScore: user.PopularityScore,
		CreatedAt:       user.CreatedAt,
	}
	if includePrivate {
		resp.Email = user.Email
	}
	if includePrivate || user.Visibility != models.VisibilityPrivate {
		resp.Bio = user.Bio
		resp.JobTitle = user.JobTitle
		resp.ProfilePic = user.ProfilePic
		resp.Education = educationFromJSON(user.Education)
		resp.Links = stringsFromJSON(user.Links)
	}
	return resp
}
