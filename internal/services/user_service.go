package services

import (
	"errors"
	"strings"

	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

type UserService struct {
	userRepo   repositories.UserRepository
	popularity *PopularityService
}

func NewUserService(userRepo repositories.UserRepository, popularity *PopularityService) *UserService {
	return &UserService{userRepo: userRepo, popularity: popularity}
}

// GetProfile возвращает профиль. Для private-профиля посторонний зритель
// видит только имя, роль и счётчик популярности.
func (s *UserService) GetProfile(targetID, viewerID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user, targetID == viewerID), nil
}

func (s *UserService) UpdateProfile(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.JobTitle != nil {
		user.JobTitle = *req.JobTitle
	}
	if req.ProfilePic != nil {
		user.ProfilePic = *req.ProfilePic
	}
	if req.Visibility != nil {
		if *req.Visibility != models.VisibilityPublic && *req.Visibility != models.VisibilityPrivate {
			return nil, apperrors.ErrInvalidOperation("user", "Invalid visibility value")
		}
		user.Visibility = *req.Visibility
	}
	if req.Education != nil {
		user.Education = educationToJSON(req.Education)
	}
	if req.Links != nil {
		user.Links = stringsToJSON(req.Links)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user, true), nil
}

// GetPopularity пересчитывает счётчик с нуля и возвращает свежее значение.
func (s *UserService) GetPopularity(userID string) (int, error) {
	score, err := s.popularity.Recompute(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return score, nil
}
