package services

import (
	"errors"

	"unigig_backend/internal/logger"
	"unigig_backend/internal/repositories"
)

// PopularityService пересчитывает популярность пользователя с нуля:
//
//	score = лайки на его постах + отклики на его гиги + эндорсы его карточек
//
// Счётчик всегда выводится из строк-фактов, инкрементального состояния нет,
// поэтому пересчёт идемпотентен и сходится после любых сбоев.
type PopularityService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
	appRepo  repositories.ApplicationRepository
	cardRepo repositories.SkillCardRepository
}

func NewPopularityService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	appRepo repositories.ApplicationRepository,
	cardRepo repositories.SkillCardRepository,
) *PopularityService {
	return &PopularityService{
		userRepo: userRepo,
		postRepo: postRepo,
		appRepo:  appRepo,
		cardRepo: cardRepo,
	}
}

// Recompute считает и сохраняет счётчик, возвращая свежее значение.
// Для несуществующего пользователя возвращает (0, nil): пересчёт зовут
// фоном после мутаций, и гонка с удалением аккаунта не должна шуметь.
func (s *PopularityService) Recompute(userID string) (int, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}

	likes, err := s.postRepo.CountLikesByAuthor(userID)
	if err != nil {
		return 0, err
	}
	applications, err := s.appRepo.CountByGigOwner(userID)
	if err != nil {
		return 0, err
	}
	endorsements, err := s.cardRepo.CountEndorsementsByOwner(userID)
	if err != nil {
		return 0, err
	}

	score := int(likes + applications + endorsements)
	if err := s.userRepo.UpdatePopularityScore(userID, score); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return score, nil
}

// RecomputeAsync — вариант для фоновых вызовов после мутаций:
// ошибка логируется и не влияет на исходную операцию.
func (s *PopularityService) RecomputeAsync(userID string) {
	if _, err := s.Recompute(userID); err != nil {
		logger.Warn("popularity recompute failed", "user_id", userID, "error", err)
	}
}
