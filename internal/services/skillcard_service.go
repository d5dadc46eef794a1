package services

import (
	"errors"

	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

// MaxSkillCardsPerUser — жесткий лимит карточек на пользователя.
const MaxSkillCardsPerUser = 3

type SkillCardService struct {
	cardRepo   repositories.SkillCardRepository
	popularity *PopularityService
}

func NewSkillCardService(cardRepo repositories.SkillCardRepository, popularity *PopularityService) *SkillCardService {
	return &SkillCardService{cardRepo: cardRepo, popularity: popularity}
}

// CreateSkillCard проверяет лимит до вставки; удаление карточки
// освобождает слот.
func (s *SkillCardService) CreateSkillCard(ownerID string, req *dto.CreateSkillCardRequest) (*dto.SkillCardResponse, error) {
	count, err := s.cardRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= MaxSkillCardsPerUser {
		return nil, apperrors.ErrSkillCardLimitReached
	}

	level := req.Level
	if level == "" {
		level = models.SkillLevelBeginner
	}
	card := &models.SkillCard{
		OwnerID: ownerID,
		Title:   req.Title,
		Level:   level,
		Skills:  stringsToJSON(req.Skills),
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildSkillCardResponse(card, ownerID)
}

func (s *SkillCardService) GetSkillCard(cardID, viewerID string) (*dto.SkillCardResponse, error) {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return nil, apperrors.ErrSkillCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildSkillCardResponse(card, viewerID)
}

func (s *SkillCardService) ListByOwner(ownerID, viewerID string) ([]dto.SkillCardResponse, error) {
	cards, err := s.cardRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.SkillCardResponse, 0, len(cards))
	for i := range cards {
		resp, err := s.buildSkillCardResponse(&cards[i], viewerID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *SkillCardService) UpdateSkillCard(cardID, requesterID string, req *dto.UpdateSkillCardRequest) (*dto.SkillCardResponse, error) {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return nil, apperrors.ErrSkillCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if card.OwnerID != requesterID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Level != nil {
		card.Level = *req.Level
	}
	if req.Skills != nil {
		card.Skills = stringsToJSON(req.Skills)
	}

	if err := s.cardRepo.Update(card); err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return nil, apperrors.ErrSkillCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildSkillCardResponse(card, requesterID)
}

func (s *SkillCardService) DeleteSkillCard(cardID, requesterID string) error {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return apperrors.ErrSkillCardNotFound
		}
		return apperrors.InternalError(err)
	}
	if card.OwnerID != requesterID {
		return apperrors.ErrNotOwner
	}
	if err := s.cardRepo.Delete(cardID); err != nil {
		return apperrors.InternalError(err)
	}
	go s.popularity.RecomputeAsync(card.OwnerID)
	return nil
}

// Endorse — подтверждение чужой карточки. Свою подтверждать нельзя,
// повторный эндорс — конфликт.
func (s *SkillCardService) Endorse(endorserID, cardID string) error {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return apperrors.ErrSkillCardNotFound
		}
		return apperrors.InternalError(err)
	}
	if card.OwnerID == endorserID {
		return apperrors.ErrCannotEndorseSelf
	}

	if err := s.cardRepo.AddEndorsement(cardID, endorserID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyEndorsed) {
			return apperrors.ErrAlreadyEndorsed
		}
		return apperrors.InternalError(err)
	}

	go s.popularity.RecomputeAsync(card.OwnerID)
	return nil
}

// Unendorse идемпотентен: снятия несуществующего эндорса не ошибка,
// пересчёт зовётся только при реальном удалении строки.
func (s *SkillCardService) Unendorse(endorserID, cardID string) error {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrSkillCardNotFound) {
			return apperrors.ErrSkillCardNotFound
		}
		return apperrors.InternalError(err)
	}

	removed, err := s.cardRepo.RemoveEndorsement(cardID, endorserID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if removed {
		go s.popularity.RecomputeAsync(card.OwnerID)
	}
	return nil
}

func (s *SkillCardService) buildSkillCardResponse(card *models.SkillCard, viewerID string) (*dto.SkillCardResponse, error) {
	endorsements, err := s.cardRepo.CountEndorsements(card.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	endorsedByViewer := false
	if viewerID != "" && viewerID != card.OwnerID {
		endorsedByViewer, err = s.cardRepo.HasEndorsed(card.ID, viewerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return &dto.SkillCardResponse{
		ID:               card.ID,
		OwnerID:          card.OwnerID,
		Title:            card.Title,
		Level:            card.Level,
		Skills:           stringsFromJSON(card.Skills),
		Endorsements:     endorsements,
		EndorsedByViewer: endorsedByViewer,
		Owner:            toUserSummary(card.Owner),
		CreatedAt:        card.CreatedAt,
		UpdatedAt:        card.UpdatedAt,
	}, nil
}
