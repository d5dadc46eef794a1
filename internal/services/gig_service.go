package services

import (
	"context"
	"errors"

	"unigig_backend/internal/cache"
	"unigig_backend/internal/logger"
	"unigig_backend/internal/models"
	"unigig_backend/internal/repositories"
	"unigig_backend/internal/services/dto"
	"unigig_backend/pkg/apperrors"
)

type GigService struct {
	gigRepo    repositories.GigRepository
	appRepo    repositories.ApplicationRepository
	userRepo   repositories.UserRepository
	cardRepo   repositories.SkillCardRepository
	popularity *PopularityService
	notifier   LiveNotifier
	email      EmailNotifier
	feedCache  *cache.Cache
}

func NewGigService(
	gigRepo repositories.GigRepository,
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	cardRepo repositories.SkillCardRepository,
	popularity *PopularityService,
	notifier LiveNotifier,
	email EmailNotifier,
	feedCache *cache.Cache,
) *GigService {
	return &GigService{
		gigRepo:    gigRepo,
		appRepo:    appRepo,
		userRepo:   userRepo,
		cardRepo:   cardRepo,
		popularity: popularity,
		notifier:   notifier,
		email:      email,
		feedCache:  feedCache,
	}
}

// CreateGig публикует гиг. PostedByRole фиксируется из роли создателя;
// internship доступен только провайдерам.
func (s *GigService) CreateGig(creatorID string, req *dto.CreateGigRequest) (*dto.GigResponse, error) {
	creator, err := s.userRepo.FindByID(creatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !req.GigType.Valid() {
		return nil, apperrors.ErrInvalidOperation("gig", "Invalid gig type")
	}
	if req.GigType == models.GigTypeInternship && creator.Role != models.UserRoleProvider {
		return nil, apperrors.ErrOnlyProvidersPostInternships
	}

	gig := &models.Gig{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		CreatedByID:  creatorID,
		PostedByRole: creator.Role,
		GigType:      req.GigType,
		Stipend:      req.Stipend,
		Duration:     req.Duration,
		Rate:         req.Rate,
		Availability: req.Availability,
		Skills:       stringsToJSON(req.Skills),
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	gig.CreatedBy = creator

	s.invalidateFeed()
	return s.buildGigResponse(gig)
}

func (s *GigService) GetGig(gigID string) (*dto.GigResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildGigResponse(gig)
}

func (s *GigService) ListGigs(filter repositories.GigFilter) ([]dto.GigResponse, error) {
	gigs, err := s.gigRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.GigResponse, 0, len(gigs))
	for i := range gigs {
		resp, err := s.buildGigResponse(&gigs[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// UpdateGig меняет описание гига. CreatedByID, PostedByRole и GigType
// назначаются при создании и не редактируются.
func (s *GigService) UpdateGig(gigID, requesterID string, req *dto.UpdateGigRequest) (*dto.GigResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if gig.CreatedByID != requesterID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Location != nil {
		gig.Location = *req.Location
	}
	if req.Stipend != nil {
		gig.Stipend = *req.Stipend
	}
	if req.Duration != nil {
		gig.Duration = *req.Duration
	}
	if req.Rate != nil {
		gig.Rate = *req.Rate
	}
	if req.Availability != nil {
		gig.Availability = *req.Availability
	}
	if req.Skills != nil {
		gig.Skills = stringsToJSON(req.Skills)
	}

	if err := s.gigRepo.Update(gig); err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	s.invalidateFeed()
	return s.buildGigResponse(gig)
}

func (s *GigService) DeleteGig(gigID, requesterID string) error {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return apperrors.ErrGigNotFound
		}
		return apperrors.InternalError(err)
	}
	if gig.CreatedByID != requesterID {
		return apperrors.ErrNotOwner
	}
	if err := s.gigRepo.Delete(gigID); err != nil {
		return apperrors.InternalError(err)
	}
	s.invalidateFeed()
	go s.popularity.RecomputeAsync(gig.CreatedByID)
	return nil
}

// ApplyToGig проводит отклик через полный порядок предусловий:
// гиг существует → не свой гиг → internship требует роль student →
// приложенная SkillCard существует и принадлежит кандидату → отклика ещё
// нет. Уникальный индекс в сторе страхует от гонки двух одинаковых
// откликов; дубликат на вставке маппится в тот же AlreadyApplied.
func (s *GigService) ApplyToGig(applicantID, gigID string, req *dto.ApplyToGigRequest) (*dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if gig.CreatedByID == applicantID {
		return nil, apperrors.ErrCannotApplyToOwnGig
	}

	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if gig.GigType == models.GigTypeInternship && applicant.Role != models.UserRoleStudent {
		return nil, apperrors.ErrOnlyStudentsCanApply
	}

	if req.SkillCardID != nil {
		card, err := s.cardRepo.FindByID(*req.SkillCardID)
		if err != nil {
			if errors.Is(err, repositories.ErrSkillCardNotFound) {
				return nil, apperrors.ErrSkillCardNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		if card.OwnerID != applicantID {
			return nil, apperrors.ErrSkillCardNotYours
		}
	}

	exists, err := s.appRepo.ExistsByGigAndApplicant(gigID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		GigID:       gigID,
		ApplicantID: applicantID,
		SkillCardID: req.SkillCardID,
		Status:      models.ApplicationStatusInterested,
	}
	if err := s.appRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	application.Applicant = applicant

	go s.popularity.RecomputeAsync(gig.CreatedByID)
	go s.notifyOwner(gig, applicant)

	return s.buildApplicationResponse(application), nil
}

// GetApplicants — список откликов; виден только владельцу гига.
func (s *GigService) GetApplicants(gigID, requesterID string) ([]dto.ApplicationResponse, error) {
	gig, err := s.gigRepo.FindByID(gigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if gig.CreatedByID != requesterID {
		return nil, apperrors.ErrNotOwner
	}

	applications, err := s.appRepo.FindByGig(gigID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *s.buildApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// GetMyApplications — отклики пользователя с вложенными гигами.
func (s *GigService) GetMyApplications(applicantID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.appRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		resp := s.buildApplicationResponse(&applications[i])
		if applications[i].Gig != nil {
			gigResp, err := s.buildGigResponse(applications[i].Gig)
			if err == nil {
				resp.Gig = gigResp
			}
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *GigService) notifyOwner(gig *models.Gig, applicant *models.User) {
	payload := map[string]interface{}{
		"gig_id":         gig.ID,
		"gig_title":      gig.Title,
		"applicant_id":   applicant.ID,
		"applicant_name": applicant.Name,
	}
	if s.notifier != nil {
		s.notifier.SendToUser(gig.CreatedByID, "gig:applicant", payload)
	}

	if s.email == nil {
		return
	}
	owner, err := s.userRepo.FindByID(gig.CreatedByID)
	if err != nil {
		logger.Warn("applicant email skipped, owner lookup failed", "gig_id", gig.ID, "error", err)
		return
	}
	if err := s.email.SendNewApplicantEmail(owner.Email, owner.Name, gig.Title, applicant.Name); err != nil {
		logger.Warn("applicant email failed", "gig_id", gig.ID, "error", err)
	}
}

func (s *GigService) buildGigResponse(gig *models.Gig) (*dto.GigResponse, error) {
	applicants, err := s.appRepo.CountByGig(gig.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.GigResponse{
		ID:           gig.ID,
		Title:        gig.Title,
		Description:  gig.Description,
		Location:     gig.Location,
		GigType:      gig.GigType,
		PostedByRole: gig.PostedByRole,
		Stipend:      gig.Stipend,
		Duration:     gig.Duration,
		Rate:         gig.Rate,
		Availability: gig.Availability,
		Skills:       stringsFromJSON(gig.Skills),
		CreatedByID:  gig.CreatedByID,
		CreatedBy:    toUserSummary(gig.CreatedBy),
		Applicants:   applicants,
		CreatedAt:    gig.CreatedAt,
		UpdatedAt:    gig.UpdatedAt,
	}, nil
}

func (s *GigService) buildApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:          app.ID,
		GigID:       app.GigID,
		ApplicantID: app.ApplicantID,
		SkillCardID: app.SkillCardID,
		Status:      app.Status,
		Applicant:   toUserSummary(app.Applicant),
		CreatedAt:   app.CreatedAt,
	}
	if app.SkillCard != nil {
		resp.SkillCard = &dto.SkillCardResponse{
			ID:        app.SkillCard.ID,
			OwnerID:   app.SkillCard.OwnerID,
			Title:     app.SkillCard.Title,
			Level:     app.SkillCard.Level,
			Skills:    stringsFromJSON(app.SkillCard.Skills),
			CreatedAt: app.SkillCard.CreatedAt,
			UpdatedAt: app.SkillCard.UpdatedAt,
		}
	}
	return resp
}

func (s *GigService) invalidateFeed() {
	if err := s.feedCache.Delete(context.Background(), cache.FeedKey("public")); err != nil {
		logger.Warn("feed cache invalidation failed", "error", err)
	}
}
