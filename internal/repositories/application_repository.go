package repositories

import (
	"errors"

	"unigig_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	ExistsByGigAndApplicant(gigID, applicantID string) (bool, error)
	FindByGig(gigID string) ([]models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)
	CountByGig(gigID string) (int64, error)
	CountByGigOwner(ownerID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyApplied
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Gig").Preload("Applicant").Preload("SkillCard").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsByGigAndApplicant(gigID, applicantID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("gig_id = ? AND applicant_id = ?", gigID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByGig(gigID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Applicant").Preload("SkillCard").
		Where("gig_id = ?", gigID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Gig").Preload("Gig.CreatedBy").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByGig(gigID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("gig_id = ?", gigID).Count(&count).Error
	return count, err
}

// CountByGigOwner считает отклики по всем гигам владельца (вход popularity engine).
func (r *ApplicationRepositoryImpl) CountByGigOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN gigs ON gigs.id = applications.gig_id").
		Where("gigs.created_by_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
