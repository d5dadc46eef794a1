package repositories

import (
	"errors"

	"unigig_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigNotFound = errors.New("gig not found")

// GigFilter — необязательные фильтры списка гигов.
type GigFilter struct {
	PostedByRole models.UserRole
	GigType      models.GigType
	CreatedByID  string
}

type GigRepository interface {
	Create(gig *models.Gig) error
	FindByID(id string) (*models.Gig, error)
	FindAll(filter GigFilter) ([]models.Gig, error)
	Update(gig *models.Gig) error
	Delete(id string) error
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(id string) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.Preload("CreatedBy").First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindAll(filter GigFilter) ([]models.Gig, error) {
	query := r.db.Preload("CreatedBy").Order("created_at DESC")
	if filter.PostedByRole != "" {
		query = query.Where("posted_by_role = ?", filter.PostedByRole)
	}
	if filter.GigType != "" {
		query = query.Where("gig_type = ?", filter.GigType)
	}
	if filter.CreatedByID != "" {
		query = query.Where("created_by_id = ?", filter.CreatedByID)
	}

	var gigs []models.Gig
	err := query.Find(&gigs).Error
	return gigs, err
}

// Update не трогает gig_type: тип фиксируется при создании.
func (r *GigRepositoryImpl) Update(gig *models.Gig) error {
	result := r.db.Model(gig).Updates(map[string]interface{}{
		"title":        gig.Title,
		"description":  gig.Description,
		"location":     gig.Location,
		"stipend":      gig.Stipend,
		"duration":     gig.Duration,
		"rate":         gig.Rate,
		"availability": gig.Availability,
		"skills":       gig.Skills,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}

func (r *GigRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gig_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Gig{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGigNotFound
		}
		return nil
	})
}
