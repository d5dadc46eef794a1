package repositories

import (
	"errors"

	"unigig_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSkillCardNotFound = errors.New("skill card not found")
	ErrAlreadyEndorsed   = errors.New("skill card already endorsed")
)

type SkillCardRepository interface {
	Create(card *models.SkillCard) error
	FindByID(id string) (*models.SkillCard, error)
	FindByOwner(ownerID string) ([]models.SkillCard, error)
	FindAll() ([]models.SkillCard, error)
	CountByOwner(ownerID string) (int64, error)
	Update(card *models.SkillCard) error
	Delete(id string) error

	AddEndorsement(cardID, endorserID string) error
	RemoveEndorsement(cardID, endorserID string) (bool, error)
	HasEndorsed(cardID, endorserID string) (bool, error)
	CountEndorsements(cardID string) (int64, error)
	CountEndorsementsByOwner(ownerID string) (int64, error)
}

type SkillCardRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillCardRepository(db *gorm.DB) SkillCardRepository {
	return &SkillCardRepositoryImpl{db: db}
}

func (r *SkillCardRepositoryImpl) Create(card *models.SkillCard) error {
	return r.db.Create(card).Error
}

func (r *SkillCardRepositoryImpl) FindByID(id string) (*models.SkillCard, error) {
	var card models.SkillCard
	err := r.db.Preload("Owner").First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *SkillCardRepositoryImpl) FindByOwner(ownerID string) ([]models.SkillCard, error) {
	var cards []models.SkillCard
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *SkillCardRepositoryImpl) FindAll() ([]models.SkillCard, error) {
	var cards []models.SkillCard
	err := r.db.Preload("Owner").Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *SkillCardRepositoryImpl) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.SkillCard{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *SkillCardRepositoryImpl) Update(card *models.SkillCard) error {
	result := r.db.Model(card).Updates(map[string]interface{}{
		"title":  card.Title,
		"level":  card.Level,
		"skills": card.Skills,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillCardNotFound
	}
	return nil
}

func (r *SkillCardRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_card_id = ?", id).Delete(&models.Endorsement{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.SkillCard{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSkillCardNotFound
		}
		return nil
	})
}

func (r *SkillCardRepositoryImpl) AddEndorsement(cardID, endorserID string) error {
	endorsement := &models.Endorsement{SkillCardID: cardID, EndorserID: endorserID}
	err := r.db.Create(endorsement).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyEndorsed
	}
	return err
}

func (r *SkillCardRepositoryImpl) RemoveEndorsement(cardID, endorserID string) (bool, error) {
	result := r.db.Where("skill_card_id = ? AND endorser_id = ?", cardID, endorserID).
		Delete(&models.Endorsement{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SkillCardRepositoryImpl) HasEndorsed(cardID, endorserID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Endorsement{}).
		Where("skill_card_id = ? AND endorser_id = ?", cardID, endorserID).
		Count(&count).Error
	return count > 0, err
}

func (r *SkillCardRepositoryImpl) CountEndorsements(cardID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Endorsement{}).Where("skill_card_id = ?", cardID).Count(&count).Error
	return count, err
}

// CountEndorsementsByOwner считает эндорсы по всем карточкам владельца (вход popularity engine).
func (r *SkillCardRepositoryImpl) CountEndorsementsByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Endorsement{}).
		Joins("JOIN skill_cards ON skill_cards.id = endorsements.skill_card_id").
		Where("skill_cards.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
