package models

import (
	"gorm.io/datatypes"
)

// SkillCard — структурированная карточка навыков. У одного владельца
// одновременно не больше трех (проверяется в сервисе).
type SkillCard struct {
	BaseModel
	OwnerID string `gorm:"type:uuid;not null;index" json:"ownerId"`
	Title   string `gorm:"not null" json:"title"`
	Level   string `gorm:"default:'Beginner'" json:"level"`
	Skills  datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// Endorsement — факт "пользователь подтвердил чужую SkillCard".
type Endorsement struct {
	BaseModel
	SkillCardID string `gorm:"type:uuid;not null;uniqueIndex:idx_endorsements_card_user" json:"skillCardId"`
	EndorserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_endorsements_card_user" json:"endorserId"`
}
