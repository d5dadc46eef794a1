package models

// Application — авторитетная запись "студент откликнулся на гиг".
// Уникальный составной индекс (gig_id, applicant_id) закрывает гонку
// read-then-write при конкурентных откликах одного и того же пользователя.
type Application struct {
	BaseModel
	GigID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_gig_applicant" json:"gigId"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_gig_applicant" json:"applicantId"`
	SkillCardID *string           `gorm:"type:uuid" json:"skillCardId,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'Interested'" json:"status"`

	Gig       *Gig       `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Applicant *User      `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	SkillCard *SkillCard `gorm:"foreignKey:SkillCardID" json:"skillCard,omitempty"`
}
