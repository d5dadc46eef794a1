package models

import (
	"gorm.io/datatypes"
)

// Gig — вакансия (internship от провайдера) или фриланс-объявление (от студента).
// Список откликнувшихся НЕ хранится на гиге: единственный источник правды —
// таблица applications, applicants всегда выводится запросом.
type Gig struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`

	// Ownership: назначается один раз при создании.
	CreatedByID  string   `gorm:"type:uuid;not null;index" json:"createdBy"`
	PostedByRole UserRole `gorm:"type:varchar(20);not null" json:"postedByRole"`
	GigType      GigType  `gorm:"type:varchar(20);not null" json:"gigType"`

	// internship-поля (provider → student)
	Stipend  string `json:"stipend,omitempty"`
	Duration string `json:"duration,omitempty"`

	// freelance-поля (student → provider)
	Rate         string `json:"rate,omitempty"`
	Availability string `json:"availability,omitempty"`

	Skills datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
}
