package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Bio          string     `json:"bio,omitempty"`
	JobTitle     string     `json:"jobTitle,omitempty"`
	ProfilePic   string     `json:"profilePic,omitempty"`
	Visibility   Visibility `gorm:"type:varchar(20);default:'public'" json:"visibility"`

	// Гибкие списки храним как JSONB
	Education datatypes.JSON `gorm:"type:jsonb" json:"education,omitempty"`
	Links     datatypes.JSON `gorm:"type:jsonb" json:"links,omitempty"`

	// Производное значение. Пишет его только popularity engine,
	// клиентский ввод сюда никогда не биндится.
	PopularityScore int `gorm:"not null;default:0" json:"popularityScore"`
}

// EducationEntry — элемент списка Education.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     int    `json:"endYear,omitempty"`
}
