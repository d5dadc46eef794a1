package models

// Роли пользователей
type UserRole string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleProvider UserRole = "provider"
)

func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleProvider
}

// Видимость профиля
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Типы гигов
type GigType string

const (
	GigTypeInternship GigType = "internship"
	GigTypeFreelance  GigType = "freelance"
)

func (t GigType) Valid() bool {
	return t == GigTypeInternship || t == GigTypeFreelance
}

// Статусы отклика на гиг. Единственный реализованный статус — Interested;
// accept/reject жизненный цикл не вводим без подтверждения продукта.
type ApplicationStatus string

const (
	ApplicationStatusInterested ApplicationStatus = "Interested"
)

// Уровни SkillCard. Открытый enum: кастомные значения допускаются,
// это лишь значения по умолчанию для UI.
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
)
