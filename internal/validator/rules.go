package validator

import (
	"unigig_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("userrole", validateUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("gigtype", validateGigType); err != nil {
		return err
	}
	return nil
}

// userrole: student | provider (пустое значение пропускаем — пусть required решает)
func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

// gigtype: internship | freelance
func validateGigType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.GigType(value).Valid()
}
