package apperrors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AppError — ошибка уровня приложения: машинный код, домен,
// человекочитаемое сообщение и HTTP-статус для транспорта.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetails прикрепляет структурированные детали (например, карту
// ошибок валидации) и возвращает ту же ошибку для чейнинга.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// MarshalJSON: Err и HTTPCode наружу не уходят.
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{e.Code, e.Domain, e.Message, e.Details})
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: httpCode}
}

// Wrap сохраняет исходную ошибку как причину, она доступна через errors.Is/As.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	e := New(code, domain, message, httpCode)
	e.Err = err
	return e
}

// InternalError прячет системную ошибку за общим 500-ответом.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError — 400 с картой "поле -> сообщение".
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}
