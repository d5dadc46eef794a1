package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики UniGig.
Таксономия: NotFound→404, Forbidden→403, Unauthorized→401,
InvalidOperation→400, Conflict→409, Internal→500.
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, resource string) *AppError {
	return Wrap(err, CodeNotFound, resource, resource+" not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Ресурсы
// =========================================================================

var (
	ErrUserNotFound      = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrPostNotFound      = New(CodeNotFound, "post", "Post not found", http.StatusNotFound)
	ErrGigNotFound       = New(CodeNotFound, "gig", "Gig not found", http.StatusNotFound)
	ErrSkillCardNotFound = New(CodeNotFound, "skillcard", "SkillCard not found", http.StatusNotFound)
)

// =========================================================================
// Аутентификация
// =========================================================================

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "user", "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeValidationFailed, "user", "Invalid user role", http.StatusBadRequest)
	ErrNotOwner           = New(CodeForbidden, "ownership", "Not allowed: you do not own this resource", http.StatusForbidden)
)

// =========================================================================
// Гиги и отклики
// =========================================================================

var (
	// internship может публиковать только provider
	ErrOnlyProvidersPostInternships = New(CodeForbidden, "gig", "Only providers can post internships", http.StatusForbidden)
	// на internship откликается только student
	ErrOnlyStudentsCanApply = New(CodeForbidden, "gig", "Only students can apply to internships", http.StatusForbidden)

	ErrCannotApplyToOwnGig = New(CodeInvalidOperation, "gig", "You can't apply to your own gig", http.StatusBadRequest)
	ErrAlreadyApplied      = New(CodeConflict, "gig", "Already applied", http.StatusConflict)
	ErrSkillCardNotYours   = New(CodeInvalidOperation, "gig", "SkillCard does not belong to the applicant", http.StatusBadRequest)
)

// =========================================================================
// SkillCards и эндорсменты
// =========================================================================

var (
	ErrSkillCardLimitReached = New(CodeLimitExceeded, "skillcard", "You already have 3 SkillCards", http.StatusBadRequest)
	ErrCannotEndorseSelf     = New(CodeInvalidOperation, "skillcard", "You cannot endorse yourself", http.StatusBadRequest)
	ErrAlreadyEndorsed       = New(CodeConflict, "skillcard", "Already endorsed", http.StatusConflict)
)

// =========================================================================
// Посты
// =========================================================================

var (
	ErrCannotLikeOwnPost = New(CodeInvalidOperation, "post", "You cannot like your own post", http.StatusBadRequest)
)

// =========================================================================
// Сообщения
// =========================================================================

var (
	ErrReceiverNotFound    = New(CodeNotFound, "message", "Receiver not found", http.StatusNotFound)
	ErrCannotMessageSelf   = New(CodeInvalidOperation, "message", "You cannot message yourself", http.StatusBadRequest)
	ErrEmptyMessageContent = New(CodeValidationFailed, "message", "Message content is required", http.StatusBadRequest)
)
