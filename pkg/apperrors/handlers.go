package apperrors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse — стандартный конверт ошибки в HTTP-ответе.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// debugMode выставляется один раз при старте приложения из конфига.
var debugMode = true

// SetDebug переключает режим: в продакшене детали внутренних ошибок скрываются.
func SetDebug(debug bool) {
	debugMode = debug
}

// HandleError пишет ошибку в ответ gin. Неизвестные ошибки
// оборачиваются в 500; в продакшене их детали наружу не уходят.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 && !debugMode {
		appErr = New(CodeInternalError, "system", "Internal server error", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}

// AsAppError распаковывает *AppError из цепочки ошибок.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
