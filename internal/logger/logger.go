package logger

import (
	"log/slog"
	"os"
)

var (
	log   *slog.Logger
	level = new(slog.LevelVar)
)

// Init настраивает глобальный slog-логгер.
// В development — текстовый вывод с debug-уровнем, иначе JSON.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == "development" || env == "test" {
		level.Set(slog.LevelDebug)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		level.Set(slog.LevelInfo)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер, при необходимости
// инициализируя его дефолтом.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }

// Fatal пишет ошибку и завершает процесс.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With возвращает логгер с дополнительными полями.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
