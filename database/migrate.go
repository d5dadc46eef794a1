package database

import (
	"fmt"

	"unigig_backend/internal/config"
	"unigig_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из конфига.
// TranslateError нужен, чтобы нарушение уникального индекса приходило
// как gorm.ErrDuplicatedKey независимо от драйвера.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostLike{},
		&models.Gig{},
		&models.Application{},
		&models.SkillCard{},
		&models.Endorsement{},
		&models.Message{},
	)
}
