package services

import (
	"unigig_backend/internal/cache"
	"unigig_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       *AuthService
	UserService       *UserService
	PopularityService *PopularityService
	PostService       *PostService
	GigService        *GigService
	SkillCardService  *SkillCardService
	FeedService       *FeedService
	MessageService    *MessageService
}

// NewServiceContainer собирает репозитории и сервисы поверх одного *gorm.DB.
// notifier и email могут быть nil: тогда живые уведомления и почта
// отключены, бизнес-операции работают как обычно.
func NewServiceContainer(db *gorm.DB, feedCache *cache.Cache, notifier LiveNotifier, email EmailNotifier) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	cardRepo := repositories.NewSkillCardRepository(db)
	msgRepo := repositories.NewMessageRepository(db)

	popularity := NewPopularityService(userRepo, postRepo, appRepo, cardRepo)

	return &ServiceContainer{
		AuthService:       NewAuthService(userRepo),
		UserService:       NewUserService(userRepo, popularity),
		PopularityService: popularity,
		PostService:       NewPostService(postRepo, popularity, feedCache),
		GigService:        NewGigService(gigRepo, appRepo, userRepo, cardRepo, popularity, notifier, email, feedCache),
		SkillCardService:  NewSkillCardService(cardRepo, popularity),
		FeedService:       NewFeedService(postRepo, gigRepo, userRepo, appRepo, feedCache),
		MessageService:    NewMessageService(msgRepo, userRepo, notifier),
	}
}
