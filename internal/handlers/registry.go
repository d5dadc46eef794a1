package handlers

import (
	"unigig_backend/internal/services"
	"unigig_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	PostHandler      *PostHandler
	GigHandler       *GigHandler
	SkillCardHandler *SkillCardHandler
	FeedHandler      *FeedHandler
	MessageHandler   *MessageHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:      NewAuthHandler(base, sc.AuthService),
		UserHandler:      NewUserHandler(base, sc.UserService, sc.SkillCardService),
		PostHandler:      NewPostHandler(base, sc.PostService),
		GigHandler:       NewGigHandler(base, sc.GigService),
		SkillCardHandler: NewSkillCardHandler(base, sc.SkillCardService),
		FeedHandler:      NewFeedHandler(base, sc.FeedService),
		MessageHandler:   NewMessageHandler(base, sc.MessageService),
	}
}
