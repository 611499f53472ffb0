package services

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"storycrafter/internal/generator"
	"storycrafter/internal/repositories"
)

// Services aggregates the Story API's services and repositories backed by the database.
type Services struct {
	Users    UserService
	Stories  StoryService
	Projects repositories.ProjectRepository
	Chats    repositories.ChatRepository
}

// NewServices constructs the service container using repositories backed by db.
func NewServices(db *gorm.DB, gen generator.Generator, log zerolog.Logger) *Services {
	userRepo := repositories.NewUserRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	return &Services{
		Users:    NewUserService(userRepo),
		Stories:  NewStoryService(gen, chatRepo, log),
		Projects: repositories.NewProjectRepository(db),
		Chats:    chatRepo,
	}
}
