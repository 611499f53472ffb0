package services

import (
	"storycrafter/internal/repositories"

	"gorm.io/gorm"
)

// DbServices aggregates the client services backed by the local database.
type DbServices struct {
	AppSettings AppSettingsService
	Projects    repositories.ProjectRepository
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	return &DbServices{
		AppSettings: NewAppSettingsService(repositories.NewAppSettingsRepository(db)),
		Projects:    repositories.NewProjectRepository(db),
	}
}
