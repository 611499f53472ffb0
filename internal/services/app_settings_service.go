package services

import (
	"context"
	"errors"
	"time"

	"storycrafter/internal/models"
	"storycrafter/internal/repositories"
)

type AppSettingsService interface {
	Get() (*models.AppSettings, error)
	Update(theme, locale string) (*models.AppSettings, error)
	SetTheme(theme string) (*models.AppSettings, error)
	Startup(ctx context.Context)
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	context     context.Context
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings, context: context.Background()}
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(s.context)
}

func (s *appSettingsService) Update(theme, locale string) (*models.AppSettings, error) {
	if theme == "" {
		return nil, errors.New("theme is required")
	}
	if locale == "" {
		return nil, errors.New("locale is required")
	}
	if !models.ValidTheme(theme) {
		return nil, errors.New("theme must be 'light', 'dark', or 'system'")
	}

	current, err := s.appSettings.Get(s.context)
	if err != nil {
		return nil, err
	}

	current.Theme = theme
	current.Locale = locale
	current.UpdatedAt = time.Now()

	if err := s.appSettings.Update(s.context, current); err != nil {
		return nil, err
	}

	return current, nil
}

// SetTheme changes only the theme, keeping the saved locale.
func (s *appSettingsService) SetTheme(theme string) (*models.AppSettings, error) {
	current, err := s.appSettings.Get(s.context)
	if err != nil {
		return nil, err
	}
	locale := current.Locale
	if locale == "" {
		locale = models.DefaultLocale
	}
	return s.Update(theme, locale)
}
