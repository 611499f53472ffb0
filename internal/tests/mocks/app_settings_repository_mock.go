package mocks

import (
	"context"
	"sync"

	"storycrafter/internal/models"
)

// AppSettingsRepositoryMock serves first-launch defaults until something is saved, then
// returns the last saved preferences.
type AppSettingsRepositoryMock struct {
	GetFunc    func(ctx context.Context) (*models.AppSettings, error)
	UpdateFunc func(ctx context.Context, settings *models.AppSettings) error

	mu    sync.Mutex
	saved *models.AppSettings
}

func (m *AppSettingsRepositoryMock) Get(ctx context.Context) (*models.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return models.DefaultAppSettings(), nil
	}
	cp := *m.saved
	return &cp, nil
}

func (m *AppSettingsRepositoryMock) Update(ctx context.Context, settings *models.AppSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *settings
	m.saved = &cp
	return nil
}

// Saved is the last theme/locale written, nil if nothing was.
func (m *AppSettingsRepositoryMock) Saved() *models.AppSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}
