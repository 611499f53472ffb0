package repositories

import (
	"context"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

// AppSettingsRepository stores the client's display preferences in a single row.
type AppSettingsRepository interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, settings *models.AppSettings) error
}

type appSettingsRepository struct {
	db *gorm.DB
}

func NewAppSettingsRepository(db *gorm.DB) AppSettingsRepository {
	return &appSettingsRepository{db: db}
}

// Get returns the saved preferences, or the first-launch defaults when the theme was never
// toggled. Defaults are not written until Update.
func (r *appSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	err := r.db.WithContext(ctx).
		Where(&models.AppSettings{ID: models.PreferencesRowID}).
		Attrs(models.DefaultAppSettings()).
		FirstOrInit(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *appSettingsRepository) Update(ctx context.Context, settings *models.AppSettings) error {
	settings.ID = models.PreferencesRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
