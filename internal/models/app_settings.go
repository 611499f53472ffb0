package models

import "time"

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultLocale = "en"

	// PreferencesRowID is the only row of the app_settings table; a client database
	// belongs to one installation, whoever is logged in.
	PreferencesRowID uint = 1
)

// AppSettings holds the client's display preferences. They outlive sessions: logging out
// keeps the theme.
type AppSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	Theme     string    `gorm:"not null;default:dark" json:"theme"`
	Locale    string    `gorm:"not null" json:"locale"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultAppSettings is what a first launch renders with: dark theme, English.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{ID: PreferencesRowID, Version: 1, Theme: ThemeDark, Locale: DefaultLocale}
}

func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
