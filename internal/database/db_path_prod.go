//go:build prod

package database

import (
	"os"
	"path/filepath"
)

// GetDefaultDBPath keeps installed clients' preferences and local projects under the
// user's config directory, e.g. ~/.config/storycrafter on Linux. When that directory is
// unusable the client falls back to the working directory like a dev build.
func GetDefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ClientDBFile
	}
	dir := filepath.Join(configDir, "storycrafter")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ClientDBFile
	}
	return filepath.Join(dir, ClientDBFile)
}

func IsDevelopment() bool { return false }
