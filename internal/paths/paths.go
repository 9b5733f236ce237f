// Package paths resolves the per-user directories that hold the config
// and state files, following the XDG base directory convention.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the directory for the app's config file:
// $XDG_CONFIG_HOME/<app>, else ~/.config/<app>, else ./<app>.
func ConfigDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".config", app)
}

// DataDir returns the directory for the app's state file:
// $XDG_DATA_HOME/<app>, else ~/.local/share/<app>, else ./<app>.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}
