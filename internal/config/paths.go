package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/latest-changelog/config.yml
// - macOS: ~/Library/Application Support/latest-changelog/config.yml
// - Windows: %APPDATA%\latest-changelog\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "latest-changelog", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .latest-changelog.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".latest-changelog.yml"
}
