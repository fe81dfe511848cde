// Package config provides layered configuration for latest-changelog using koanf.
// Configuration is loaded with priority: environment variables > explicit or
// project config (.latest-changelog.yml) > user config
// (~/.config/latest-changelog/config.yml) > defaults. Config files may be YAML
// or JSON, selected by file extension. Command-line flags are applied on top
// by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// Example: LATEST_CHANGELOG_OUTPUT_PATH -> output_path
const EnvPrefix = "LATEST_CHANGELOG_"

// Configuration represents the latest-changelog configuration
type Configuration struct {
	// ChangelogPath is the Markdown changelog to read.
	ChangelogPath string `koanf:"changelog_path" validate:"required"`
	// OutputPath receives the newest entry. Overwritten on every successful run.
	OutputPath string `koanf:"output_path" validate:"required"`

	// Parser selects how headings are found: "regex" scans the raw text,
	// "markdown" only considers real level-2 headings.
	Parser string `koanf:"parser" validate:"oneof=regex markdown"`
	// AllMatches validates and writes every entry instead of only the newest.
	AllMatches bool `koanf:"all_matches"`
	// NormalizeVersions ignores case and a leading "v" when comparing versions.
	NormalizeVersions bool `koanf:"normalize_versions"`
	// GitTags accepts the tags pointing at HEAD as expected versions.
	GitTags bool `koanf:"git_tags"`

	// HeadingPattern and BoundaryPattern override the built-in expressions.
	// HeadingPattern must define a named group "version".
	HeadingPattern  string `koanf:"heading_pattern"`
	BoundaryPattern string `koanf:"boundary_pattern"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath is an explicit config file; it must exist when set and
	// replaces the project config.
	ConfigPath string
	// ProjectConfigPath overrides the project config path (default: .latest-changelog.yml)
	ProjectConfigPath string
	// SkipUserConfig ignores the user-level config file.
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Explicit or project config > User config > Defaults
func Load(configPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ConfigPath: configPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil || !fileExists(userPath) {
		return nil
	}
	if err := loadConfigFile(k, userPath, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the explicit config file, or the project config if present.
func loadProjectConfig(k *koanf.Koanf, opts LoadOptions) error {
	if opts.ConfigPath != "" {
		if !fileExists(opts.ConfigPath) {
			return &ValidationError{FilePath: opts.ConfigPath, Message: "config file not found"}
		}
		if err := loadConfigFile(k, opts.ConfigPath, "explicit"); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if !fileExists(projectPath) {
		return nil
	}
	if err := loadConfigFile(k, projectPath, "project"); err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	return nil
}

// loadConfigFile validates and loads a YAML or JSON config file.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	if isJSON(path) {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals, validates, and applies final transformations
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ChangelogPath = expandHomePath(cfg.ChangelogPath)
	cfg.OutputPath = expandHomePath(cfg.OutputPath)

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// isJSON reports whether path names a JSON config file.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// envTransform converts environment variable names to config keys
// Example: LATEST_CHANGELOG_OUTPUT_PATH -> output_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
