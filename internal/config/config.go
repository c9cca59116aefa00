package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDatabase  = "KEKS_DB"
	EnvLanguage  = "KEKS_LANGUAGE"
	EnvThemeFile = "KEKS_THEME_FILE"
	EnvLogLevel  = "KEKS_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	DatabasePath    string      `yaml:"database_path"`
	DefaultLanguage string      `yaml:"default_language"`
	LogLevel        string      `yaml:"log_level"`
	KeyMappings     KeyMappings `yaml:"key_mappings"`
	ColorScheme     ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		DefaultLanguage: models.LanguageGerman,
		LogLevel:        "info",
		KeyMappings:     DefaultKeyMappings(),
		ColorScheme:     DefaultColorScheme(),
	}
}

// loadDotEnv loads .env from the working directory. Variables already set in
// the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

// loadThemeFile loads and merges theme from KEKS_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv lets environment variables override file values
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabase); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	loadDotEnv()

	config := Default()

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			config = &Config{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case !errors.Is(readErr, fs.ErrNotExist):
			return nil, readErr
		}
	}

	loadThemeFile(config)
	config.applyEnv()

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "keks", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "keks", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.DatabasePath == "" {
		path, err := database.DefaultPath()
		if err != nil {
			return err
		}
		c.DatabasePath = path
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = models.LanguageGerman
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	return nil
}

// Path returns the location of the config file, whether or not it exists
func Path() (string, error) {
	return getConfigPath()
}
