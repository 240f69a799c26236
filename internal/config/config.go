// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "HUEKIT_CONFIG"

const appDir = "huekit"

var v *viper.Viper

// DefaultPath returns $HUEKIT_CONFIG or the XDG config location
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, appDir, "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.rate_limit", 60) // requests per minute per client

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(xdg.DataHome, appDir, "huekit.db"))

	// Theme defaults
	v.SetDefault("theme.harmony", string(harmony.Default))
	v.SetDefault("theme.background_strategy", string(tokens.Neutral))
	v.SetDefault("theme.gamut", string(oklch.SRGB))
	v.SetDefault("theme.contrast_model", contrast.Lightness.Name())
	v.SetDefault("theme.radius", themes.DefaultRadius)
	v.SetDefault("theme.cache_size", themes.DefaultMemoSize)

	v.SetDefault("log.verbosity", 0)
}

// ThemeDefaults are the configured generation defaults
type ThemeDefaults struct {
	Harmony   harmony.Type
	Radius    float64
	CacheSize int
	Options   themes.Options
}

// Theme parses the theme.* keys. Unknown names are errors.
func Theme() (ThemeDefaults, error) {
	var d ThemeDefaults
	var err error

	if d.Harmony, err = harmony.Parse(GetString("theme.harmony")); err != nil {
		return d, fmt.Errorf("theme.harmony: %w", err)
	}
	if d.Options.BackgroundStrategy, err = tokens.ParseBackgroundStrategy(GetString("theme.background_strategy")); err != nil {
		return d, fmt.Errorf("theme.background_strategy: %w", err)
	}
	if d.Options.Gamut, err = oklch.ParseGamut(GetString("theme.gamut")); err != nil {
		return d, fmt.Errorf("theme.gamut: %w", err)
	}
	if d.Options.Model, err = contrast.ParseModel(GetString("theme.contrast_model")); err != nil {
		return d, fmt.Errorf("theme.contrast_model: %w", err)
	}

	d.Radius = themes.DefaultRadius
	d.CacheSize = themes.DefaultMemoSize
	if v != nil {
		d.Radius = themes.RadiusRem(v.GetFloat64("theme.radius"))
		d.CacheSize = v.GetInt("theme.cache_size")
	}
	return d, nil
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// Set sets a config value and saves to file
func Set(key string, value any) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]any {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
