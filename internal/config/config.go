// Package config loads noted settings from defaults, an optional YAML file
// and NOTED_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/renato0307/noted/internal/commands"
)

// Config holds application configuration
type Config struct {
	Log         LogConfig             `mapstructure:"log"`
	Keyboard    KeyboardConfig        `mapstructure:"keyboard"`
	Keybindings []commands.Keybinding `mapstructure:"keybindings"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File       string `mapstructure:"file"` // Empty disables logging
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// KeyboardConfig holds key event mapping settings
type KeyboardConfig struct {
	MetaFromAlt bool `mapstructure:"meta_from_alt"`
}

// DefaultPath returns ~/.config/noted/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "noted", "config.yaml")
}

// Load reads configuration. An explicit path must exist; without one the
// default location is used when present. Env overrides use prefix NOTED_
// (e.g. NOTED_LOG_LEVEL=debug).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("keyboard.meta_from_alt", true)

	v.SetConfigType("yaml")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("NOTED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			if explicit || !isNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
