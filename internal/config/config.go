// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads digitcipher settings from defaults, YAML files,
// environment variables and command-line flags, in rising precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "digitcipher"
	envPrefix = "digitcipher"
)

// Config is the full application configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// HistoryConfig controls recording of performed conversions.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// DatabaseConfig selects the history backend.
type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"` // sqlite, postgres or mysql
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the built-in default values keyed by their viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":        "en",
		"history.enabled": true,
		"database.type":   "sqlite",
		"database.dsn":    DefaultDatabaseDSN(),
		"log.level":       "info",
	}
}

// DefaultDatabaseDSN places the SQLite history file next to the user config.
// It falls back to the working directory when no config dir is known.
func DefaultDatabaseDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./" + appName + ".db"
	}
	return filepath.Join(dir, appName, "history.db")
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Digitcipher")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the first digitcipher.yaml found (or
// explicitPath when non-nil), DIGITCIPHER_* environment variables and the
// flags of cmd. A missing config file is reported as
// viper.ConfigFileNotFoundError together with the otherwise complete result.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// WriteConfigFile writes c as YAML to the user (or system) config path,
// creating the directory when needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// The DSN may carry database credentials.
	return os.WriteFile(path, data, 0o600)
}
