// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Shelfmaster's user preferences. Viper merges defaults,
// config files, SHELFMASTER_* environment variables and command-line flags.
// Only preferences live here; catalog data is never written to disk.
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

// Config is the application configuration.
type Config struct {
	Language string    `mapstructure:"language" yaml:"language"`
	Log      LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

// Defaults returns the built-in values for every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"log.level":  "warn",
		"log.format": "text",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Shelfmaster")
		default: // Linux, macOS, etc.
			configDir = "/etc/shelfmaster"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "shelfmaster")
	}

	return filepath.Join(configDir, "shelfmaster.yaml"), nil
}

// LoadConfig builds a T from defaults, the first config file found, the
// environment and the flags of cmd. A missing config file is not an error;
// a malformed one is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("shelfmaster")
	v.SetConfigType("yaml")

	// 3. An explicit --config path wins over the search paths.
	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// 6. Environment variables, e.g. SHELFMASTER_LOG_LEVEL.
	v.SetEnvPrefix("shelfmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}
