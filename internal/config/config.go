// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads quadsolver settings from defaults, an optional YAML
// file, QUADSOLVER_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "quadsolver"

// Config holds the user-tunable settings.
type Config struct {
	Language  string `mapstructure:"language" yaml:"language"`
	Mode      string `mapstructure:"mode" yaml:"mode"`
	Color     string `mapstructure:"color" yaml:"color"`
	AltScreen bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"mode":       "auto",
		"color":      "auto",
		"alt_screen": false,
		"log_level":  "warn",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Quadsolver")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig decodes the merged configuration into T. A missing config file is
// not an error; a malformed one is.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// 3. An explicit --config file takes precedence over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 4. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	// 5. Read from environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// 6. cli flags; "alt-screen" binds to the "alt_screen" key.
	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile stores c as YAML in the user (or system) config path and
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

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}

	return path, nil
}
