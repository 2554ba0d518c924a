// Package config loads wizard settings from ~/.gcw.yaml via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mattsre/gcw/internal/commit"
)

// Config holds the user-tunable wizard settings.
type Config struct {
	// Strict turns the description style advisories (length, trailing
	// period) into blocking validation failures.
	Strict bool `mapstructure:"strict"`
	// Editor overrides $EDITOR/$VISUAL for the commit body buffer.
	Editor string `mapstructure:"editor"`
	// DefaultType preselects a commit type in the type chooser.
	DefaultType string `mapstructure:"default_type"`
	// Signoff sets the default answer for the signoff prompt.
	Signoff bool `mapstructure:"signoff"`
	// Emoji prepends a gitmoji matching the type to the commit header.
	Emoji bool `mapstructure:"emoji"`
}

// DefaultConfigName is the config file basename searched in $HOME.
const DefaultConfigName = ".gcw"

// InitConfig wires viper to the config file. A missing file is not an
// error; every setting has a default.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("strict", false)
	viper.SetDefault("editor", "")
	viper.SetDefault("default_type", "")
	viper.SetDefault("signoff", false)
	viper.SetDefault("emoji", false)

	viper.SetEnvPrefix("GCW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetConfig returns the effective configuration.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DefaultType != "" && !commit.IsValidType(cfg.DefaultType) {
		return nil, fmt.Errorf("invalid default_type %q in config", cfg.DefaultType)
	}
	return cfg, nil
}

// SaveConfig writes the current settings back to the config file,
// creating it on first use.
func SaveConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}
	path := filepath.Join(home, DefaultConfigName+".yaml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
