package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the CLI's runtime settings.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is a logrus level name (debug/info/warn/error).
	LogLevel string `mapstructure:"log_level"`

	// TargetMaxHours is the per-day ceiling the balancer aims for.
	TargetMaxHours float64 `mapstructure:"target_max_hours"`

	// HorizonDays is how far ahead schedule generation looks when a
	// plan has no goal date inside the window.
	HorizonDays int `mapstructure:"horizon_days"`
}

const (
	defaultLogLevel       = "warn"
	defaultTargetMaxHours = 4.0
	defaultHorizonDays    = 30
)

// Load reads configuration in priority order: STUDYFLOW_* environment
// variables, then config.yaml in $XDG_CONFIG_HOME/studyflow (or
// ~/.config/studyflow), then built-in defaults. A missing config file
// is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("STUDYFLOW")
	v.AutomaticEnv()

	v.SetDefault("db_path", "")
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("target_max_hours", defaultTargetMaxHours)
	v.SetDefault("horizon_days", defaultHorizonDays)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// configDir resolves the studyflow config directory under XDG rules.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "studyflow"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "studyflow"), nil
}
