// Package config loads graphwalk settings from defaults, an optional file and
// GRAPHWALK_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "graphwalk"

	OptionPlaybackInterval = "playback.interval"
	OptionLogLevel         = "log.level"
	OptionLogFormat        = "log.format"
	OptionTelemetryEnabled = "telemetry.enabled"

	DefaultPlaybackInterval = 700 * time.Millisecond
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultTelemetryEnabled = true
)

// Config is the resolved configuration.
type Config struct {
	PlaybackInterval time.Duration
	LogLevel         string
	LogFormat        string
	TelemetryEnabled bool
}

// NewViper returns a viper instance with env binding and defaults applied.
// Callers may bind command-line flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(OptionPlaybackInterval, DefaultPlaybackInterval)
	v.SetDefault(OptionLogLevel, DefaultLogLevel)
	v.SetDefault(OptionLogFormat, DefaultLogFormat)
	v.SetDefault(OptionTelemetryEnabled, DefaultTelemetryEnabled)

	return v
}

// Load reads path (if non-empty) into v and resolves the configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{
		PlaybackInterval: v.GetDuration(OptionPlaybackInterval),
		LogLevel:         v.GetString(OptionLogLevel),
		LogFormat:        v.GetString(OptionLogFormat),
		TelemetryEnabled: v.GetBool(OptionTelemetryEnabled),
	}
	if cfg.PlaybackInterval <= 0 {
		return nil, fmt.Errorf("config: %s must be positive, got %s", OptionPlaybackInterval, cfg.PlaybackInterval)
	}

	return cfg, nil
}
