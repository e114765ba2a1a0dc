// Package config resolves encoder and logging settings from defaults, an
// optional configuration file (YAML, JSON or TOML) and QUBOX_* environment
// variables, in increasing order of precedence.
//
//	alpha: 10              # QUBOX_ALPHA
//	representation: ISING  # QUBOX_REPRESENTATION
//	layout: sym            # QUBOX_LAYOUT
//	workers: 4             # QUBOX_WORKERS
//	log_level: debug       # QUBOX_LOG_LEVEL
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qubox/encoder"
	"github.com/katalvlaran/qubox/logger"
	"github.com/katalvlaran/qubox/matrix"
	"github.com/katalvlaran/qubox/model"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "QUBOX"

// Configuration keys.
const (
	KeyAlpha          = "alpha"
	KeyRepresentation = "representation"
	KeyLayout         = "layout"
	KeyWorkers        = "workers"
	KeyLogLevel       = "log_level"
)

// Settings is the resolved configuration.
type Settings struct {
	Alpha          float64 `mapstructure:"alpha" yaml:"alpha" json:"alpha"`
	Representation string  `mapstructure:"representation" yaml:"representation" json:"representation"`
	Layout         string  `mapstructure:"layout" yaml:"layout" json:"layout"`
	Workers        int     `mapstructure:"workers" yaml:"workers" json:"workers"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Alpha:          encoder.DefaultAlpha,
		Representation: model.QUBO.String(),
		Layout:         matrix.Upper.String(),
		Workers:        encoder.DefaultWorkers,
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// Load resolves the settings. An empty path skips the file layer.
func Load(path string) (Settings, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyAlpha, d.Alpha)
	v.SetDefault(KeyRepresentation, d.Representation)
	v.SetDefault(KeyLayout, d.Layout)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	source := "defaults"
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		source = v.ConfigFileUsed()
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	log := logger.Logger()
	log.Debug().
		Str("source", source).
		Float64("alpha", s.Alpha).
		Str("representation", s.Representation).
		Str("layout", s.Layout).
		Int("workers", s.Workers).
		Msg("configuration loaded")

	return s, nil
}

// Validate checks every field.
//
// Errors:
//   - encoder.ErrBadAlpha, encoder.ErrBadWorkers, model.ErrInvalidRepresentation,
//     matrix.ErrInvalidLayout, or a log level parse error.
func (s Settings) Validate() error {
	if math.IsNaN(s.Alpha) || math.IsInf(s.Alpha, 0) || s.Alpha <= 0 {
		return fmt.Errorf("config: alpha=%v: %w", s.Alpha, encoder.ErrBadAlpha)
	}
	if s.Workers < 1 {
		return fmt.Errorf("config: workers=%d: %w", s.Workers, encoder.ErrBadWorkers)
	}
	if _, err := model.ParseRepresentation(s.Representation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := matrix.ParseLayout(s.Layout); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}

	return nil
}

// Options maps the settings to encoder options.
func (s Settings) Options() ([]encoder.Option, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	rep, _ := model.ParseRepresentation(s.Representation)
	layout, _ := matrix.ParseLayout(s.Layout)

	return []encoder.Option{
		encoder.WithAlpha(s.Alpha),
		encoder.WithRepresentation(rep),
		encoder.WithLayout(layout),
		encoder.WithWorkers(s.Workers),
	}, nil
}

// ApplyLogging sets the global log level.
func (s Settings) ApplyLogging() error {
	return logger.SetLevel(s.LogLevel)
}
