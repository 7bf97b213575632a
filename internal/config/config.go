// Package config loads animator settings from YAML with environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/internal/tween"
)

// Config is the root configuration structure.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Source    SourceConfig    `yaml:"source"`
	Logging   LoggingConfig   `yaml:"logging"`
	Journal   JournalConfig   `yaml:"journal"`
}

// AnimationConfig controls how moves look on screen.
type AnimationConfig struct {
	DurationMs int     `yaml:"duration_ms"` // one layer rotation
	SettleMs   int     `yaml:"settle_ms"`   // pause between moves
	Easing     string  `yaml:"easing"`
	FPS        int     `yaml:"fps"`
	Spacing    float64 `yaml:"spacing"` // distance between cubelet centers
	Snap       bool    `yaml:"snap"`    // round transforms onto the grid after each move
}

// SourceConfig selects where moves come from.
type SourceConfig struct {
	// Mode is "random" or "script".
	Mode string `yaml:"mode"`

	// Moves is the space-separated move list played in script mode.
	Moves string `yaml:"moves"`

	// Loop restarts the script when it runs out.
	Loop bool `yaml:"loop"`

	// Seed seeds random mode. 0 means seed from the clock. At most
	// MaxInt64 so the journal can store it.
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // stdout, stderr or file
	File   string `yaml:"file"`   // path used when Output is file
}

// JournalConfig controls the move journal database.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means ~/.gocube_animator/journal.db
}

// Duration returns the rotation duration.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}

// Settle returns the pause between moves.
func (a AnimationConfig) Settle() time.Duration {
	return time.Duration(a.SettleMs) * time.Millisecond
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			DurationMs: 400,
			SettleMs:   350,
			Easing:     "quad-in-out",
			FPS:        60,
			Spacing:    1.05,
			Snap:       true,
		},
		Source: SourceConfig{
			Mode: "random",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads configuration from a YAML file and applies environment variable
// overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults), skipped when path is empty
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: GOCUBE_SECTION_KEY
// For example: GOCUBE_ANIMATION_SETTLE_MS, GOCUBE_SOURCE_MOVES
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	envInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	envBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	envString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	// Animation
	envInt("GOCUBE_ANIMATION_DURATION_MS", &cfg.Animation.DurationMs)
	envInt("GOCUBE_ANIMATION_SETTLE_MS", &cfg.Animation.SettleMs)
	envInt("GOCUBE_ANIMATION_FPS", &cfg.Animation.FPS)
	envString("GOCUBE_ANIMATION_EASING", &cfg.Animation.Easing)
	if v := os.Getenv("GOCUBE_ANIMATION_SPACING"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GOCUBE_ANIMATION_SPACING: %w", err))
		} else {
			cfg.Animation.Spacing = f
		}
	}
	envBool("GOCUBE_ANIMATION_SNAP", &cfg.Animation.Snap)

	// Source
	envString("GOCUBE_SOURCE_MODE", &cfg.Source.Mode)
	envString("GOCUBE_SOURCE_MOVES", &cfg.Source.Moves)
	envBool("GOCUBE_SOURCE_LOOP", &cfg.Source.Loop)
	if v := os.Getenv("GOCUBE_SOURCE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GOCUBE_SOURCE_SEED: %w", err))
		} else {
			cfg.Source.Seed = n
		}
	}

	// Logging
	envString("GOCUBE_LOGGING_LEVEL", &cfg.Logging.Level)
	envString("GOCUBE_LOGGING_FORMAT", &cfg.Logging.Format)
	envString("GOCUBE_LOGGING_OUTPUT", &cfg.Logging.Output)
	envString("GOCUBE_LOGGING_FILE", &cfg.Logging.File)

	// Journal
	envBool("GOCUBE_JOURNAL_ENABLED", &cfg.Journal.Enabled)
	envString("GOCUBE_JOURNAL_PATH", &cfg.Journal.Path)

	return errors.Join(errs...)
}

// normalize folds enumerated values to the lower case the rest of the
// program compares against.
func (c *Config) normalize() {
	c.Source.Mode = strings.ToLower(strings.TrimSpace(c.Source.Mode))
	c.Animation.Easing = strings.ToLower(strings.TrimSpace(c.Animation.Easing))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate checks the configuration for invalid values. Enumerated values
// must already be lower case; Load takes care of that.
func (c *Config) Validate() error {
	var errs []error

	if c.Animation.DurationMs <= 0 {
		errs = append(errs, errors.New("animation.duration_ms must be positive"))
	}
	if c.Animation.SettleMs < 0 {
		errs = append(errs, errors.New("animation.settle_ms must not be negative"))
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		errs = append(errs, fmt.Errorf("animation.fps must be in 1..240, got %d", c.Animation.FPS))
	}
	if c.Animation.Spacing <= 0 {
		errs = append(errs, errors.New("animation.spacing must be positive"))
	}
	if _, err := tween.Lookup(c.Animation.Easing); err != nil {
		errs = append(errs, fmt.Errorf("animation.easing: %w", err))
	}

	switch c.Source.Mode {
	case "random":
	case "script":
		moves, err := notation.ParseSequence(c.Source.Moves)
		if err != nil {
			errs = append(errs, fmt.Errorf("source.moves: %w", err))
		} else if len(moves) == 0 {
			errs = append(errs, errors.New("source.moves must not be empty in script mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("source.mode must be random or script, got %q", c.Source.Mode))
	}

	if c.Source.Seed > math.MaxInt64 {
		errs = append(errs, fmt.Errorf("source.seed must be at most %d, got %d", int64(math.MaxInt64), c.Source.Seed))
	}

	if c.Logging.Output == "file" && c.Logging.File == "" {
		errs = append(errs, errors.New("logging.file is required when logging.output is file"))
	}

	return errors.Join(errs...)
}
