// Package config loads board generation defaults from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"svw.info/blackbox/internal/domain"
)

// Config holds environment-driven defaults. Size overrides of zero keep the
// preset value; ball overrides use -1 for "unset" since zero balls is valid.
type Config struct {
	Preset   string `env:"BLACKBOX_PRESET" envDefault:"classic"`
	Width    int    `env:"BLACKBOX_WIDTH"`
	Height   int    `env:"BLACKBOX_HEIGHT"`
	MinBalls int    `env:"BLACKBOX_MIN_BALLS" envDefault:"-1"`
	MaxBalls int    `env:"BLACKBOX_MAX_BALLS" envDefault:"-1"`
	LogLevel string `env:"BLACKBOX_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads Config from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Board resolves the preset and applies any overrides.
func (c Config) Board() (domain.BoardConfig, error) {
	p, err := domain.ParsePreset(c.Preset)
	if err != nil {
		return domain.BoardConfig{}, err
	}
	b := p.Config()
	if c.Width > 0 {
		b.Width = c.Width
	}
	if c.Height > 0 {
		b.Height = c.Height
	}
	if c.MinBalls >= 0 {
		b.MinBalls = c.MinBalls
	}
	if c.MaxBalls >= 0 {
		b.MaxBalls = c.MaxBalls
	}
	return b, nil
}

// NewLogger builds a text logger at level (debug|info|warn|error).
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
