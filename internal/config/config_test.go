package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"svw.info/blackbox/internal/domain"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Preset != "classic" || cfg.LogLevel != "info" {
		t.Fatalf("defaults = %+v", cfg)
	}
	b, err := cfg.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if b != domain.Classic.Config() {
		t.Fatalf("Board() = %+v, want classic", b)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"BLACKBOX_PRESET":    "large-range",
		"BLACKBOX_WIDTH":     "12",
		"BLACKBOX_MIN_BALLS": "0",
		"BLACKBOX_LOG_LEVEL": "debug",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	b, err := cfg.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	want := domain.NewBoardConfig(12, 10, 0, 10)
	if b != want {
		t.Fatalf("Board() = %+v, want %+v", b, want)
	}
}

func TestLoadFromErrors(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"BLACKBOX_WIDTH": "wide"}); err == nil {
		t.Fatal("expected parse error for non-numeric width")
	}
	cfg, err := LoadFrom(map[string]string{"BLACKBOX_PRESET": "giant"})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if _, err := cfg.Board(); !errors.Is(err, domain.ErrUnknownPreset) {
		t.Fatalf("Board() error = %v", err)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "WARN")
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestLoadProcessEnv(t *testing.T) {
	t.Setenv("BLACKBOX_PRESET", "small")
	t.Setenv("BLACKBOX_MAX_BALLS", "4")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := cfg.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if want := domain.NewBoardConfig(5, 5, 3, 4); b != want {
		t.Fatalf("Board() = %+v, want %+v", b, want)
	}
}
