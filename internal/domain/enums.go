package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Preset names a standard board size and ball range.
type Preset int

const (
	Small        Preset = iota // 5x5, 3 balls
	Classic                    // 8x8, 5 balls
	ClassicRange               // 8x8, 3 to 6 balls
	Large                      // 10x10, 5 balls
	LargeRange                 // 10x10, 4 to 10 balls
)

var ErrUnknownPreset = errors.New("unknown board preset")

var presetNames = [...]string{
	Small:        "small",
	Classic:      "classic",
	ClassicRange: "classic-range",
	Large:        "large",
	LargeRange:   "large-range",
}

var presetConfigs = [...]BoardConfig{
	Small:        {Width: 5, Height: 5, MinBalls: 3, MaxBalls: 3},
	Classic:      {Width: 8, Height: 8, MinBalls: 5, MaxBalls: 5},
	ClassicRange: {Width: 8, Height: 8, MinBalls: 3, MaxBalls: 6},
	Large:        {Width: 10, Height: 10, MinBalls: 5, MaxBalls: 5},
	LargeRange:   {Width: 10, Height: 10, MinBalls: 4, MaxBalls: 10},
}

func (p Preset) valid() bool { return p >= Small && p <= LargeRange }

// Config returns the board parameters for p, or Classic for an unknown preset.
func (p Preset) Config() BoardConfig {
	if !p.valid() {
		return presetConfigs[Classic]
	}
	return presetConfigs[p]
}

func (p Preset) String() string {
	if !p.valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset accepts the names returned by String, case-insensitively.
func ParsePreset(s string) (Preset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range presetNames {
		if n == name {
			return Preset(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}
