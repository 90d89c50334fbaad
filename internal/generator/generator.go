// Package generator places hidden balls on a Black Box board.
//
// # Determinism
//
// GenerateSeeded is a pure function of its config and seed. It seeds a
// private PCG-DXSM generator with NewPCG(seed, seed), draws the ball count
// once, then draws x and y for each ball in ball order, redrawing both on a
// collision. Ranges are reduced from 64-bit outputs with Lemire's method,
// implemented here rather than through Rand.IntN so the reduction is the
// same on 32- and 64-bit platforms.
//
// Boards are reproducible only under this exact algorithm and draw order.
// A different PRNG, seeding scheme or range reduction produces different
// boards for the same seed, even with an equivalent distribution.
//
// # Preconditions
//
// The generator does not validate its input. MinBalls <= MaxBalls <=
// Width*Height must hold; otherwise the rejection loop never finishes once
// the grid fills. Use validator.CheckConfig to reject such configs first.
package generator

import (
	"svw.info/blackbox/internal/domain"
	"svw.info/blackbox/internal/ports"
	"svw.info/blackbox/internal/random"
)

// RejectionGenerator places balls by rejection sampling.
type RejectionGenerator struct {
	Source ports.RandomSource
}

// New wires a generator whose unseeded path draws seeds from src.
// A nil src selects the process-wide entropy source.
func New(src ports.RandomSource) *RejectionGenerator {
	if src == nil {
		src = random.Default()
	}
	return &RejectionGenerator{Source: src}
}

// Generate creates a board from a freshly drawn seed.
func (g *RejectionGenerator) Generate(cfg domain.BoardConfig) domain.BoardState {
	return g.GenerateSeeded(cfg, g.Source.Uint64())
}
