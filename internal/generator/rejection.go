package generator

import (
	"math/bits"
	"math/rand/v2"

	"svw.info/blackbox/internal/domain"
)

// GenerateSeeded creates the board determined by cfg and seed.
func (g *RejectionGenerator) GenerateSeeded(cfg domain.BoardConfig, seed uint64) domain.BoardState {
	return placeBalls(cfg, seed)
}

func placeBalls(cfg domain.BoardConfig, seed uint64) domain.BoardState {
	src := rand.NewPCG(seed, seed)

	// ball count first, exactly once
	balls := cfg.MinBalls + int(uniform(src, uint64(cfg.MaxBalls-cfg.MinBalls)+1))

	grid := make([][]bool, cfg.Width)
	for x := range grid {
		grid[x] = make([]bool, cfg.Height)
	}

	w, h := uint64(cfg.Width), uint64(cfg.Height)
	for i := 0; i < balls; i++ {
		for {
			x := uniform(src, w)
			y := uniform(src, h)
			if grid[x][y] {
				continue
			}
			grid[x][y] = true
			break
		}
	}

	return domain.BoardState{
		Width:  cfg.Width,
		Height: cfg.Height,
		Balls:  balls,
		Grid:   grid,
	}
}

// uniform returns a value in [0, n) using Lemire's nearly-divisionless method.
// n == 0 yields 0.
func uniform(src rand.Source, n uint64) uint64 {
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return hi
}
