package ports

import "svw.info/blackbox/internal/domain"

// RandomSource yields uniformly distributed 64-bit values.
// Implementations used as process-wide defaults must be safe for concurrent use.
type RandomSource interface {
	Uint64() uint64
}

// Generator places hidden balls on a new board.
type Generator interface {
	Generate(cfg domain.BoardConfig) domain.BoardState
	GenerateSeeded(cfg domain.BoardConfig, seed uint64) domain.BoardState
}

// Validator checks configurations before generation and boards after it.
type Validator interface {
	CheckConfig(cfg domain.BoardConfig) error
	CheckBoard(cfg domain.BoardConfig, b domain.BoardState) error
}
