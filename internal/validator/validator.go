package validator

import (
	"errors"
	"fmt"

	"svw.info/blackbox/internal/domain"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrInconsistentBoard    = errors.New("inconsistent board state")
)

type BoardValidator struct{}

func New() *BoardValidator { return &BoardValidator{} }

func (v *BoardValidator) CheckConfig(cfg domain.BoardConfig) error { return CheckConfig(cfg) }

func (v *BoardValidator) CheckBoard(cfg domain.BoardConfig, b domain.BoardState) error {
	return CheckBoard(cfg, b)
}

// CheckConfig rejects configs the generator cannot finish on.
func CheckConfig(cfg domain.BoardConfig) error {
	switch {
	case cfg.Width < 0:
		return fmt.Errorf("%w: width %d is negative", ErrInvalidConfiguration, cfg.Width)
	case cfg.Height < 0:
		return fmt.Errorf("%w: height %d is negative", ErrInvalidConfiguration, cfg.Height)
	case cfg.MinBalls < 0:
		return fmt.Errorf("%w: min balls %d is negative", ErrInvalidConfiguration, cfg.MinBalls)
	case cfg.MaxBalls < cfg.MinBalls:
		return fmt.Errorf("%w: max balls %d below min balls %d", ErrInvalidConfiguration, cfg.MaxBalls, cfg.MinBalls)
	case cfg.MaxBalls > cfg.Cells():
		return fmt.Errorf("%w: max balls %d exceeds %dx%d cells", ErrInvalidConfiguration, cfg.MaxBalls, cfg.Width, cfg.Height)
	}
	return nil
}

// CheckBoard verifies b is a board cfg could have produced.
func CheckBoard(cfg domain.BoardConfig, b domain.BoardState) error {
	if b.Width != cfg.Width || b.Height != cfg.Height {
		return fmt.Errorf("%w: board is %dx%d, config is %dx%d", ErrInconsistentBoard, b.Width, b.Height, cfg.Width, cfg.Height)
	}
	if len(b.Grid) != b.Width {
		return fmt.Errorf("%w: grid has %d columns, want %d", ErrInconsistentBoard, len(b.Grid), b.Width)
	}
	if b.Balls < cfg.MinBalls || b.Balls > cfg.MaxBalls {
		return fmt.Errorf("%w: %d balls outside [%d, %d]", ErrInconsistentBoard, b.Balls, cfg.MinBalls, cfg.MaxBalls)
	}
	n := 0
	for x, col := range b.Grid {
		if len(col) != b.Height {
			return fmt.Errorf("%w: column %d has %d cells, want %d", ErrInconsistentBoard, x, len(col), b.Height)
		}
		for _, ball := range col {
			if ball {
				n++
			}
		}
	}
	if n != b.Balls {
		return fmt.Errorf("%w: %d occupied cells for %d balls", ErrInconsistentBoard, n, b.Balls)
	}
	return nil
}
