package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/blackbox/internal/domain"
	"svw.info/blackbox/internal/ports"
	"svw.info/blackbox/internal/random"
)

// Service validates configurations before handing them to the generator,
// so callers never hit the generator's unbounded rejection loop.
type Service struct {
	Generator ports.Generator
	Validator ports.Validator
	Logger    *slog.Logger
}

func NewService(g ports.Generator, v ports.Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{Generator: g, Validator: v, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) ready() error {
	if u.Generator == nil || u.Validator == nil {
		return errNotConfigured
	}
	return nil
}

func (u *Service) check(cfg domain.BoardConfig) error {
	if err := u.Validator.CheckConfig(cfg); err != nil {
		u.Logger.Warn("rejected board config",
			"width", cfg.Width, "height", cfg.Height,
			"min", cfg.MinBalls, "max", cfg.MaxBalls, "err", err)
		return err
	}
	return nil
}

// NewBoard generates a board from a fresh seed and returns the seed with it.
func (u *Service) NewBoard(ctx context.Context, cfg domain.BoardConfig) (domain.BoardState, uint64, error) {
	if err := u.ready(); err != nil {
		return domain.BoardState{}, 0, err
	}
	seed, err := random.NewSeed()
	if err != nil {
		return domain.BoardState{}, 0, err
	}
	b, err := u.NewBoardSeeded(ctx, cfg, seed)
	if err != nil {
		return domain.BoardState{}, 0, err
	}
	return b, seed, nil
}

// NewPresetBoard is NewBoard for a named preset.
func (u *Service) NewPresetBoard(ctx context.Context, p domain.Preset) (domain.BoardState, uint64, error) {
	return u.NewBoard(ctx, p.Config())
}

// NewBoardSeeded reproduces the board for seed.
func (u *Service) NewBoardSeeded(ctx context.Context, cfg domain.BoardConfig, seed uint64) (domain.BoardState, error) {
	if err := u.ready(); err != nil {
		return domain.BoardState{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.BoardState{}, err
	}
	if err := u.check(cfg); err != nil {
		return domain.BoardState{}, err
	}
	start := time.Now()
	b := u.Generator.GenerateSeeded(cfg, seed)
	u.Logger.Debug("board generated",
		"width", b.Width, "height", b.Height, "balls", b.Balls,
		"seed", seed, "dur", time.Since(start))
	return b, nil
}

// NewBoards generates one board per seed in parallel. Results follow seed order.
func (u *Service) NewBoards(ctx context.Context, cfg domain.BoardConfig, seeds []uint64) ([]domain.BoardState, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	if err := u.check(cfg); err != nil {
		return nil, err
	}

	start := time.Now()
	out := make([]domain.BoardState, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = u.Generator.GenerateSeeded(cfg, seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate boards: %w", err)
	}
	u.Logger.Debug("boards generated",
		"width", cfg.Width, "height", cfg.Height,
		"count", len(out), "dur", time.Since(start))
	return out, nil
}
