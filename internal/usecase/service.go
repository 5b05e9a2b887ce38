package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/game"
	"svw.info/hanoi/internal/ports"
)

type Service struct {
	Solvers   map[domain.Variant]ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter

	// MaxSolveDisks caps Solve; zero means no cap.
	MaxSolveDisks int
}

func NewService(three, four ports.Solver, v ports.Validator, h ports.Hinter) *Service {
	solvers := map[domain.Variant]ports.Solver{}
	if three != nil {
		solvers[domain.ThreePeg] = three
	}
	if four != nil {
		solvers[domain.FourPeg] = four
	}
	return &Service{Solvers: solvers, Validator: v, Hinter: h}
}

var (
	errNotConfigured  = errors.New("usecase dependency not configured")
	ErrUnknownVariant = errors.New("unknown puzzle variant")
	ErrTooManyDisks   = errors.New("disk count above configured limit")
)

func (u *Service) Solve(ctx context.Context, v domain.Variant, n int) (*domain.Solution, ports.Stats, error) {
	if v != domain.ThreePeg && v != domain.FourPeg {
		return nil, ports.Stats{}, fmt.Errorf("%w: %d pegs", ErrUnknownVariant, int(v))
	}
	s, ok := u.Solvers[v]
	if !ok || s == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if u.MaxSolveDisks > 0 && n > u.MaxSolveDisks {
		return nil, ports.Stats{}, fmt.Errorf("%w: %d > %d", ErrTooManyDisks, n, u.MaxSolveDisks)
	}
	return s.Solve(ctx, n)
}

func (u *Service) Verify(ctx context.Context, s *domain.Solution) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, s)
}

func (u *Service) Hint(ctx context.Context, g *game.Game) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g.Board())
}

// NewGame starts a fresh 3-peg game.
func (u *Service) NewGame(n int) (*game.Game, error) {
	return game.New(n)
}
