package ports

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces the move sequence for n disks.
type Solver interface {
	Solve(ctx context.Context, n int) (*domain.Solution, Stats, error)
}

// Validator replays a solution against a stack model.
type Validator interface {
	Validate(ctx context.Context, s *domain.Solution) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter returns the next move on an optimal path from the given position.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}
