package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Solve3 returns the 2^n - 1 moves that carry n disks from start to end using aux.
// n < 1 yields no moves.
func Solve3(n int, start, end, aux domain.PegLabel) []domain.Move {
	w := newWalker(nil, Moves3(n))
	w.three(n, start, end, aux)
	return w.moves
}

func (w *walker) three(n int, start, end, aux domain.PegLabel) {
	if n < 1 || w.enter() {
		return
	}
	if n == 1 {
		w.emit(start, end)
		return
	}
	w.three(n-1, start, aux, end)
	w.emit(start, end)
	w.three(n-1, aux, end, start)
}

// ThreePeg solves the classic puzzle between fixed labels.
type ThreePeg struct {
	Start, End, Aux domain.PegLabel
}

// NewThreePeg uses the conventional labels: 1 to 3 via 2.
func NewThreePeg() *ThreePeg {
	return &ThreePeg{Start: "1", End: "3", Aux: "2"}
}

func (s *ThreePeg) Solve(ctx context.Context, n int) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := checkDisks(n); err != nil {
		return nil, ports.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	w := newWalker(ctx, Moves3(n))
	w.three(n, s.Start, s.End, s.Aux)
	st := ports.Stats{Nodes: w.nodes, Duration: time.Since(start)}
	if w.err != nil {
		return nil, st, w.err
	}
	return &domain.Solution{
		Variant: domain.ThreePeg,
		Disks:   n,
		Pegs:    []domain.PegLabel{s.Start, s.End, s.Aux},
		Moves:   w.moves,
	}, st, nil
}
