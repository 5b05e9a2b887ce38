package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Solve4 returns a 4-peg move sequence for n disks from start to end.
//
// It is a fixed split rather than the general Frame-Stewart search: the top
// n-2 disks go to aux1, the two largest pass through aux2 and land on end,
// then the n-2 disks follow. For n >= 3 it is shorter than Solve3.
func Solve4(n int, start, end, aux1, aux2 domain.PegLabel) []domain.Move {
	w := newWalker(nil, Moves4(n))
	w.four(n, start, end, aux1, aux2)
	return w.moves
}

// The label rotation in each recursive call is load-bearing; swapping the
// spare pair yields illegal sequences.
func (w *walker) four(n int, start, end, aux1, aux2 domain.PegLabel) {
	if n < 1 || w.enter() {
		return
	}
	switch n {
	case 1:
		w.emit(start, end)
	case 2:
		w.four(1, start, aux1, end, aux2)
		w.emit(start, end)
		w.four(1, aux1, end, aux2, start)
	default:
		w.four(n-2, start, aux1, aux2, end)
		w.emit(start, aux2)
		w.emit(start, end)
		w.emit(aux2, end)
		w.four(n-2, aux1, end, start, aux2)
	}
}

// FourPeg solves the 4-peg variant between fixed labels.
type FourPeg struct {
	Start, End, Aux1, Aux2 domain.PegLabel
}

// NewFourPeg uses the conventional labels: 1 to 4 via 2 and 3.
func NewFourPeg() *FourPeg {
	return &FourPeg{Start: "1", End: "4", Aux1: "2", Aux2: "3"}
}

func (s *FourPeg) Solve(ctx context.Context, n int) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := checkDisks(n); err != nil {
		return nil, ports.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	w := newWalker(ctx, Moves4(n))
	w.four(n, s.Start, s.End, s.Aux1, s.Aux2)
	st := ports.Stats{Nodes: w.nodes, Duration: time.Since(start)}
	if w.err != nil {
		return nil, st, w.err
	}
	return &domain.Solution{
		Variant: domain.FourPeg,
		Disks:   n,
		Pegs:    []domain.PegLabel{s.Start, s.End, s.Aux1, s.Aux2},
		Moves:   w.moves,
	}, st, nil
}
