package solver

import (
	"context"
	"errors"
	"math"

	"svw.info/hanoi/internal/domain"
)

// ErrInvalidDisks is returned by the port adapters for n < 1.
var ErrInvalidDisks = errors.New("disk count must be at least 1")

// ctxCheckEvery bounds how often the walkers poll ctx.
const ctxCheckEvery = 1 << 12

// walker accumulates moves for one solve and counts recursion nodes.
type walker struct {
	ctx   context.Context
	moves []domain.Move
	nodes int
	err   error
}

func newWalker(ctx context.Context, want uint64) *walker {
	w := &walker{ctx: ctx}
	// Preallocate only for sizes that comfortably fit in memory.
	if want <= 1<<24 {
		w.moves = make([]domain.Move, 0, want)
	}
	return w
}

func (w *walker) emit(from, to domain.PegLabel) {
	w.moves = append(w.moves, domain.Move{From: from, To: to})
}

// enter counts a node and reports whether the walk should stop.
func (w *walker) enter() bool {
	if w.err != nil {
		return true
	}
	w.nodes++
	if w.ctx != nil && w.nodes%ctxCheckEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return true
		}
	}
	return false
}

// Moves3 is the length of the 3-peg solution, 2^n - 1. It saturates at MaxUint64.
func Moves3(n int) uint64 {
	if n < 1 {
		return 0
	}
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(n) - 1
}

// Moves4 is the length of the 4-peg solution produced by Solve4:
// M(1)=1, M(2)=3, M(n)=2*M(n-2)+3.
func Moves4(n int) uint64 {
	if n < 1 {
		return 0
	}
	a, b := uint64(1), uint64(3) // M(1), M(2)
	if n == 1 {
		return a
	}
	for i := 3; i <= n; i++ {
		next := 2*a + 3
		if next < a {
			return math.MaxUint64
		}
		a, b = b, next
	}
	return b
}

func checkDisks(n int) error {
	if n < 1 {
		return ErrInvalidDisks
	}
	return nil
}
