package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
)

// Optimal suggests the first move of the shortest path from any legal
// 3-peg position to all disks on the target peg.
type Optimal struct{}

func NewOptimal() *Optimal { return &Optimal{} }

var errNotThreePeg = errors.New("hints need exactly three pegs")

// Hint returns found=false when the board is already solved.
//
// Walking from the largest disk down, a disk already on its goal peg needs
// nothing; otherwise it must move to the goal, so every smaller disk first
// has to gather on the remaining peg, which becomes the goal for the next
// disk. The last disk found off its goal moves first. Each such disk k costs
// 2^(k-1) moves on the shortest path.
func (h *Optimal) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	pos, err := positions(b)
	if err != nil {
		return domain.Hint{}, false, err
	}

	goal := b.Target
	var (
		first     domain.Move
		found     bool
		remaining uint64
	)
	for k := b.Disks; k >= 1; k-- {
		at := pos[k]
		if at == goal {
			continue
		}
		first = domain.Move{From: at, To: goal}
		found = true
		remaining += solver.Moves3(k-1) + 1
		goal = third(b, at, goal)
	}
	if !found {
		return domain.Hint{}, false, nil
	}
	return domain.Hint{
		Move:      first,
		Remaining: remaining,
		Message:   fmt.Sprintf("Try %s%s: move from peg %s to peg %s (%d left on the shortest path)", first.From, first.To, first.From, first.To, remaining),
	}, true, nil
}

// positions maps each disk to its peg and checks the board is a legal position.
func positions(b *domain.Board) ([]domain.PegLabel, error) {
	if b == nil {
		return nil, errors.New("nil board")
	}
	if len(b.Pegs) != 3 {
		return nil, errNotThreePeg
	}
	if _, ok := b.Peg(b.Target); !ok {
		return nil, fmt.Errorf("target peg %q not on board", b.Target)
	}
	pos := make([]domain.PegLabel, b.Disks+1)
	seen := 0
	for _, p := range b.Pegs {
		for i, d := range p.Disks {
			if d < 1 || int(d) > b.Disks || pos[d] != "" {
				return nil, fmt.Errorf("peg %s: unexpected disk %d", p.Label, d)
			}
			if i > 0 && p.Disks[i-1] < d {
				return nil, fmt.Errorf("peg %s: disk %d above smaller disk %d", p.Label, d, p.Disks[i-1])
			}
			pos[d] = p.Label
			seen++
		}
	}
	if seen != b.Disks {
		return nil, fmt.Errorf("board holds %d of %d disks", seen, b.Disks)
	}
	return pos, nil
}

func third(b *domain.Board, x, y domain.PegLabel) domain.PegLabel {
	for _, p := range b.Pegs {
		if p.Label != x && p.Label != y {
			return p.Label
		}
	}
	return ""
}
