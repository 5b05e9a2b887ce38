package validator

import (
	"context"
	"errors"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/tower"
)

// ReplayValidator replays a solution on a fresh stack model with one peg per label.
type ReplayValidator struct{}

func New() *ReplayValidator { return &ReplayValidator{} }

var errNoSolution = errors.New("nil solution")

// Validate stops at the first rejected move. A sequence that is legal
// throughout but leaves disks off the end peg yields one Unsolved conflict.
func (v *ReplayValidator) Validate(ctx context.Context, s *domain.Solution) (bool, []domain.Conflict, error) {
	if s == nil {
		return false, nil, errNoSolution
	}
	if len(s.Pegs) < 3 {
		return false, nil, errors.New("solution needs at least three peg labels")
	}
	pegs := make(map[domain.PegLabel]*tower.Peg, len(s.Pegs))
	for i, l := range s.Pegs {
		if _, dup := pegs[l]; dup {
			return false, nil, errors.New("duplicate peg label " + string(l))
		}
		if i == 0 {
			pegs[l] = tower.NewPeg(s.Disks)
		} else {
			pegs[l] = tower.NewPeg(0)
		}
	}

	for i, m := range s.Moves {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return false, nil, err
			}
		}
		from, okFrom := pegs[m.From]
		to, okTo := pegs[m.To]
		if m.From == m.To || !okFrom || !okTo {
			return false, []domain.Conflict{{Step: i + 1, Move: m, Kind: domain.InvalidInput}}, nil
		}
		if err := tower.Transfer(from, to); err != nil {
			var me *domain.MoveError
			if !errors.As(err, &me) {
				return false, nil, err
			}
			return false, []domain.Conflict{{Step: i + 1, Move: m, Kind: me.Kind}}, nil
		}
	}

	if pegs[s.End()].Size() != s.Disks {
		c := domain.Conflict{Step: len(s.Moves), Kind: domain.Unsolved}
		if len(s.Moves) > 0 {
			c.Move = s.Moves[len(s.Moves)-1]
		}
		return false, []domain.Conflict{c}, nil
	}
	return true, nil, nil
}
