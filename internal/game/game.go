// Package game holds the interactive 3-peg puzzle state.
//
// A Game starts with every disk on peg "1" and is solved once peg "3" holds
// all of them. Move is the only mutation path; rejected moves leave the game
// untouched and report a *domain.MoveError.
package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
	"svw.info/hanoi/internal/tower"
)

const (
	Left   domain.PegLabel = "1"
	Middle domain.PegLabel = "2"
	Right  domain.PegLabel = "3"
)

// ErrInvalidDisks is returned by New for n < 1.
var ErrInvalidDisks = errors.New("game needs at least one disk")

// Game is not safe for concurrent use.
type Game struct {
	id     string
	disks  int
	moves  int
	labels []domain.PegLabel
	pegs   map[domain.PegLabel]*tower.Peg
}

// New creates a game with n disks on peg "1".
func New(n int) (*Game, error) {
	if n < 1 {
		return nil, ErrInvalidDisks
	}
	return &Game{
		id:     uuid.NewString()[:8],
		disks:  n,
		labels: []domain.PegLabel{Left, Middle, Right},
		pegs: map[domain.PegLabel]*tower.Peg{
			Left:   tower.NewPeg(n),
			Middle: tower.NewPeg(0),
			Right:  tower.NewPeg(0),
		},
	}, nil
}

// ID is a short session identifier for log correlation.
func (g *Game) ID() string { return g.id }

// Disks is the disk count fixed at creation.
func (g *Game) Disks() int { return g.disks }

// Labels returns the peg labels in board order.
func (g *Game) Labels() []domain.PegLabel {
	return append([]domain.PegLabel(nil), g.labels...)
}

// Move transfers the top disk from origin to dest.
func (g *Game) Move(origin, dest domain.PegLabel) error {
	from, okFrom := g.pegs[origin]
	to, okTo := g.pegs[dest]
	if origin == dest || !okFrom || !okTo {
		return domain.NewMoveError(domain.InvalidInput, origin, dest)
	}
	if err := tower.Transfer(from, to); err != nil {
		var me *domain.MoveError
		if errors.As(err, &me) {
			return domain.NewMoveError(me.Kind, origin, dest)
		}
		return err
	}
	g.moves++
	return nil
}

// MoveCount is the number of successful moves so far.
func (g *Game) MoveCount() int { return g.moves }

// MinimumMoves is 2^n - 1 regardless of history.
func (g *Game) MinimumMoves() uint64 { return solver.Moves3(g.disks) }

// IsSolved reports whether the right peg holds every disk. Stacking rules
// guarantee the order, so the count is enough.
func (g *Game) IsSolved() bool {
	return g.pegs[Right].Size() == g.disks
}

// PegContents returns the disks on label bottom to top, or nil for an unknown label.
func (g *Game) PegContents(label domain.PegLabel) []domain.Disk {
	p, ok := g.pegs[label]
	if !ok {
		return nil
	}
	return p.Disks()
}

// Board snapshots the current position.
func (g *Game) Board() *domain.Board {
	b := &domain.Board{Disks: g.disks, Target: Right, Pegs: make([]domain.PegState, 0, len(g.labels))}
	for _, l := range g.labels {
		b.Pegs = append(b.Pegs, domain.PegState{Label: l, Disks: g.pegs[l].Disks()})
	}
	return b
}

// ParseMove reads the two-character move notation, e.g. "13" for peg 1 to peg 3.
// It checks shape only; label validity is left to Move.
func ParseMove(s string) (domain.Move, error) {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) != 2 || r[0] == r[1] {
		return domain.Move{}, domain.NewMoveError(domain.InvalidInput, "", "")
	}
	return domain.Move{From: domain.PegLabel(r[0]), To: domain.PegLabel(r[1])}, nil
}
