package domain

import "fmt"

// Disk is a disk size; larger values are physically larger disks.
type Disk int

// PegLabel identifies a peg, e.g. "1".
type PegLabel string

// Move transfers the top disk of From onto To.
type Move struct {
	From PegLabel `json:"from" yaml:"from"`
	To   PegLabel `json:"to" yaml:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("Move from peg %s to peg %s.", m.From, m.To)
}

// Solution is a solver result. Pegs lists start, end, then auxiliaries.
type Solution struct {
	Variant Variant    `json:"pegs" yaml:"pegs"`
	Disks   int        `json:"disks" yaml:"disks"`
	Pegs    []PegLabel `json:"labels" yaml:"labels"`
	Moves   []Move     `json:"moves" yaml:"moves"`
}

// Start is the peg all disks begin on.
func (s *Solution) Start() PegLabel {
	if len(s.Pegs) == 0 {
		return ""
	}
	return s.Pegs[0]
}

// End is the peg all disks must finish on.
func (s *Solution) End() PegLabel {
	if len(s.Pegs) < 2 {
		return ""
	}
	return s.Pegs[1]
}

// PegState is one peg's contents, bottom to top.
type PegState struct {
	Label PegLabel `json:"label"`
	Disks []Disk   `json:"disks"`
}

// Board is a read-only snapshot of a game position.
type Board struct {
	Disks  int        `json:"disks"`
	Target PegLabel   `json:"target"`
	Pegs   []PegState `json:"pegs"`
}

// Peg returns the state for label.
func (b *Board) Peg(label PegLabel) (PegState, bool) {
	for _, p := range b.Pegs {
		if p.Label == label {
			return p, true
		}
	}
	return PegState{}, false
}

// Hint suggests the next move toward the target peg.
type Hint struct {
	Move      Move   `json:"move"`
	Remaining uint64 `json:"remaining"`
	Message   string `json:"message,omitempty"`
}

// Conflict marks the step at which a replayed move sequence went wrong.
type Conflict struct {
	Step int       `json:"step"`
	Move Move      `json:"move"`
	Kind ErrorKind `json:"kind"`
}
