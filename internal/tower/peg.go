package tower

import "svw.info/hanoi/internal/domain"

// Peg is a LIFO stack of disks. The top is the end of the slice.
// Ordering is not enforced by Push; use Transfer for rule-checked moves.
type Peg struct {
	disks []domain.Disk
}

// NewPeg returns a peg holding disks n..1, largest at the bottom.
func NewPeg(n int) *Peg {
	p := &Peg{disks: make([]domain.Disk, 0, max(n, 0))}
	for d := n; d >= 1; d-- {
		p.disks = append(p.disks, domain.Disk(d))
	}
	return p
}

func (p *Peg) IsEmpty() bool { return len(p.disks) == 0 }

func (p *Peg) Size() int { return len(p.disks) }

// Peek returns the top disk without removing it.
func (p *Peg) Peek() (domain.Disk, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	return p.disks[len(p.disks)-1], true
}

func (p *Peg) Push(d domain.Disk) {
	p.disks = append(p.disks, d)
}

// Pop removes and returns the top disk.
func (p *Peg) Pop() (domain.Disk, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	last := len(p.disks) - 1
	d := p.disks[last]
	p.disks = p.disks[:last]
	return d, true
}

// Disks returns a copy of the contents, bottom to top.
func (p *Peg) Disks() []domain.Disk {
	out := make([]domain.Disk, len(p.disks))
	copy(out, p.disks)
	return out
}

// CanStack reports whether the top disk of from may be placed on to.
// An empty destination accepts any disk; an empty origin has nothing to place.
func CanStack(from, to *Peg) bool {
	top, ok := from.Peek()
	if !ok {
		return false
	}
	dst, ok := to.Peek()
	return !ok || top < dst
}

// Transfer moves the top disk of from onto to. On error neither peg changes.
func Transfer(from, to *Peg) error {
	if from.IsEmpty() {
		return domain.ErrEmptyOrigin
	}
	if !CanStack(from, to) {
		return domain.ErrIllegalStack
	}
	d, _ := from.Pop()
	to.Push(d)
	return nil
}
