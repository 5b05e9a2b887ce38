package domain

import "fmt"

// Variant selects the peg count a solver works with.
type Variant int

const (
	ThreePeg Variant = 3
	FourPeg  Variant = 4
)

// ParseVariant maps a peg count to a Variant.
func ParseVariant(pegs int) (Variant, error) {
	switch pegs {
	case 3:
		return ThreePeg, nil
	case 4:
		return FourPeg, nil
	default:
		return 0, fmt.Errorf("unsupported peg count %d: want 3 or 4", pegs)
	}
}

// Pegs reports the number of pegs.
func (v Variant) Pegs() int { return int(v) }

func (v Variant) String() string {
	switch v {
	case ThreePeg:
		return "3-peg"
	case FourPeg:
		return "4-peg"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ErrorKind classifies a rejected move.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota + 1 // malformed, duplicate or unknown peg labels
	EmptyOrigin                       // no disk on the origin peg
	IllegalStack                      // larger disk onto a smaller one
	Unsolved                          // replay finished with disks off the target peg
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case EmptyOrigin:
		return "empty_origin"
	case IllegalStack:
		return "illegal_stack"
	case Unsolved:
		return "unsolved"
	default:
		return "unknown"
	}
}

// MarshalText lets kinds serialize by name.
func (k ErrorKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
