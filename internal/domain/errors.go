package domain

import "fmt"

// MoveError reports a rejected move. State is never changed when one is returned.
type MoveError struct {
	Kind   ErrorKind
	Origin PegLabel
	Dest   PegLabel
}

var (
	ErrInvalidInput = &MoveError{Kind: InvalidInput}
	ErrEmptyOrigin  = &MoveError{Kind: EmptyOrigin}
	ErrIllegalStack = &MoveError{Kind: IllegalStack}
)

func (e *MoveError) Error() string {
	if e.Origin == "" && e.Dest == "" {
		return "move rejected: " + e.Kind.String()
	}
	return fmt.Sprintf("move %q -> %q rejected: %s", e.Origin, e.Dest, e.Kind)
}

// Is matches any MoveError of the same kind, so errors.Is works against the sentinels.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	return ok && t.Kind == e.Kind
}

// NewMoveError builds a MoveError for a concrete pair of labels.
func NewMoveError(kind ErrorKind, origin, dest PegLabel) *MoveError {
	return &MoveError{Kind: kind, Origin: origin, Dest: dest}
}
