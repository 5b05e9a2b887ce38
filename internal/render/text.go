package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"svw.info/hanoi/internal/domain"
)

var printer = message.NewPrinter(language.English)

// Count formats n with digit grouping, e.g. 1,048,575.
func Count[T ~int | ~uint64](n T) string {
	return printer.Sprintf("%d", n)
}

// Elapsed formats d as MM:SS; minutes keep counting past the hour.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// WriteMoves writes a numbered list: "1) Move from peg 1 to peg 3."
func WriteMoves(w io.Writer, moves []domain.Move) error {
	bw := bufio.NewWriter(w)
	for i, m := range moves {
		if _, err := fmt.Fprintf(bw, "%d) %s\n", i+1, m); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Rules is the introduction shown before each game.
func Rules() string {
	return Section("RULES") + `
- There are three pegs with n disks stacked on top of each other.
- Your task is to move all of the disks from peg 1 to peg 3.
- Only one disk (from the top of a tower) can be moved at a time,
  and no disk can be placed on top of a smaller one.
` + Section("INSTRUCTIONS") + `
- Move a disk by entering two unique digits from 1-3,
  where the first digit is the origin peg and the second digit is
  the destination peg.
  Example: to move a disk from peg 1 to peg 3, enter '13'
- Enter '?' for a hint.`
}

// MoveErrorMessage maps a rejected move to the message shown to players.
func MoveErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please enter two unique digits from 1-3."
	case errors.Is(err, domain.ErrEmptyOrigin):
		return "There is no disk to move."
	case errors.Is(err, domain.ErrIllegalStack):
		return "You can't place a disk on top of a smaller one."
	default:
		return err.Error()
	}
}

// Summary is the closing report for a solved game.
func Summary(disks, moves int, minimum uint64, took time.Duration) string {
	return fmt.Sprintf("%s\nTime: %s\nYou beat the Tower of Hanoi (%d disks) in %s moves!\nThe lowest possible # of moves for %d disks is %s.",
		Styles.Success.Render("[ CONGRATULATIONS! ]"),
		Elapsed(took),
		disks, Count(moves),
		disks, Count(minimum),
	)
}
