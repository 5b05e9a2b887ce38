package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/game"
)

func TestBoardLayout(t *testing.T) {
	g, err := game.New(3)
	require.NoError(t, err)
	require.NoError(t, g.Move("1", "3"))

	lines := strings.Split(Board(g.Board()), "\n")
	require.Len(t, lines, 4, "three disk rows plus the base")
	assert.Contains(t, lines[0], "-")
	assert.Contains(t, lines[1], "2")
	assert.Contains(t, lines[2], "3")
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[3], "[- 1 -]")
	assert.Contains(t, lines[3], "[- 3 -]")
}

func TestWriteMoves(t *testing.T) {
	var buf bytes.Buffer
	moves := []domain.Move{{From: "1", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "3"}}
	require.NoError(t, WriteMoves(&buf, moves))
	assert.Equal(t, "1) Move from peg 1 to peg 2.\n2) Move from peg 1 to peg 3.\n3) Move from peg 2 to peg 3.\n", buf.String())
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, "00:00", Elapsed(0))
	assert.Equal(t, "00:09", Elapsed(9*time.Second+900*time.Millisecond))
	assert.Equal(t, "02:05", Elapsed(125*time.Second))
	assert.Equal(t, "61:01", Elapsed(time.Hour+61*time.Second))
	assert.Equal(t, "00:00", Elapsed(-time.Second))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "7", Count(7))
	assert.Equal(t, "1,048,575", Count(uint64(1<<20-1)))
}

func TestMoveErrorMessage(t *testing.T) {
	assert.Equal(t, "There is no disk to move.", MoveErrorMessage(domain.NewMoveError(domain.EmptyOrigin, "3", "1")))
	assert.Equal(t, "You can't place a disk on top of a smaller one.", MoveErrorMessage(domain.ErrIllegalStack))
	assert.Equal(t, "Please enter two unique digits from 1-3.", MoveErrorMessage(domain.ErrInvalidInput))
}

func TestSummary(t *testing.T) {
	s := Summary(3, 9, 7, 75*time.Second)
	assert.Contains(t, s, "Time: 01:15")
	assert.Contains(t, s, "(3 disks) in 9 moves!")
	assert.Contains(t, s, "for 3 disks is 7.")
}
