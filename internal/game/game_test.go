package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
)

func TestNew_StartsOnLeftPeg(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, []domain.Disk{3, 2, 1}, g.PegContents(Left))
	assert.Empty(t, g.PegContents(Middle))
	assert.Empty(t, g.PegContents(Right))
	assert.Equal(t, 0, g.MoveCount())
	assert.False(t, g.IsSolved())
	assert.Len(t, g.ID(), 8)
}

func TestNew_RejectsZeroDisks(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidDisks)
}

func TestMove_EmptyOrigin(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	err = g.Move("3", "1")
	assert.ErrorIs(t, err, domain.ErrEmptyOrigin)
	assert.Equal(t, 0, g.MoveCount(), "rejected move must not count")
}

func TestMove_IllegalStack(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	require.NoError(t, g.Move("1", "2"))
	err = g.Move("1", "2")
	assert.ErrorIs(t, err, domain.ErrIllegalStack)

	assert.Equal(t, 1, g.MoveCount())
	assert.Equal(t, []domain.Disk{2}, g.PegContents(Left))
	assert.Equal(t, []domain.Disk{1}, g.PegContents(Middle))
}

func TestMove_InvalidInput(t *testing.T) {
	cases := []struct {
		name         string
		origin, dest domain.PegLabel
	}{
		{"same peg", "1", "1"},
		{"unknown origin", "4", "2"},
		{"unknown destination", "1", "9"},
		{"empty labels", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(3)
			require.NoError(t, err)

			err = g.Move(tc.origin, tc.dest)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, []domain.Disk{3, 2, 1}, g.PegContents(Left))
			assert.Equal(t, 0, g.MoveCount())
		})
	}
}

func TestMove_ErrorCarriesLabels(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	err = g.Move("2", "3")
	var me *domain.MoveError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, domain.EmptyOrigin, me.Kind)
	assert.Equal(t, domain.PegLabel("2"), me.Origin)
	assert.Equal(t, domain.PegLabel("3"), me.Dest)
}

func TestReplayOptimalSolution(t *testing.T) {
	for n := 1; n <= 8; n++ {
		g, err := New(n)
		require.NoError(t, err)

		for i, m := range solver.Solve3(n, Left, Right, Middle) {
			require.NoErrorf(t, g.Move(m.From, m.To), "n=%d step %d", n, i+1)
		}
		assert.Truef(t, g.IsSolved(), "n=%d not solved", n)
		assert.EqualValues(t, g.MinimumMoves(), g.MoveCount())
	}
}

func TestMinimumMovesIndependentOfHistory(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	assert.EqualValues(t, 15, g.MinimumMoves())

	require.NoError(t, g.Move("1", "2"))
	require.NoError(t, g.Move("2", "3"))
	_ = g.Move("1", "3")
	assert.EqualValues(t, 15, g.MinimumMoves())
}

func TestTotalDisksConserved(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	attempts := []string{"13", "12", "32", "13", "21", "23", "13", "31", "11", "22"}
	for _, a := range attempts {
		m, err := ParseMove(a)
		if err == nil {
			_ = g.Move(m.From, m.To)
		}
		total := 0
		for _, l := range g.Labels() {
			total += len(g.PegContents(l))
		}
		assert.Equal(t, 5, total)
	}
}

func TestBoardSnapshot(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	require.NoError(t, g.Move("1", "3"))

	b := g.Board()
	assert.Equal(t, 2, b.Disks)
	assert.Equal(t, Right, b.Target)
	require.Len(t, b.Pegs, 3)
	assert.Equal(t, []domain.Disk{2}, b.Pegs[0].Disks)
	assert.Equal(t, []domain.Disk{1}, b.Pegs[2].Disks)

	b.Pegs[0].Disks[0] = 7
	assert.Equal(t, []domain.Disk{2}, g.PegContents(Left), "snapshot must not alias game state")
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" 13\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Move{From: "1", To: "3"}, m)

	for _, in := range []string{"", "1", "11", "123", "1 3"} {
		_, err := ParseMove(in)
		assert.ErrorIsf(t, err, domain.ErrInvalidInput, "input %q", in)
	}
}
