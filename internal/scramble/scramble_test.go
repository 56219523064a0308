package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxncube"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, err := New(4, 99)
	require.NoError(t, err)
	b, err := New(4, 99)
	require.NoError(t, err)

	assert.Equal(t, a.Moves(40), b.Moves(40))
}

func TestMovesStayInRangeAndNeverUndoThePrevious(t *testing.T) {
	g, err := New(3, 1)
	require.NoError(t, err)

	moves := g.Moves(500)
	require.Len(t, moves, 500)
	for i, m := range moves {
		assert.GreaterOrEqual(t, m.Layer, 0)
		assert.Less(t, m.Layer, 3)
		assert.Contains(t, []nxncube.Direction{nxncube.CW, nxncube.CCW}, m.Dir)
		if i > 0 {
			assert.NotEqual(t, moves[i-1].Inverse(), m, "move %d undoes move %d", i, i-1)
		}
	}
}

func TestApplyThenInverseSolves(t *testing.T) {
	g, err := New(5, 2024)
	require.NoError(t, err)

	c := nxncube.MustNew(5)
	moves, err := g.Apply(c, 60)
	require.NoError(t, err)
	assert.False(t, c.IsSolved())

	require.NoError(t, c.Apply(nxncube.InverseSequence(moves)...))
	assert.True(t, c.IsSolved())
}

func TestApplyRejectsSizeMismatch(t *testing.T) {
	g, err := New(3, 0)
	require.NoError(t, err)

	c := nxncube.MustNew(4)
	_, err = g.Apply(c, 5)
	require.Error(t, err)
	assert.True(t, c.IsSolved())
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(0, 0)
	assert.ErrorIs(t, err, nxncube.ErrBadShape)
}

func TestNegativeCount(t *testing.T) {
	g, err := New(3, 1)
	require.NoError(t, err)

	assert.Empty(t, g.Moves(-5))

	c := nxncube.MustNew(3)
	_, err = g.Apply(c, -5)
	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.True(t, c.IsSolved())
}
