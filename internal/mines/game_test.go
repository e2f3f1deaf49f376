package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withValues(l Layer, values map[Coordinates]uint8) Layer {
	c := l.Clone()
	for p, v := range values {
		c[p.Y][p.X] = v
	}
	return c
}

var dims3x3 = Dimensions{3, 3}

// cornerMine is a 3x3 field with a single mine in the top left corner.
func cornerMine() *GameGrids {
	return &GameGrids{
		Mine: withValues(NewLayer(dims3x3, 0), map[Coordinates]uint8{{0, 0}: 1}),
		Flag: NewLayer(dims3x3, 0),
		MineCount: withValues(NewLayer(dims3x3, 0), map[Coordinates]uint8{
			{0, 0}: 9, {0, 1}: 1, {1, 0}: 1, {1, 1}: 1,
		}),
		Cover: NewLayer(dims3x3, 1),
	}
}

func TestHandleClickToggleFlag(t *testing.T) {
	g := &GameGrids{
		Mine:      NewLayer(dims3x3, 0),
		Flag:      NewLayer(dims3x3, 0),
		MineCount: NewLayer(dims3x3, 0),
		Cover:     NewLayer(dims3x3, 1),
	}
	before := g.Clone()

	on, err := HandleClick(g, Coordinates{1, 1}, true, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, on.Flag)
	assert.Equal(t, g.Cover, on.Cover)
	assert.Equal(t, g.Mine, on.Mine)
	assert.Equal(t, g.MineCount, on.MineCount)
	assert.Equal(t, before, g, "input must not change")

	on.Cover[0][0] = 0
	assert.Equal(t, uint8(1), g.Cover[0][0], "layers must not be shared")
	on.Cover[0][0] = 1

	off, err := HandleClick(on, Coordinates{1, 1}, true, false)
	require.NoError(t, err)
	assert.Equal(t, NewLayer(dims3x3, 0), off.Flag)
	assert.Equal(t, Layer{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, on.Flag)
}

func TestHandleClickFlagUncovered(t *testing.T) {
	g := &GameGrids{
		Mine:      NewLayer(dims3x3, 0),
		Flag:      NewLayer(dims3x3, 0),
		MineCount: NewLayer(dims3x3, 0),
		Cover:     withValues(NewLayer(dims3x3, 1), map[Coordinates]uint8{{1, 1}: 0}),
	}

	next, err := HandleClick(g, Coordinates{1, 1}, true, false)
	assert.ErrorIs(t, err, ErrFieldIsNotCovered)
	assert.Nil(t, next)
}

func TestHandleClickRevealNumber(t *testing.T) {
	g := cornerMine()

	g1, err := HandleClick(g, Coordinates{1, 1}, false, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, g1.Cover)

	g2, err := HandleClick(g1, Coordinates{1, 0}, false, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{1, 0, 1}, {1, 0, 1}, {1, 1, 1}}, g2.Cover)

	g3, err := HandleClick(g2, Coordinates{0, 1}, false, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{1, 0, 1}, {0, 0, 1}, {1, 1, 1}}, g3.Cover)

	assert.Equal(t, NewLayer(dims3x3, 1), g.Cover)
}

func TestHandleClickFloodFill(t *testing.T) {
	next, err := HandleClick(cornerMine(), Coordinates{2, 2}, false, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}, next.Cover)
}

func TestHandleClickFloodFillKeepsFlags(t *testing.T) {
	g := cornerMine()
	g.Flag = withValues(g.Flag, map[Coordinates]uint8{{2, 0}: 1, {1, 1}: 1})

	next, err := HandleClick(g, Coordinates{2, 2}, false, false)
	require.NoError(t, err)
	assert.Equal(t, Layer{{1, 0, 1}, {0, 1, 0}, {0, 0, 0}}, next.Cover)
	assert.Equal(t, g.Flag, next.Flag)
}

func TestHandleClickFloodFillLargeRegion(t *testing.T) {
	dims := Dimensions{200, 200}
	g := NewIdleGrids(dims)

	next, err := HandleClick(g, Coordinates{100, 100}, false, false)
	require.NoError(t, err)
	assert.Zero(t, next.Cover.Count())
}

func TestHandleClickFlagged(t *testing.T) {
	g := cornerMine()
	g.Flag = withValues(g.Flag, map[Coordinates]uint8{{1, 1}: 1})

	_, err := HandleClick(g, Coordinates{1, 1}, false, false)
	assert.ErrorIs(t, err, ErrFieldIsFlaggedField)

	unflagged, err := HandleClick(g, Coordinates{1, 1}, true, false)
	require.NoError(t, err)

	_, err = HandleClick(unflagged, Coordinates{1, 1}, false, false)
	assert.NoError(t, err)
}

func TestHandleClickMine(t *testing.T) {
	g := cornerMine()
	g.Flag = withValues(g.Flag, map[Coordinates]uint8{{1, 1}: 1})

	next, err := HandleClick(g, Coordinates{0, 0}, false, false)
	assert.ErrorIs(t, err, ErrFieldIsMineField)
	assert.Nil(t, next)
}

// chordGrids has a mine in the top left corner, the number at 1:1 revealed
// and one flag placed.
func chordGrids(flag Coordinates) *GameGrids {
	mine := withValues(NewLayer(dims3x3, 0), map[Coordinates]uint8{{0, 0}: 1})
	return &GameGrids{
		Mine:      mine,
		Flag:      withValues(NewLayer(dims3x3, 0), map[Coordinates]uint8{flag: 1}),
		MineCount: countMines(mine),
		Cover:     withValues(NewLayer(dims3x3, 1), map[Coordinates]uint8{{1, 1}: 0}),
	}
}

func TestChordGridsAreConsistent(t *testing.T) {
	g := chordGrids(Coordinates{0, 0})
	require.NoError(t, Validate(g))
	assert.Equal(t, Layer{{9, 1, 0}, {1, 1, 0}, {0, 0, 0}}, g.MineCount)
}

func TestHandleClickChord(t *testing.T) {
	next, err := HandleClick(chordGrids(Coordinates{0, 0}), Coordinates{1, 1}, false, false)
	require.NoError(t, err)
	// 2:0 has no adjacent mines, so opening it floods the rest of the field
	assert.Equal(t, Layer{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}, next.Cover)
	assert.Equal(t, Layer{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}, next.Flag)
}

func TestHandleClickChordOnMine(t *testing.T) {
	g := chordGrids(Coordinates{0, 2})
	before := g.Clone()

	next, err := HandleClick(g, Coordinates{1, 1}, false, false)
	assert.ErrorIs(t, err, ErrFieldIsMineField)
	assert.Nil(t, next)
	assert.Equal(t, before, g)
}

func TestHandleClickChordMissingFlags(t *testing.T) {
	g := chordGrids(Coordinates{0, 0})
	g.Flag = NewLayer(dims3x3, 0)

	next, err := HandleClick(g, Coordinates{1, 1}, false, false)
	require.NoError(t, err)
	assert.Equal(t, g, next)
	assert.NotSame(t, g, next)
}

func TestHandleClickInvalidGrids(t *testing.T) {
	g := NewIdleGrids(Dimensions{4, 4})
	g.Flag = nil

	_, err := HandleClick(g, Coordinates{0, 0}, false, false)
	var ige InvalidGridsError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, MissingGrid, ige.Reason)
	assert.ErrorIs(t, err, ErrInvalidGameGrids)

	_, err = HandleClick(nil, Coordinates{0, 0}, false, true)
	assert.ErrorIs(t, err, ErrInvalidGameGrids)
}

func TestHandleClickSkipValidityCheck(t *testing.T) {
	g := NewIdleGrids(dims3x3)
	g.Flag[2][2] = 5

	_, err := HandleClick(g, Coordinates{0, 0}, true, false)
	assert.ErrorIs(t, err, ErrInvalidGameGrids)

	next, err := HandleClick(g, Coordinates{0, 0}, true, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), next.Flag[0][0])
}

func TestHandleClickOutOfBounds(t *testing.T) {
	g := NewIdleGrids(dims3x3)
	for _, c := range []Coordinates{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := HandleClick(g, c, false, false)
		assert.ErrorIs(t, err, ErrPointOutOfBounds, "click %s", c)
	}
}
