package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armedev/game-of-life/internal/grid"
)

// A 40x40 grid displayed at 400x400: each cell is 10x10 on screen.
const surfaceSize = 400

func newTestController() (*Controller, *[]grid.Cell) {
	c := NewController(40, 40)
	var painted []grid.Cell
	c.OnPaint = func(cell grid.Cell) { painted = append(painted, cell) }
	return c, &painted
}

// center returns screen coordinates in the middle of a cell.
func center(col, row int) (float32, float32) {
	return float32(col)*10 + 5, float32(row)*10 + 5
}

func TestPointerDownEmitsImmediately(t *testing.T) {
	c, painted := newTestController()
	x, y := center(2, 2)
	c.PointerDown(x, y, surfaceSize, surfaceSize)
	require.Equal(t, []grid.Cell{{Col: 2, Row: 2}}, *painted)
}

func TestDragDeduplicatesWithinCell(t *testing.T) {
	c, painted := newTestController()

	x, y := center(2, 2)
	c.PointerDown(x, y, surfaceSize, surfaceSize)
	// Jiggle inside (2,2), cross into (2,3), jiggle there too.
	c.PointerMoved(x+1, y+1, surfaceSize, surfaceSize)
	c.PointerMoved(x+2, y, surfaceSize, surfaceSize)
	x2, y2 := center(2, 3)
	c.PointerMoved(x2, y2, surfaceSize, surfaceSize)
	c.PointerMoved(x2-1, y2+1, surfaceSize, surfaceSize)

	require.Equal(t, []grid.Cell{{Col: 2, Row: 2}, {Col: 2, Row: 3}}, *painted)
}

func TestDragBackIntoPreviousCellEmitsAgain(t *testing.T) {
	c, painted := newTestController()

	x, y := center(2, 2)
	x2, y2 := center(2, 3)
	c.PointerDown(x, y, surfaceSize, surfaceSize)
	c.PointerMoved(x2, y2, surfaceSize, surfaceSize)
	c.PointerMoved(x, y, surfaceSize, surfaceSize)

	// Only same-cell repeats are deduplicated, not revisits.
	require.Equal(t, []grid.Cell{
		{Col: 2, Row: 2}, {Col: 2, Row: 3}, {Col: 2, Row: 2},
	}, *painted)
}

func TestMoveWithoutDragPaintsNothing(t *testing.T) {
	c, painted := newTestController()
	c.PointerMoved(15, 15, surfaceSize, surfaceSize)
	c.PointerMoved(25, 25, surfaceSize, surfaceSize)
	assert.Empty(t, *painted)
}

func TestPointerUpEndsDrag(t *testing.T) {
	c, painted := newTestController()

	x, y := center(1, 1)
	c.PointerDown(x, y, surfaceSize, surfaceSize)
	c.PointerUp()
	assert.Nil(t, c.Hovered(), "pointer-up returns to idle and clears hover")

	x5, y5 := center(5, 5)
	c.PointerMoved(x5, y5, surfaceSize, surfaceSize)
	require.Equal(t, []grid.Cell{{Col: 1, Row: 1}}, *painted)
}

func TestPointerDownOutsideGridIgnored(t *testing.T) {
	c, painted := newTestController()
	c.PointerDown(500, 500, surfaceSize, surfaceSize)
	assert.Empty(t, *painted)
	assert.Nil(t, c.Hovered())
}

func TestHoverTransitions(t *testing.T) {
	c := NewController(40, 40)
	type transition struct{ prev, next *grid.Cell }
	var seen []transition
	c.OnHover = func(prev, next *grid.Cell) {
		seen = append(seen, transition{prev, next})
	}

	x, y := center(0, 0)
	c.PointerMoved(x, y, surfaceSize, surfaceSize)
	c.PointerMoved(x+1, y, surfaceSize, surfaceSize) // same cell, no event
	x2, y2 := center(1, 0)
	c.PointerMoved(x2, y2, surfaceSize, surfaceSize)
	c.PointerLeft()

	require.Len(t, seen, 3)
	assert.Nil(t, seen[0].prev)
	assert.Equal(t, grid.Cell{Col: 0, Row: 0}, *seen[0].next)
	assert.Equal(t, grid.Cell{Col: 0, Row: 0}, *seen[1].prev)
	assert.Equal(t, grid.Cell{Col: 1, Row: 0}, *seen[1].next)
	assert.Equal(t, grid.Cell{Col: 1, Row: 0}, *seen[2].prev)
	assert.Nil(t, seen[2].next)
}

func TestScaledSurfaceResolvesCells(t *testing.T) {
	c, painted := newTestController()
	// Displayed at double size: cell (2,2) spans 40..60 on each axis.
	c.PointerDown(41, 59, 800, 800)
	require.Equal(t, []grid.Cell{{Col: 2, Row: 2}}, *painted)
}
