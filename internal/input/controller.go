// Package input tracks pointer hover and drag state over the grid and
// turns pointer events into paint intents. It never touches the grid
// store and never interprets protocol codes; intents are opaque
// (col,row) pairs handed to the session.
package input

import "github.com/armedev/game-of-life/internal/grid"

// Controller is the pointer state machine: Idle -> Hovering -> Dragging.
// Callbacks fire synchronously from the event that caused them.
type Controller struct {
	cols, rows int

	hovered  *grid.Cell
	dragging bool
	lastSent *grid.Cell

	// OnPaint receives one intent per distinct cell while dragging.
	OnPaint func(grid.Cell)
	// OnHover fires whenever the hovered cell changes, including
	// transitions from or to no cell at all. prev and next may be nil.
	OnHover func(prev, next *grid.Cell)
}

func NewController(cols, rows int) *Controller {
	return &Controller{cols: cols, rows: rows}
}

// resolve maps a pointer position inside a w x h surface to a cell,
// scaling for whatever size the surface is displayed at.
func (c *Controller) resolve(x, y, w, h float32) (grid.Cell, bool) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 {
		return grid.Cell{}, false
	}
	col := int(x / (w / float32(c.cols)))
	row := int(y / (h / float32(c.rows)))
	if col >= c.cols || row >= c.rows {
		return grid.Cell{}, false
	}
	return grid.Cell{Col: col, Row: row}, true
}

// PointerDown starts a drag and immediately emits one paint intent for
// the pressed cell. Presses outside the grid are ignored.
func (c *Controller) PointerDown(x, y, w, h float32) {
	cell, ok := c.resolve(x, y, w, h)
	if !ok {
		return
	}
	c.dragging = true
	c.setHovered(&cell)
	c.emit(cell)
}

// PointerMoved updates the hover highlight on every cell change and,
// while dragging, emits a paint intent when the pointer enters a cell
// other than the last one painted. Repeated events inside the same cell
// are deduplicated.
func (c *Controller) PointerMoved(x, y, w, h float32) {
	cell, ok := c.resolve(x, y, w, h)
	if !ok {
		c.setHovered(nil)
		return
	}
	c.setHovered(&cell)
	if c.dragging && (c.lastSent == nil || *c.lastSent != cell) {
		c.emit(cell)
	}
}

// PointerUp ends the drag and returns to Idle, clearing the hover
// highlight.
func (c *Controller) PointerUp() {
	c.dragging = false
	c.lastSent = nil
	c.setHovered(nil)
}

// PointerLeft handles the pointer leaving the surface entirely.
func (c *Controller) PointerLeft() {
	c.dragging = false
	c.lastSent = nil
	c.setHovered(nil)
}

// Hovered exposes the current hover cell, nil when the pointer is off
// the grid.
func (c *Controller) Hovered() *grid.Cell {
	return c.hovered
}

func (c *Controller) emit(cell grid.Cell) {
	sent := cell
	c.lastSent = &sent
	if c.OnPaint != nil {
		c.OnPaint(cell)
	}
}

func (c *Controller) setHovered(next *grid.Cell) {
	prev := c.hovered
	if prev == nil && next == nil {
		return
	}
	if prev != nil && next != nil && *prev == *next {
		return
	}
	if next != nil {
		cp := *next
		next = &cp
	}
	c.hovered = next
	if c.OnHover != nil {
		c.OnHover(prev, next)
	}
}
