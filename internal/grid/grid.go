package grid

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrOutOfBounds       = errors.New("grid: cell out of bounds")
	ErrDimensionMismatch = errors.New("grid: snapshot dimensions do not match grid")
	ErrSizeMismatch      = errors.New("grid: snapshot pixel data size mismatch")
)

// Cell addresses one unit of the pixel canvas.
type Cell struct {
	Col, Row int
}

// RGB is one cell's color.
type RGB struct {
	R, G, B uint8
}

// Store is the authoritative local cache of cell colors. Absent cells
// render as background. It is mutated only on behalf of inbound server
// updates; local clicks never touch it directly.
//
// The websocket read pump and the UI thread both reach the store, so all
// access goes through the lock.
type Store struct {
	cols, rows int

	mu    sync.RWMutex
	cells map[Cell]RGB
}

func NewStore(cols, rows int) *Store {
	return &Store{
		cols:  cols,
		rows:  rows,
		cells: make(map[Cell]RGB),
	}
}

func (s *Store) Cols() int { return s.cols }
func (s *Store) Rows() int { return s.rows }

// SetCell records one cell's color. Out-of-bounds coordinates leave the
// store untouched and report ErrOutOfBounds; callers drop the update and
// carry on.
func (s *Store) SetCell(col, row int, c RGB) error {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, col, row, s.cols, s.rows)
	}
	s.mu.Lock()
	s.cells[Cell{Col: col, Row: row}] = c
	s.mu.Unlock()
	return nil
}

// Get returns a cell's stored color, reporting whether one is present.
func (s *Store) Get(col, row int) (RGB, bool) {
	s.mu.RLock()
	c, ok := s.cells[Cell{Col: col, Row: row}]
	s.mu.RUnlock()
	return c, ok
}

// Len reports how many cells currently hold a color.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.cells)
	s.mu.RUnlock()
	return n
}

// Clear drops every stored cell.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cells = make(map[Cell]RGB)
	s.mu.Unlock()
}

// ReplaceFrame swaps the entire grid contents for a full-frame snapshot.
// pixels is row-major RGB data, three bytes per cell. The snapshot replaces
// existing state, it never merges. A rejected snapshot leaves prior state
// untouched.
func (s *Store) ReplaceFrame(width, height int, pixels []byte) error {
	if width != s.cols || height != s.rows {
		return fmt.Errorf("%w: snapshot %dx%d, grid %dx%d", ErrDimensionMismatch, width, height, s.cols, s.rows)
	}
	if len(pixels) != width*height*3 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(pixels), width*height*3)
	}

	next := make(map[Cell]RGB, width*height)
	i := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			next[Cell{Col: col, Row: row}] = RGB{R: pixels[i], G: pixels[i+1], B: pixels[i+2]}
			i += 3
		}
	}

	s.mu.Lock()
	s.cells = next
	s.mu.Unlock()
	return nil
}

// Range calls fn for every stored cell. Iteration order is unspecified.
func (s *Store) Range(fn func(Cell, RGB)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for cell, c := range s.cells {
		fn(cell, c)
	}
}
