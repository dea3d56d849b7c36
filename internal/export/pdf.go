// Package export renders the current grid state to a PDF snapshot.
package export

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/armedev/game-of-life/internal/grid"
)

// A4 portrait drawing area in millimeters, minus margins.
const (
	pageW   = 190.0
	pageH   = 270.0
	marginX = 10.0
	marginY = 10.0
)

// PDF writes every stored cell as a filled square, scaled to fit one A4
// page. Empty cells stay the paper color.
func PDF(path string, s *grid.Store) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	cell := pageW / float64(s.Cols())
	if alt := pageH / float64(s.Rows()); alt < cell {
		cell = alt
	}

	s.Range(func(c grid.Cell, rgb grid.RGB) {
		p.SetFillColor(int(rgb.R), int(rgb.G), int(rgb.B))
		p.Rect(
			marginX+float64(c.Col)*cell,
			marginY+float64(c.Row)*cell,
			cell, cell, "F",
		)
	})

	return p.OutputFileAndClose(path)
}
