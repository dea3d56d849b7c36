package ui

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2/canvas"

	"github.com/armedev/game-of-life/internal/grid"
)

// background matches the server's dead-cell color.
var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// hoverTint is blended half-and-half over a cell's true color for the
// hover highlight.
var hoverTint = color.RGBA{R: 100, G: 150, B: 255, A: 255}

// Surface rasterizes grid store state into an image backing a fyne
// canvas object. It holds no protocol state: everything it paints comes
// from the store or from explicit draw calls.
type Surface struct {
	store    *grid.Store
	cellSize int
	img      *image.RGBA
	raster   *canvas.Raster
}

func NewSurface(store *grid.Store, cellSize int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, store.Cols()*cellSize, store.Rows()*cellSize))
	s := &Surface{
		store:    store,
		cellSize: cellSize,
		img:      img,
	}
	s.raster = canvas.NewRasterFromImage(img)
	s.raster.ScaleMode = canvas.ImageScalePixels
	s.fill(background)
	return s
}

// Raster is the drawable canvas object, scaled by the widget.
func (s *Surface) Raster() *canvas.Raster { return s.raster }

// PixelWidth and PixelHeight are the raster's native dimensions.
func (s *Surface) PixelWidth() int  { return s.store.Cols() * s.cellSize }
func (s *Surface) PixelHeight() int { return s.store.Rows() * s.cellSize }

// DrawCell paints one cell's rectangle.
func (s *Surface) DrawCell(col, row int, c grid.RGB) {
	s.fillCell(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	canvas.Refresh(s.raster)
}

// DrawAll clears the raster and repaints every stored cell.
func (s *Surface) DrawAll() {
	s.fill(background)
	s.store.Range(func(cell grid.Cell, c grid.RGB) {
		s.fillCell(cell.Col, cell.Row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	})
	canvas.Refresh(s.raster)
}

// DrawHover overlays the hover highlight on one cell, blending with
// whatever the store holds there.
func (s *Surface) DrawHover(col, row int) {
	base := s.baseColor(col, row)
	s.fillCell(col, row, blend(base, hoverTint))
	canvas.Refresh(s.raster)
}

// ClearHover restores a cell to its true stored color. It always reads
// through to the store, never assumes the cell was blank.
func (s *Surface) ClearHover(col, row int) {
	s.fillCell(col, row, s.baseColor(col, row))
	canvas.Refresh(s.raster)
}

func (s *Surface) baseColor(col, row int) color.RGBA {
	if c, ok := s.store.Get(col, row); ok {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return background
}

func (s *Surface) fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (s *Surface) fillCell(col, row int, c color.RGBA) {
	if col < 0 || col >= s.store.Cols() || row < 0 || row >= s.store.Rows() {
		return
	}
	rect := image.Rect(
		col*s.cellSize, row*s.cellSize,
		(col+1)*s.cellSize, (row+1)*s.cellSize,
	)
	draw.Draw(s.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 255,
	}
}
