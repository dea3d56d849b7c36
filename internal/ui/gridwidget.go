package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/armedev/game-of-life/internal/input"
)

// GridWidget is the interactive pixel canvas. It owns no state beyond
// its surface; pointer events are forwarded to the input controller,
// which decides what they mean.
type GridWidget struct {
	widget.BaseWidget
	surface    *Surface
	controller *input.Controller
}

var _ fyne.Widget = (*GridWidget)(nil)
var _ fyne.Draggable = (*GridWidget)(nil)
var _ desktop.Mouseable = (*GridWidget)(nil)
var _ desktop.Hoverable = (*GridWidget)(nil)

func NewGridWidget(surface *Surface, controller *input.Controller) *GridWidget {
	g := &GridWidget{surface: surface, controller: controller}
	g.ExtendBaseWidget(g)
	return g
}

func (g *GridWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.surface.Raster())
}

func (g *GridWidget) MinSize() fyne.Size {
	return fyne.NewSize(float32(g.surface.PixelWidth()), float32(g.surface.PixelHeight()))
}

func (g *GridWidget) forward(pos fyne.Position, fn func(x, y, w, h float32)) {
	size := g.Size()
	fn(pos.X, pos.Y, size.Width, size.Height)
}

func (g *GridWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		g.forward(e.Position, g.controller.PointerDown)
	}
}

func (g *GridWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		g.controller.PointerUp()
	}
}

func (g *GridWidget) MouseIn(e *desktop.MouseEvent) {
	g.forward(e.Position, g.controller.PointerMoved)
}

func (g *GridWidget) MouseMoved(e *desktop.MouseEvent) {
	g.forward(e.Position, g.controller.PointerMoved)
}

func (g *GridWidget) MouseOut() {
	g.controller.PointerLeft()
}

// Dragged keeps paint intents flowing while the primary button is held;
// fyne stops delivering MouseMoved during a drag.
func (g *GridWidget) Dragged(e *fyne.DragEvent) {
	g.forward(e.Position, g.controller.PointerMoved)
}

func (g *GridWidget) DragEnd() {
	g.controller.PointerUp()
}
