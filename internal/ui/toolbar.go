package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/armedev/game-of-life/internal/export"
	"github.com/armedev/game-of-life/internal/grid"
	"github.com/armedev/game-of-life/internal/session"
)

// colorSwatch is a clickable paint-color square.
type colorSwatch struct {
	widget.BaseWidget
	Color    grid.RGB
	OnTapped func(grid.RGB)
}

func newColorSwatch(c grid.RGB, tapped func(grid.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.RGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255})
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newToolbar assembles the command buttons and the paint palette. Each
// button goes through the session's command table; nothing here knows
// wire codes.
func newToolbar(a *App) fyne.CanvasObject {
	cmdButton := func(label string, cmd session.Command) *widget.Button {
		return widget.NewButton(label, func() {
			if err := a.sess.Dispatch(cmd); err != nil {
				a.log.Warnw("command failed", "command", cmd.Name(), "error", err)
				a.logPane.Append(session.DirOut, err.Error(), session.TagError)
			}
		})
	}

	life := container.NewHBox(
		cmdButton("New Gen", session.CmdNewGeneration),
		cmdButton("Step", session.CmdAdvanceGeneration),
		cmdButton("Awaken", session.CmdAwakenRandomCell),
		cmdButton("Kill One", session.CmdKillRandomCell),
		cmdButton("Kill All", session.CmdKillAllCells),
	)
	painting := container.NewHBox(
		cmdButton("New Painting", session.CmdNewPainting),
		cmdButton("Advance", session.CmdAdvancePainting),
		cmdButton("Random Pixel", session.CmdRequestRandomPixel),
	)

	palette := container.NewHBox()
	for _, c := range []grid.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 0},
		{R: 255, G: 255, B: 255}, // eraser: paints the dead-cell color
	} {
		palette.Add(newColorSwatch(c, a.SetPaintColor))
	}

	local := container.NewHBox(
		widget.NewButton("Clear View", a.sess.ClearLocal),
		widget.NewButton("Export PDF", func() {
			path := time.Now().Format("grid-20060102-150405.pdf")
			if err := export.PDF(path, a.store); err != nil {
				a.log.Warnw("pdf export failed", "error", err)
				a.logPane.Append(session.DirOut, err.Error(), session.TagError)
				return
			}
			a.logPane.Append(session.DirOut, "exported "+path, "export")
		}),
	)

	return container.NewHBox(
		life,
		widget.NewSeparator(),
		painting,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		palette,
		widget.NewSeparator(),
		local,
		layout.NewSpacer(),
	)
}
