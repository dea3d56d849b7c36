package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const maxLogLines = 200

// LogPane displays chat traffic and protocol diagnostics. It satisfies
// the session's ChatLog interface. Append must run on the UI thread;
// callers off it wrap with fyne.Do.
type LogPane struct {
	lines  []string
	label  *widget.Label
	scroll *container.Scroll
}

func NewLogPane() *LogPane {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(label)
	scroll.SetMinSize(fyne.NewSize(0, 120))
	return &LogPane{label: label, scroll: scroll}
}

func (l *LogPane) Object() fyne.CanvasObject { return l.scroll }

func (l *LogPane) Append(direction, text, tag string) {
	line := fmt.Sprintf("[%s] %s: %s", direction, tag, text)
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
	l.label.SetText(strings.Join(l.lines, "\n"))
	l.scroll.ScrollToBottom()
}
