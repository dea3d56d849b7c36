package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/armedev/game-of-life/internal/grid"
	"github.com/armedev/game-of-life/internal/session"
)

// App is the UI shell around one session: window, toolbar, grid widget,
// and chat/log pane.
type App struct {
	store   *grid.Store
	sess    *session.Session
	gridW   *GridWidget
	logPane *LogPane
	log     *zap.SugaredLogger

	window fyne.Window
	paint  grid.RGB
}

// NewApp builds the window and all its content up front. The fyne app
// must exist before the transport's read pump starts delivering
// messages, so construction happens here and Run only blocks.
func NewApp(fyneApp fyne.App, store *grid.Store, sess *session.Session, gridW *GridWidget, logPane *LogPane, paint grid.RGB, log *zap.SugaredLogger) *App {
	a := &App{
		store:   store,
		sess:    sess,
		gridW:   gridW,
		logPane: logPane,
		paint:   paint,
		log:     log,
	}

	window := fyneApp.NewWindow("Pixel Grid")

	chatEntry := widget.NewEntry()
	chatEntry.SetPlaceHolder("Say something…")
	sendChat := func(text string) {
		if text == "" {
			return
		}
		if err := a.sess.SendChat(text); err != nil {
			a.log.Warnw("chat send failed", "error", err)
			a.logPane.Append(session.DirOut, err.Error(), session.TagError)
			return
		}
		chatEntry.SetText("")
	}
	chatEntry.OnSubmitted = sendChat
	chatRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Send", func() { sendChat(chatEntry.Text) }),
		chatEntry,
	)

	bottom := container.NewVBox(a.logPane.Object(), chatRow)
	content := container.NewBorder(newToolbar(a), bottom, nil, nil, container.NewCenter(a.gridW))
	window.SetContent(content)

	window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		cmd, ok := keyCommands[e.Name]
		if !ok {
			return
		}
		if err := a.sess.Dispatch(cmd); err != nil {
			a.log.Warnw("command failed", "command", cmd.Name(), "error", err)
		}
	})

	a.window = window
	return a
}

// PaintColor is the color the next paint intent will request.
func (a *App) PaintColor() grid.RGB { return a.paint }

func (a *App) SetPaintColor(c grid.RGB) { a.paint = c }

// Window exposes the built window.
func (a *App) Window() fyne.Window { return a.window }

// keyCommands binds shortcut keys to session commands. One table, no
// per-key closures scattered around.
var keyCommands = map[fyne.KeyName]session.Command{
	fyne.KeyN: session.CmdNewGeneration,
	fyne.KeyS: session.CmdAdvanceGeneration,
	fyne.KeyA: session.CmdAwakenRandomCell,
	fyne.KeyK: session.CmdKillRandomCell,
	fyne.KeyX: session.CmdKillAllCells,
	fyne.KeyP: session.CmdNewPainting,
	fyne.KeyM: session.CmdAdvancePainting,
	fyne.KeyR: session.CmdRequestRandomPixel,
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.window.ShowAndRun()
}
