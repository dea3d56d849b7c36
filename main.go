package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/armedev/game-of-life/internal/config"
	"github.com/armedev/game-of-life/internal/discovery"
	"github.com/armedev/game-of-life/internal/grid"
	"github.com/armedev/game-of-life/internal/input"
	"github.com/armedev/game-of-life/internal/session"
	"github.com/armedev/game-of-life/internal/transport"
	"github.com/armedev/game-of-life/internal/ui"
)

func main() {
	configPath := flag.String("config", "pixelgrid.toml", "path to the TOML config file")
	serverURL := flag.String("server", "", "websocket server URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	if err := run(cfg, log); err != nil {
		log.Fatalw("client failed", "error", err)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	url := cfg.ServerURL
	if cfg.Discover || url == "" {
		if found, err := discovery.Lookup(); err == nil {
			log.Infow("discovered server", "url", found)
			url = found
		} else if url == "" {
			return err
		} else {
			log.Infow("discovery failed, using configured URL", "error", err)
		}
	}

	store := grid.NewStore(cfg.Grid.Cols, cfg.Grid.Rows)
	surface := ui.NewSurface(store, cfg.Grid.CellSize)
	controller := input.NewController(cfg.Grid.Cols, cfg.Grid.Rows)
	logPane := ui.NewLogPane()

	conn, err := transport.Dial(url, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	sess := session.New(store, surface, conn, logPane, log)
	gridW := ui.NewGridWidget(surface, controller)

	// The fyne app must exist before the read pump starts: inbound
	// messages are marshalled onto the UI thread with fyne.Do, which
	// needs a current app. A localhost server can echo the hello
	// before ShowAndRun would otherwise get there.
	fyneApp := app.New()
	appUI := ui.NewApp(fyneApp, store, sess, gridW, logPane, grid.RGB{
		R: cfg.Paint.R, G: cfg.Paint.G, B: cfg.Paint.B,
	}, log)

	controller.OnPaint = func(cell grid.Cell) {
		if err := sess.PaintCell(cell.Col, cell.Row, appUI.PaintColor()); err != nil {
			log.Warnw("paint intent failed", "cell", cell, "error", err)
		}
	}
	controller.OnHover = func(prev, next *grid.Cell) {
		if prev != nil {
			surface.ClearHover(prev.Col, prev.Row)
		}
		if next != nil {
			surface.DrawHover(next.Col, next.Row)
		}
	}

	// The read pump runs off the UI thread; marshal everything it
	// triggers back onto it.
	conn.Start(
		func(data []byte) {
			fyne.Do(func() { sess.HandleInbound(data) })
		},
		func(err error) {
			fyne.Do(func() {
				logPane.Append(session.DirIn, fmt.Sprintf("connection closed: %v", err), session.TagError)
			})
		},
	)

	if err := sess.Dispatch(session.CmdHello); err != nil {
		log.Warnw("hello failed", "error", err)
	}

	appUI.Run()
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
