// Package app wires configuration, logging, styling and the demo
// scenes into the window manager.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stagedoor/stagedoor/pkg/chime"
	"github.com/stagedoor/stagedoor/pkg/config"
	"github.com/stagedoor/stagedoor/pkg/fileutil"
	"github.com/stagedoor/stagedoor/pkg/logger"
	"github.com/stagedoor/stagedoor/pkg/style"
	"github.com/stagedoor/stagedoor/pkg/window"
)

// Application owns the process lifecycle of the demo.
type Application struct {
	config  *config.Config
	log     *slog.Logger
	manager *window.Manager
	state   window.AppState
}

// New creates an Application.
func New() *Application {
	return &Application{state: window.StateMainMenu}
}

// Run parses configuration, builds the window manager and runs the
// window loop until the application exits.
func (app *Application) Run(args []string) error {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = cfg

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.GetLogger()
	app.log.Info("application started", "title", cfg.Title, "version", cfg.Version)

	manager := window.New(cfg)
	manager.SetStyle(app.loadStyle())
	manager.SetController(NewLoggingController(app.log))
	manager.SetStateProvider(func() window.AppState { return app.state })
	app.manager = manager

	if cfg.SoundFontPath != "" {
		if c, err := app.loadChime(cfg.SoundFontPath); err != nil {
			app.log.Warn("transition chime disabled", "path", cfg.SoundFontPath, "error", err)
		} else {
			manager.SetChime(c)
		}
	}

	manager.AddKeyHandler(func(ev window.KeyEvent) {
		if ev.Pressed && ev.Key == ebiten.KeyF12 {
			manager.SaveScreenshot()
		}
	})

	app.buildScenes()

	if err := manager.Show(context.Background()); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}

	app.log.Info("application terminated normally")
	return nil
}

// loadChime builds the transition chime from a soundfont path.
func (app *Application) loadChime(path string) (*chime.Player, error) {
	resolved, err := fileutil.Resolve(path)
	if err != nil {
		return nil, err
	}
	return chime.New(resolved)
}

// loadStyle loads the configured stylesheet, falling back to the
// default style when loading fails.
func (app *Application) loadStyle() *style.Style {
	if app.config.StylesheetPath == "" {
		return style.Default()
	}
	path, err := fileutil.Resolve(app.config.StylesheetPath)
	if err == nil {
		var st *style.Style
		if st, err = style.Load(path); err == nil {
			return st
		}
	}
	app.log.Warn("failed to load stylesheet, using defaults", "error", err)
	return style.Default()
}

// buildScenes creates the demo scenes and shows the first one.
func (app *Application) buildScenes() {
	manager := app.manager
	cfg := app.config

	var (
		title *TitleScene
		menu  *MenuScene
		play  *PlayScene
	)

	gotoTitle := func() {
		app.state = window.StateMainMenu
		manager.SetScene(title)
	}
	gotoMenu := func() {
		app.state = window.StateGameMenu
		manager.SetScene(menu)
	}
	gotoPlay := func() {
		app.state = window.StatePlay
		manager.SetScene(play)
	}

	title = NewTitleScene(cfg.Title, gotoMenu)
	menu = NewMenuScene([]string{"Play", "Back to title"}, func(i int) {
		switch i {
		case 0:
			gotoPlay()
		case 1:
			gotoTitle()
		}
	})
	play = NewPlayScene(gotoMenu)

	if cfg.IntroEnabled {
		app.state = window.StateIntro
		manager.SetScene(NewIntroScene(cfg.Title, gotoTitle))
		return
	}
	gotoTitle()
}
