package app

import (
	"path/filepath"
	"testing"

	"github.com/stagedoor/stagedoor/pkg/config"
	"github.com/stagedoor/stagedoor/pkg/logger"
	"github.com/stagedoor/stagedoor/pkg/style"
	"github.com/stagedoor/stagedoor/pkg/window"
)

func newTestApp(cfg *config.Config) *Application {
	app := New()
	app.config = cfg
	app.log = logger.GetLogger()
	app.manager = window.New(cfg)
	return app
}

func TestBuildScenes_IntroEnabled(t *testing.T) {
	cfg := config.Default()
	cfg.IntroEnabled = true
	app := newTestApp(cfg)

	app.buildScenes()

	if got := app.manager.CurrentScene().Name(); got != "intro" {
		t.Errorf("initial scene = %q, want intro", got)
	}
	if app.state != window.StateIntro {
		t.Errorf("state = %v, want StateIntro", app.state)
	}
}

func TestBuildScenes_IntroDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.IntroEnabled = false
	app := newTestApp(cfg)

	app.buildScenes()

	if got := app.manager.CurrentScene().Name(); got != "title" {
		t.Errorf("initial scene = %q, want title", got)
	}
	if app.state != window.StateMainMenu {
		t.Errorf("state = %v, want StateMainMenu", app.state)
	}
}

func TestLoadStyle_FallbackOnMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.StylesheetPath = filepath.Join(t.TempDir(), "missing.yaml")
	app := newTestApp(cfg)

	st := app.loadStyle()
	if st == nil {
		t.Fatal("loadStyle must not return nil")
	}
	if *st != *style.Default() {
		t.Error("broken stylesheet should fall back to defaults")
	}
}

func TestLoadStyle_NoPathUsesDefault(t *testing.T) {
	app := newTestApp(config.Default())

	if *app.loadStyle() != *style.Default() {
		t.Error("empty stylesheet path should use the default style")
	}
}

func TestLoggingController(t *testing.T) {
	c := NewLoggingController(logger.GetLogger())

	if c.ProfileName() != "default" {
		t.Errorf("ProfileName() = %q, want default", c.ProfileName())
	}
	if !c.SaveGame() || !c.LoadGame() || !c.LoadGameFromLastSave() {
		t.Error("demo controller save/load stubs should report success")
	}

	c.profile = "alice"
	c.RestoreDefaultProfileSettings()
	if c.ProfileName() != "default" {
		t.Error("RestoreDefaultProfileSettings should reset the profile name")
	}
}
