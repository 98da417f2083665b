package app

import (
	"log/slog"

	"github.com/stagedoor/stagedoor/pkg/window"
)

// LoggingController is a stand-in application controller. A real game
// plugs its state machine and save subsystem in here; the demo logs
// every call.
type LoggingController struct {
	log     *slog.Logger
	profile string
}

// NewLoggingController creates a controller logging to log.
func NewLoggingController(log *slog.Logger) *LoggingController {
	return &LoggingController{log: log, profile: "default"}
}

var _ window.Controller = (*LoggingController)(nil)

func (c *LoggingController) StartNewGame() { c.log.Info("controller: new game") }
func (c *LoggingController) GotoMainMenu() { c.log.Info("controller: main menu") }
func (c *LoggingController) GotoGameMenu() { c.log.Info("controller: game menu") }
func (c *LoggingController) GotoPlay()     { c.log.Info("controller: play") }

func (c *LoggingController) SaveGame() bool {
	c.log.Info("controller: save game")
	return true
}

func (c *LoggingController) LoadGame() bool {
	c.log.Info("controller: load game")
	return true
}

func (c *LoggingController) LoadGameFromLastSave() bool {
	c.log.Info("controller: load last save")
	return true
}

func (c *LoggingController) SaveProfile()     { c.log.Info("controller: save profile") }
func (c *LoggingController) LoadFromProfile() { c.log.Info("controller: load profile") }

func (c *LoggingController) RestoreDefaultProfileSettings() {
	c.log.Info("controller: restore default profile")
	c.profile = "default"
}

func (c *LoggingController) ProfileName() string { return c.profile }

func (c *LoggingController) SaveScreenshot() bool {
	c.log.Info("controller: save screenshot")
	return true
}

func (c *LoggingController) FixAspectRatio() { c.log.Info("controller: fix aspect ratio") }

func (c *LoggingController) Exit() { c.log.Info("controller: exit requested") }
