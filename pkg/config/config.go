// Package config holds the presentation-layer configuration and its
// flag / environment / YAML-file loading logic.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WindowStyle selects the platform decoration of the game window.
type WindowStyle string

const (
	StyleDecorated   WindowStyle = "decorated"
	StyleUndecorated WindowStyle = "undecorated"
)

// Config is the full configuration consumed by the window manager.
type Config struct {
	Width             float64     `yaml:"width"`             // logical width
	Height            float64     `yaml:"height"`            // logical height
	Title             string      `yaml:"title"`             // window title
	Version           string      `yaml:"version"`           // version string, used in screenshot names
	FullscreenAllowed bool        `yaml:"fullscreenAllowed"` // may use full screen bounds
	Resizable         bool        `yaml:"resizable"`         // manual window resize allowed
	ConfirmClose      bool        `yaml:"confirmClose"`      // ask before closing
	IntroEnabled      bool        `yaml:"introEnabled"`      // intro scene shown at startup
	IconPath          string      `yaml:"iconPath"`          // window icon (PNG)
	StylesheetPath    string      `yaml:"stylesheetPath"`    // shared scene stylesheet (YAML)
	SoundFontPath     string      `yaml:"soundFontPath"`     // optional SF2 for transition chimes
	WindowStyle       WindowStyle `yaml:"windowStyle"`       // decorated / undecorated
	Desktop           bool        `yaml:"desktop"`           // desktop platform (vs. mobile/web build)
	LogLevel          string      `yaml:"logLevel"`          // debug, info, warn, error
}

// Default returns the baseline configuration before any file, environment
// or flag overrides are applied.
func Default() *Config {
	return &Config{
		Width:             1024,
		Height:            768,
		Title:             "stagedoor",
		Version:           "dev",
		FullscreenAllowed: false,
		Resizable:         true,
		ConfirmClose:      true,
		IntroEnabled:      true,
		WindowStyle:       StyleDecorated,
		Desktop:           true,
		LogLevel:          "info",
	}
}

// AspectRatio returns the configured logical width/height ratio.
func (c *Config) AspectRatio() float64 {
	if c.Height == 0 {
		return 1
	}
	return c.Width / c.Height
}

// Validate reports configuration values no window could be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid logical size %gx%g", c.Width, c.Height)
	}
	switch c.WindowStyle {
	case StyleDecorated, StyleUndecorated:
	default:
		return fmt.Errorf("invalid window style: %q", c.WindowStyle)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}

// LoadFile merges a YAML configuration file into c. Fields absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ParseArgs builds a Config from defaults, an optional YAML file, the
// environment and command-line flags, in increasing priority.
func ParseArgs(args []string) (*Config, error) {
	config := Default()

	fs := flag.NewFlagSet("stagedoor", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to YAML config file")
	width := fs.Float64("width", 0, "logical window width")
	height := fs.Float64("height", 0, "logical window height")
	title := fs.String("title", "", "window title")
	fullscreen := fs.Bool("fullscreen", false, "allow use of full screen bounds")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(logLevel, "l", "", "log level (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	// Flags win over file and environment.
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *title != "" {
		config.Title = *title
	}
	if *fullscreen {
		config.FullscreenAllowed = true
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overlays STAGEDOOR_* environment variables onto config.
func applyEnv(config *Config) {
	if v := os.Getenv("STAGEDOOR_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("STAGEDOOR_FULLSCREEN"); v != "" {
		config.FullscreenAllowed = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("STAGEDOOR_WIDTH"); v != "" {
		if w, err := strconv.ParseFloat(v, 64); err == nil && w > 0 {
			config.Width = w
		}
	}
	if v := os.Getenv("STAGEDOOR_HEIGHT"); v != "" {
		if h, err := strconv.ParseFloat(v, 64); err == nil && h > 0 {
			config.Height = h
		}
	}
}
