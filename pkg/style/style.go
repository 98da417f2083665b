// Package style loads the shared visual stylesheet applied to every
// registered scene.
package style

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Style is the resolved stylesheet shared by all scenes.
type Style struct {
	Background color.RGBA // scene background fill
	Text       color.RGBA // regular text
	Accent     color.RGBA // highlighted / selected text
	Overlay    color.RGBA // scrim behind modal overlays
	Padding    float64    // default inset for scene content
}

// Default returns the built-in stylesheet.
func Default() *Style {
	return &Style{
		Background: color.RGBA{0x00, 0x87, 0xC8, 0xFF},
		Text:       color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Accent:     color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
		Overlay:    color.RGBA{0x00, 0x00, 0x00, 0xB0},
		Padding:    16,
	}
}

// fileStyle is the YAML shape of a stylesheet file. All fields are
// optional; missing ones keep the default.
type fileStyle struct {
	Background string   `yaml:"background"`
	Text       string   `yaml:"text"`
	Accent     string   `yaml:"accent"`
	Overlay    string   `yaml:"overlay"`
	Padding    *float64 `yaml:"padding"`
}

// Load reads a YAML stylesheet and merges it over the default style.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}

	var fs fileStyle
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet %s: %w", path, err)
	}

	s := Default()
	if err := mergeColor(&s.Background, fs.Background); err != nil {
		return nil, err
	}
	if err := mergeColor(&s.Text, fs.Text); err != nil {
		return nil, err
	}
	if err := mergeColor(&s.Accent, fs.Accent); err != nil {
		return nil, err
	}
	if err := mergeColor(&s.Overlay, fs.Overlay); err != nil {
		return nil, err
	}
	if fs.Padding != nil {
		s.Padding = *fs.Padding
	}
	return s, nil
}

func mergeColor(dst *color.RGBA, value string) error {
	if value == "" {
		return nil
	}
	c, err := ParseHexColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}
	hex := s[1:]

	var r, g, b, a uint8
	a = 0xFF
	switch len(hex) {
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: need 6 or 8 hex digits", s)
	}
	return color.RGBA{r, g, b, a}, nil
}
