// Package platform isolates windowing quirks that differ between
// operating systems: usable screen bounds and window-frame sizing that
// some window managers report unreliably.
package platform

import "runtime"

const (
	// minPlausibleBorderHeight is the smallest frame height a decorated
	// window can realistically have. Measurements below it are treated
	// as bogus on Linux-family platforms.
	minPlausibleBorderHeight = 0.5

	// linuxBorderHeightFallback substitutes the measured frame height
	// when a Linux window manager reports the client size instead of
	// the outer frame.
	linuxBorderHeightFallback = 35.0
)

// OS chrome heights (task bar, menu bar) subtracted from the monitor
// bounds when the window may not cover the full screen.
var chromeInsets = map[string]float64{
	"windows": 40,
	"darwin":  70,
	"linux":   27,
}

// Capabilities describes the windowing behavior of the current platform.
type Capabilities struct {
	OS string
}

// Detect returns the capabilities of the running platform.
func Detect() Capabilities {
	return Capabilities{OS: runtime.GOOS}
}

// LinuxFamily reports whether the platform uses an X11/Wayland-style
// window manager with unreliable frame-size reporting.
func (c Capabilities) LinuxFamily() bool {
	switch c.OS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return true
	}
	return false
}

// EffectiveBorderHeight returns the measured window-frame height, or the
// platform fallback when the measurement is implausibly small on a
// Linux-family platform.
func (c Capabilities) EffectiveBorderHeight(measured float64) float64 {
	if measured < minPlausibleBorderHeight && c.LinuxFamily() {
		return linuxBorderHeightFallback
	}
	return measured
}

// ChromeInset returns the vertical screen space reserved by OS chrome on
// this platform.
func (c Capabilities) ChromeInset() float64 {
	return chromeInsets[c.OS]
}

// Screen reports the bounds a window may occupy.
type Screen interface {
	// Bounds returns the usable screen size. With fullscreen set the
	// full monitor bounds are returned, otherwise the visual bounds
	// excluding OS chrome.
	Bounds(fullscreen bool) (width, height float64)
}

// FixedScreen is a Screen with constant monitor bounds, used in tests
// and for headless runs.
type FixedScreen struct {
	Width  float64
	Height float64
	Caps   Capabilities
}

func (s FixedScreen) Bounds(fullscreen bool) (float64, float64) {
	if fullscreen {
		return s.Width, s.Height
	}
	return s.Width, s.Height - s.Caps.ChromeInset()
}
