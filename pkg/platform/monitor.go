package platform

import "github.com/hajimehoshi/ebiten/v2"

// MonitorScreen reads bounds from the primary monitor via Ebitengine.
type MonitorScreen struct {
	Caps Capabilities
}

func (s MonitorScreen) Bounds(fullscreen bool) (float64, float64) {
	w, h := ebiten.Monitor().Size()
	if fullscreen {
		return float64(w), float64(h)
	}
	return float64(w), float64(h) - s.Caps.ChromeInset()
}
