// Package scene defines the contract between the window manager and the
// application screens it swaps between.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stagedoor/stagedoor/pkg/style"
)

// Viewport carries the live window geometry a scene renders into. The
// window manager pushes a fresh Viewport to every registered scene
// whenever the surface is resized.
type Viewport struct {
	LogicalWidth  float64 // configured width, resolution independent
	LogicalHeight float64 // configured height
	ScaledWidth   float64 // actual surface width after fitting
	ScaledHeight  float64 // actual surface height after fitting
	RatioX        float64 // ScaledWidth / LogicalWidth
	RatioY        float64 // ScaledHeight / LogicalHeight
}

// ToLogical converts surface coordinates to logical coordinates.
func (v Viewport) ToLogical(x, y float64) (float64, float64) {
	lx, ly := x, y
	if v.RatioX != 0 {
		lx = x / v.RatioX
	}
	if v.RatioY != 0 {
		ly = y / v.RatioY
	}
	return lx, ly
}

// Scene is one named, swappable screen (title, menu, gameplay, ...).
// At most one scene is active at a time; the window manager drives the
// lifecycle methods.
type Scene interface {
	Name() string
	Update() error
	Draw(screen *ebiten.Image)

	Activate()
	Deactivate()
	Active() bool

	ApplyStyle(*style.Style)
	Resize(Viewport)
}

// Base carries the bookkeeping every scene needs: name, active flag,
// bound viewport and the shared stylesheet. Embed it and implement
// Update/Draw.
type Base struct {
	name     string
	active   bool
	viewport Viewport
	style    *style.Style
}

// NewBase returns a Base for a scene with the given name.
func NewBase(name string) Base {
	return Base{
		name:  name,
		style: style.Default(),
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) Activate()    { b.active = true }
func (b *Base) Deactivate()  { b.active = false }
func (b *Base) Active() bool { return b.active }

// ApplyStyle installs the shared stylesheet. A nil style keeps the
// current one.
func (b *Base) ApplyStyle(s *style.Style) {
	if s != nil {
		b.style = s
	}
}

// Style returns the stylesheet applied at registration.
func (b *Base) Style() *style.Style { return b.style }

// Resize updates the bound viewport.
func (b *Base) Resize(v Viewport) { b.viewport = v }

// Viewport returns the last viewport pushed by the window manager.
func (b *Base) Viewport() Viewport { return b.viewport }
