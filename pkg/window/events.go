package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/stagedoor/stagedoor/pkg/scene"
)

// KeyEvent is a raw keyboard event forwarded to key handlers.
type KeyEvent struct {
	Key      ebiten.Key
	Pressed  bool // true for press, false for release
	Repeated bool // held-key repeat
}

// MouseEventKind distinguishes mouse event flavors.
type MouseEventKind int

const (
	MousePressed MouseEventKind = iota
	MouseReleased
	MouseMoved
	MouseWheel
)

// MouseEvent is forwarded to mouse handlers, augmented with the current
// viewport and scale ratios so handlers can convert between surface and
// logical coordinates.
type MouseEvent struct {
	Kind   MouseEventKind
	Button ebiten.MouseButton // valid for Pressed / Released
	X, Y   float64            // surface coordinates
	WheelX float64            // valid for Wheel
	WheelY float64

	Viewport scene.Viewport
	RatioX   float64
	RatioY   float64
}

// Logical returns the event position in logical coordinates.
func (e MouseEvent) Logical() (float64, float64) {
	return e.Viewport.ToLogical(e.X, e.Y)
}

// EventKind tags the payload of a catch-all Event.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
)

// Event is the catch-all form delivered to global handlers. It carries
// the payload only; any reference to the originating scene or surface
// is stripped before delivery.
type Event struct {
	Kind  EventKind
	Key   KeyEvent   // valid when Kind == EventKey
	Mouse MouseEvent // valid when Kind == EventMouse
}

// Handler types. Handlers run in registration order; a panicking
// handler is logged and skipped without affecting later handlers.
type (
	KeyHandler    func(KeyEvent)
	MouseHandler  func(MouseEvent)
	GlobalHandler func(Event)
)

// AddKeyHandler registers a handler for raw key events.
func (m *Manager) AddKeyHandler(h KeyHandler) {
	m.keyHandlers = append(m.keyHandlers, h)
}

// AddMouseHandler registers a handler for augmented mouse events.
func (m *Manager) AddMouseHandler(h MouseHandler) {
	m.mouseHandlers = append(m.mouseHandlers, h)
}

// AddGlobalHandler registers a catch-all handler receiving every
// forwarded event.
func (m *Manager) AddGlobalHandler(h GlobalHandler) {
	m.globalHandlers = append(m.globalHandlers, h)
}

func (m *Manager) dispatchKey(ev KeyEvent) {
	for _, h := range m.keyHandlers {
		m.safeCall("key", func() { h(ev) })
	}
	stripped := ev
	for _, h := range m.globalHandlers {
		m.safeCall("global", func() { h(Event{Kind: EventKey, Key: stripped}) })
	}
}

func (m *Manager) dispatchMouse(ev MouseEvent) {
	ev.Viewport = m.viewport()
	ev.RatioX = m.ratioX
	ev.RatioY = m.ratioY
	for _, h := range m.mouseHandlers {
		m.safeCall("mouse", func() { h(ev) })
	}

	// Global delivery carries the payload without the viewport context.
	stripped := ev
	stripped.Viewport = scene.Viewport{}
	for _, h := range m.globalHandlers {
		m.safeCall("global", func() { h(Event{Kind: EventMouse, Mouse: stripped}) })
	}
}

// safeCall runs one handler, recovering a panic so the remaining
// handlers still run.
func (m *Manager) safeCall(channel string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("event handler panicked", "channel", channel, "panic", r)
		}
	}()
	f()
}

// pollInput gathers this frame's input from Ebitengine and forwards it
// through the handler channels.
func (m *Manager) pollInput() {
	m.pressedKeys = m.pressedKeys[:0]
	m.pressedKeys = inpututil.AppendJustPressedKeys(m.pressedKeys)
	for _, k := range m.pressedKeys {
		m.dispatchKey(KeyEvent{Key: k, Pressed: true})
	}
	m.releasedKeys = m.releasedKeys[:0]
	m.releasedKeys = inpututil.AppendJustReleasedKeys(m.releasedKeys)
	for _, k := range m.releasedKeys {
		m.dispatchKey(KeyEvent{Key: k, Pressed: false})
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			m.dispatchMouse(MouseEvent{Kind: MousePressed, Button: b, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			m.dispatchMouse(MouseEvent{Kind: MouseReleased, Button: b, X: fx, Y: fy})
		}
	}

	if fx != m.lastMouseX || fy != m.lastMouseY {
		m.dispatchMouse(MouseEvent{Kind: MouseMoved, X: fx, Y: fy})
		m.lastMouseX = fx
		m.lastMouseY = fy
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		m.dispatchMouse(MouseEvent{Kind: MouseWheel, X: fx, Y: fy, WheelX: wx, WheelY: wy})
	}
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}
