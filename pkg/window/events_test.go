package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stagedoor/stagedoor/pkg/config"
	"github.com/stagedoor/stagedoor/pkg/scene"
)

func TestDispatchKey_RegistrationOrder(t *testing.T) {
	m := newTestManager(config.Default())

	var order []int
	m.AddKeyHandler(func(KeyEvent) { order = append(order, 1) })
	m.AddKeyHandler(func(KeyEvent) { order = append(order, 2) })
	m.AddKeyHandler(func(KeyEvent) { order = append(order, 3) })

	m.dispatchKey(KeyEvent{Key: ebiten.KeyA, Pressed: true})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("handlers ran in order %v, want [1 2 3]", order)
	}
}

func TestDispatchKey_PanicDoesNotBlockLaterHandlers(t *testing.T) {
	m := newTestManager(config.Default())

	var reached bool
	m.AddKeyHandler(func(KeyEvent) { panic("boom") })
	m.AddKeyHandler(func(KeyEvent) { reached = true })

	m.dispatchKey(KeyEvent{Key: ebiten.KeyEscape, Pressed: true})

	if !reached {
		t.Error("second handler should run despite the first panicking")
	}
}

func TestDispatchMouse_AugmentedWithViewportAndRatios(t *testing.T) {
	m := newTestManager(config.Default())
	m.scaledW, m.scaledH = 512, 384
	m.ratioX, m.ratioY = 0.5, 0.5

	var got MouseEvent
	m.AddMouseHandler(func(ev MouseEvent) { got = ev })

	m.dispatchMouse(MouseEvent{Kind: MousePressed, Button: ebiten.MouseButtonLeft, X: 100, Y: 50})

	if got.RatioX != 0.5 || got.RatioY != 0.5 {
		t.Errorf("event ratios = %g, %g, want 0.5", got.RatioX, got.RatioY)
	}
	if got.Viewport.ScaledWidth != 512 {
		t.Errorf("event viewport = %+v, want live geometry", got.Viewport)
	}
	lx, ly := got.Logical()
	if lx != 200 || ly != 100 {
		t.Errorf("Logical() = (%g, %g), want (200, 100)", lx, ly)
	}
}

func TestDispatchMouse_GlobalDeliveryStripsViewport(t *testing.T) {
	m := newTestManager(config.Default())
	m.ratioX, m.ratioY = 0.5, 0.5

	var got Event
	m.AddGlobalHandler(func(ev Event) { got = ev })

	m.dispatchMouse(MouseEvent{Kind: MouseMoved, X: 10, Y: 20})

	if got.Kind != EventMouse {
		t.Fatalf("global event kind = %v, want EventMouse", got.Kind)
	}
	if got.Mouse.Viewport != (scene.Viewport{}) {
		t.Errorf("global delivery should strip the viewport context, got %+v", got.Mouse.Viewport)
	}
	if got.Mouse.X != 10 || got.Mouse.Y != 20 {
		t.Error("global delivery should keep the event payload")
	}
}

func TestDispatchKey_GlobalHandlersReceiveKeys(t *testing.T) {
	m := newTestManager(config.Default())

	var kinds []EventKind
	m.AddGlobalHandler(func(ev Event) { kinds = append(kinds, ev.Kind) })

	m.dispatchKey(KeyEvent{Key: ebiten.KeyEnter, Pressed: true})
	m.dispatchMouse(MouseEvent{Kind: MouseWheel, WheelY: 1})

	if len(kinds) != 2 || kinds[0] != EventKey || kinds[1] != EventMouse {
		t.Errorf("global handler saw %v, want [EventKey EventMouse]", kinds)
	}
}

func TestDispatch_MultipleChannelsIndependent(t *testing.T) {
	m := newTestManager(config.Default())

	var keyCalls, mouseCalls, globalCalls int
	m.AddKeyHandler(func(KeyEvent) { keyCalls++ })
	m.AddMouseHandler(func(MouseEvent) { mouseCalls++ })
	m.AddGlobalHandler(func(Event) { globalCalls++ })

	m.dispatchKey(KeyEvent{Key: ebiten.KeyW, Pressed: true})

	if keyCalls != 1 {
		t.Errorf("key handler calls = %d, want 1", keyCalls)
	}
	if mouseCalls != 0 {
		t.Errorf("mouse handler calls = %d, want 0", mouseCalls)
	}
	if globalCalls != 1 {
		t.Errorf("global handler calls = %d, want 1", globalCalls)
	}
}
