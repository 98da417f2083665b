// Package window implements the presentation facade of the engine: it
// sizes the game window to the screen, swaps between named scenes,
// forwards input through registered handlers and saves screenshots.
package window

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/stagedoor/stagedoor/pkg/config"
	"github.com/stagedoor/stagedoor/pkg/fileutil"
	"github.com/stagedoor/stagedoor/pkg/logger"
	"github.com/stagedoor/stagedoor/pkg/platform"
	"github.com/stagedoor/stagedoor/pkg/scene"
	"github.com/stagedoor/stagedoor/pkg/style"
)

// Chime plays an audio cue on scene transitions. Optional.
type Chime interface {
	Play()
}

// Manager owns the platform window and the scene registry. It
// implements ebiten.Game; all methods run on the game loop.
type Manager struct {
	cfg        *config.Config
	caps       platform.Capabilities
	screen     platform.Screen
	log        *slog.Logger
	style      *style.Style
	controller Controller
	stateFn    func() AppState
	chime      Chime

	scenes  map[string]scene.Scene
	current scene.Scene

	logicalW, logicalH float64
	scaledW, scaledH   float64
	ratioX, ratioY     float64
	borderW, borderH   float64
	borderMeasured     bool
	fullscreen         bool

	// surface is the logical-resolution root the active scene draws
	// into; it is scaled onto the physical window every frame.
	surface *ebiten.Image

	keyHandlers    []KeyHandler
	mouseHandlers  []MouseHandler
	globalHandlers []GlobalHandler

	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
	lastMouseX   float64
	lastMouseY   float64

	confirmingClose bool
	ctx             context.Context
}

// New creates a window manager for the given configuration. The screen
// bounds come from the primary monitor; tests substitute a fixed screen
// with SetScreen.
func New(cfg *config.Config) *Manager {
	caps := platform.Detect()
	m := &Manager{
		cfg:      cfg,
		caps:     caps,
		screen:   platform.MonitorScreen{Caps: caps},
		log:      logger.GetLogger(),
		style:    style.Default(),
		scenes:   make(map[string]scene.Scene),
		logicalW: cfg.Width,
		logicalH: cfg.Height,
		scaledW:  cfg.Width,
		scaledH:  cfg.Height,
		ratioX:   1,
		ratioY:   1,
	}
	return m
}

// SetScreen replaces the screen-bounds source.
func (m *Manager) SetScreen(s platform.Screen) { m.screen = s }

// SetCapabilities replaces the platform capabilities.
func (m *Manager) SetCapabilities(c platform.Capabilities) { m.caps = c }

// SetStyle installs the stylesheet applied to every scene registered
// from now on.
func (m *Manager) SetStyle(s *style.Style) {
	if s != nil {
		m.style = s
	}
}

// SetController wires the application controller used on the close path.
func (m *Manager) SetController(c Controller) { m.controller = c }

// SetStateProvider wires the application-state source consulted by the
// close handler.
func (m *Manager) SetStateProvider(fn func() AppState) { m.stateFn = fn }

// SetChime wires an optional scene-transition sound.
func (m *Manager) SetChime(c Chime) { m.chime = c }

// Style returns the active stylesheet.
func (m *Manager) Style() *style.Style { return m.style }

// ScaledSize returns the current surface size after fitting and live
// resize adjustments.
func (m *Manager) ScaledSize() (float64, float64) { return m.scaledW, m.scaledH }

// ScaleRatios returns the current logical-to-surface scale ratios.
func (m *Manager) ScaleRatios() (float64, float64) { return m.ratioX, m.ratioY }

// viewport snapshots the live geometry pushed to scenes and mouse
// handlers.
func (m *Manager) viewport() scene.Viewport {
	return scene.Viewport{
		LogicalWidth:  m.logicalW,
		LogicalHeight: m.logicalH,
		ScaledWidth:   m.scaledW,
		ScaledHeight:  m.scaledH,
		RatioX:        m.ratioX,
		RatioY:        m.ratioY,
	}
}

// applyInitialSize fits the logical size to the screen bounds and
// derives the initial scale ratios.
func (m *Manager) applyInitialSize() {
	screenW, screenH := m.screen.Bounds(m.cfg.FullscreenAllowed)
	m.scaledW, m.scaledH = fitToScreen(m.logicalW, m.logicalH, screenW, screenH)
	m.ratioX, m.ratioY = scaleRatios(m.scaledW, m.scaledH, m.logicalW, m.logicalH)
	m.pushViewport()
	m.log.Info("window sized",
		"logical_w", m.logicalW, "logical_h", m.logicalH,
		"scaled_w", m.scaledW, "scaled_h", m.scaledH,
		"screen_w", screenW, "screen_h", screenH)
}

// Show sizes and opens the window and runs the game loop until the
// window closes or ctx is cancelled.
func (m *Manager) Show(ctx context.Context) error {
	m.ctx = ctx
	m.applyInitialSize()

	ebiten.SetWindowSize(int(m.scaledW), int(m.scaledH))
	ebiten.SetWindowTitle(fmt.Sprintf("%s %s", m.cfg.Title, m.cfg.Version))
	ebiten.SetWindowDecorated(m.cfg.WindowStyle == config.StyleDecorated)
	if m.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetWindowClosingHandled(true)
	m.loadIcon()

	if err := ebiten.RunGame(m); err != nil {
		return fmt.Errorf("failed to run window loop: %w", err)
	}
	return nil
}

// loadIcon installs the configured window icon. A missing or broken
// icon is logged and skipped.
func (m *Manager) loadIcon() {
	if m.cfg.IconPath == "" {
		return
	}
	path, err := fileutil.Resolve(m.cfg.IconPath)
	if err != nil {
		m.log.Warn("window icon not found", "path", m.cfg.IconPath, "error", err)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		m.log.Warn("failed to open window icon", "path", path, "error", err)
		return
	}
	defer f.Close()
	icon, err := png.Decode(f)
	if err != nil {
		m.log.Warn("failed to decode window icon", "path", path, "error", err)
		return
	}
	ebiten.SetWindowIcon([]image.Image{icon})
}

// SetScene switches to the given scene, registering it on first use.
// Switching to the scene that is already current is a no-op. After the
// first call exactly one scene is active at any time.
func (m *Manager) SetScene(s scene.Scene) {
	if s == nil || s == m.current {
		return
	}
	m.registerScene(s)

	if m.current != nil {
		m.current.Deactivate()
	}
	s.Activate()
	m.current = s

	if m.chime != nil {
		m.chime.Play()
	}
	m.log.Debug("scene switched", "scene", s.Name())
}

// CurrentScene returns the active scene, or nil before the first
// SetScene.
func (m *Manager) CurrentScene() scene.Scene { return m.current }

// registerScene records a scene, applies the shared stylesheet and
// binds it to the live viewport. Seen scenes are kept for reuse.
func (m *Manager) registerScene(s scene.Scene) {
	if _, ok := m.scenes[s.Name()]; ok {
		return
	}
	m.scenes[s.Name()] = s
	s.ApplyStyle(m.style)
	s.Resize(m.viewport())
}

// pushViewport rebinds every registered scene to the current geometry.
func (m *Manager) pushViewport() {
	v := m.viewport()
	for _, s := range m.scenes {
		s.Resize(v)
	}
}

// updateScale recomputes the live scaled size and ratios from the
// actual surface size, minus the border offset (zero while fullscreen).
func (m *Manager) updateScale(actualW, actualH float64) {
	borderW, borderH := m.borderW, m.borderH
	if m.fullscreen {
		borderW, borderH = 0, 0
	}

	scaledW := actualW - borderW
	scaledH := actualH - borderH
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	if scaledW == m.scaledW && scaledH == m.scaledH {
		return
	}

	m.scaledW, m.scaledH = scaledW, scaledH
	m.ratioX, m.ratioY = scaleRatios(scaledW, scaledH, m.logicalW, m.logicalH)
	m.pushViewport()
}

// measureBorder records the platform border size as the difference
// between the actual surface size and the size that was requested. The
// measurement happens once, on the first frame after the window is
// shown, and is reused for later resizes.
func (m *Manager) measureBorder(actualW, actualH float64) {
	if m.borderMeasured {
		return
	}
	m.borderW = actualW - m.scaledW
	m.borderH = m.caps.EffectiveBorderHeight(actualH - m.scaledH)
	m.borderMeasured = true
	m.log.Debug("window border measured", "border_w", m.borderW, "border_h", m.borderH)
}

// FixAspectRatio recomputes the window height from the current scaled
// width and the configured aspect ratio, keeping the width unchanged.
func (m *Manager) FixAspectRatio() {
	height := m.scaledW/m.cfg.AspectRatio() + m.borderH
	ebiten.SetWindowSize(int(m.scaledW+m.borderW), int(height))
}

// Update implements ebiten.Game.
func (m *Manager) Update() error {
	if m.ctx != nil {
		select {
		case <-m.ctx.Done():
			return ebiten.Termination
		default:
		}
	}

	m.fullscreen = ebiten.IsFullscreen()

	if ebiten.IsWindowBeingClosed() {
		if m.handleCloseRequest() {
			return ebiten.Termination
		}
	}

	if m.confirmingClose {
		return m.updateConfirmOverlay()
	}

	m.pollInput()

	if m.current != nil {
		if err := m.current.Update(); err != nil {
			return err
		}
	}
	return nil
}

// handleCloseRequest decides the fate of a window close request.
// Returns true when the application should terminate now.
func (m *Manager) handleCloseRequest() bool {
	if shouldConfirmClose(m.cfg.ConfirmClose, m.appState(), m.cfg.IntroEnabled) {
		m.confirmingClose = true
		return false
	}
	m.exit()
	return true
}

func (m *Manager) appState() AppState {
	if m.stateFn != nil {
		return m.stateFn()
	}
	return StatePlay
}

func (m *Manager) exit() {
	if m.controller != nil {
		m.controller.Exit()
	}
}

// updateConfirmOverlay runs the modal close-confirmation overlay. Input
// is consumed here and not forwarded to handlers or the scene.
func (m *Manager) updateConfirmOverlay() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyY) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.exit()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.confirmingClose = false
	}
	return nil
}

// Draw implements ebiten.Game. The active scene draws into the logical
// root surface, which is then scaled onto the physical window.
func (m *Manager) Draw(screen *ebiten.Image) {
	surface := m.rootSurface()
	surface.Fill(m.style.Background)
	if m.current != nil {
		m.current.Draw(surface)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(m.ratioX, m.ratioY)
	screen.DrawImage(surface, op)

	if m.confirmingClose {
		m.drawConfirmOverlay(screen)
	}
}

// Layout implements ebiten.Game. It also observes the actual surface
// size every frame: the border offset is measured on the first call and
// the scaled size and ratios are live-derived afterwards.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	actualW, actualH := float64(outsideWidth), float64(outsideHeight)
	if actualW > 0 && actualH > 0 {
		m.measureBorder(actualW, actualH)
		m.updateScale(actualW, actualH)
	}

	w, h := int(m.scaledW), int(m.scaledH)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// rootSurface lazily creates the logical-resolution render target.
func (m *Manager) rootSurface() *ebiten.Image {
	if m.surface == nil {
		m.surface = ebiten.NewImage(int(m.logicalW), int(m.logicalH))
	}
	return m.surface
}
