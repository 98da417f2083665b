package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/stagedoor/stagedoor/pkg/scene"
	"github.com/stagedoor/stagedoor/pkg/style"
)

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// IntroScene shows the title card for a few seconds, then hands over.
type IntroScene struct {
	scene.Base
	title  string
	frames int
	onDone func()
}

func NewIntroScene(title string, onDone func()) *IntroScene {
	return &IntroScene{
		Base:   scene.NewBase("intro"),
		title:  title,
		onDone: onDone,
	}
}

func (s *IntroScene) Update() error {
	s.frames++
	// Roughly three seconds at 60 TPS, or any key to skip.
	if s.frames > 180 || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		s.onDone()
	}
	return nil
}

func (s *IntroScene) Draw(screen *ebiten.Image) {
	v := s.Viewport()
	drawCentered(screen, s.title, v.LogicalWidth/2, v.LogicalHeight/2, s, true)
}

// TitleScene is the start screen.
type TitleScene struct {
	scene.Base
	title   string
	onStart func()
}

func NewTitleScene(title string, onStart func()) *TitleScene {
	return &TitleScene{
		Base:    scene.NewBase("title"),
		title:   title,
		onStart: onStart,
	}
}

func (s *TitleScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.onStart()
	}
	return nil
}

func (s *TitleScene) Draw(screen *ebiten.Image) {
	v := s.Viewport()
	drawCentered(screen, s.title, v.LogicalWidth/2, v.LogicalHeight/3, s, true)
	drawCentered(screen, "Press ENTER", v.LogicalWidth/2, v.LogicalHeight*2/3, s, false)
}

// MenuScene is a vertical menu driven by the arrow keys.
type MenuScene struct {
	scene.Base
	items    []string
	selected int
	onSelect func(index int)
}

func NewMenuScene(items []string, onSelect func(int)) *MenuScene {
	return &MenuScene{
		Base:     scene.NewBase("menu"),
		items:    items,
		onSelect: onSelect,
	}
}

func (s *MenuScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && s.selected > 0 {
		s.selected--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && s.selected < len(s.items)-1 {
		s.selected++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.onSelect(s.selected)
	}
	return nil
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	st := s.Style()
	for i, item := range s.items {
		y := st.Padding + 40 + float64(i*40)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(st.Padding+20, y)
		if i == s.selected {
			op.ColorScale.ScaleWithColor(st.Accent)
		} else {
			op.ColorScale.ScaleWithColor(st.Text)
		}
		text.Draw(screen, prefix+item, defaultFace, op)
	}
}

// PlayScene is a stand-in gameplay screen: a square wandering across
// the logical surface.
type PlayScene struct {
	scene.Base
	x, y   float64
	dx, dy float64
	onMenu func()
}

func NewPlayScene(onMenu func()) *PlayScene {
	return &PlayScene{
		Base:   scene.NewBase("play"),
		x:      40,
		y:      40,
		dx:     2,
		dy:     2,
		onMenu: onMenu,
	}
}

func (s *PlayScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.onMenu()
		return nil
	}

	v := s.Viewport()
	s.x += s.dx
	s.y += s.dy
	if s.x < 0 || s.x+32 > v.LogicalWidth {
		s.dx = -s.dx
	}
	if s.y < 0 || s.y+32 > v.LogicalHeight {
		s.dy = -s.dy
	}
	return nil
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	st := s.Style()
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), 32, 32, st.Accent, true)

	v := s.Viewport()
	hint := fmt.Sprintf("ESC for menu, F12 for screenshot (%dx%d)",
		int(v.ScaledWidth), int(v.ScaledHeight))
	op := &text.DrawOptions{}
	op.GeoM.Translate(st.Padding, v.LogicalHeight-st.Padding)
	op.ColorScale.ScaleWithColor(st.Text)
	text.Draw(screen, hint, defaultFace, op)
}

// drawCentered renders one line centered on (cx, cy). Scenes share the
// 7px-wide bitmap face, so centering is arithmetic.
func drawCentered(screen *ebiten.Image, msg string, cx, cy float64, s interface{ Style() *style.Style }, accent bool) {
	st := s.Style()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-float64(len(msg))*7/2, cy)
	if accent {
		op.ColorScale.ScaleWithColor(st.Accent)
	} else {
		op.ColorScale.ScaleWithColor(st.Text)
	}
	text.Draw(screen, msg, defaultFace, op)
}
