package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var overlayFace = text.NewGoXFace(basicfont.Face7x13)

// drawConfirmOverlay renders the modal close-confirmation prompt over
// the current frame.
func (m *Manager) drawConfirmOverlay(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, w, h, m.style.Overlay, false)

	msg := fmt.Sprintf("Quit %s? [Y/N]", m.cfg.Title)
	// Face7x13 glyphs are 7 pixels wide; center the line by hand.
	x := float64(w)/2 - float64(len(msg))*7/2
	y := float64(h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(m.style.Text)
	text.Draw(screen, msg, overlayFace, op)
}
