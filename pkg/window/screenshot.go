package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const screenshotExt = ".png"

// screenshotBaseName composes the default screenshot filename from the
// window title, the version string and a timestamp. The title is
// NFC-normalized and colon characters are replaced so the name is safe
// on every filesystem.
func screenshotBaseName(title, version string, now time.Time) string {
	name := fmt.Sprintf("%s_%s_%s", title, version, now.Format("2006-01-02_15:04:05"))
	name = norm.NFC.String(name)
	return strings.ReplaceAll(name, ":", "-")
}

// ensureScreenshotExt appends the image extension unless the name
// already carries it.
func ensureScreenshotExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), screenshotExt) {
		return name
	}
	return name + screenshotExt
}

// TakeScreenshot captures the current frame as a raster image at
// logical resolution. Returns nil before the first frame was drawn.
func (m *Manager) TakeScreenshot() image.Image {
	if m.surface == nil {
		return nil
	}
	bounds := m.surface.Bounds()
	img := image.NewRGBA(bounds)
	m.surface.ReadPixels(img.Pix)
	return img
}

// SaveScreenshot saves the current frame under an auto-generated name.
// Reports whether the file was written.
func (m *Manager) SaveScreenshot() bool {
	return m.SaveScreenshotAs(screenshotBaseName(m.cfg.Title, m.cfg.Version, time.Now()))
}

// SaveScreenshotAs saves the current frame under the given name,
// appending ".png" when missing. Reports whether the file was written;
// capture or I/O failures are logged, never propagated.
func (m *Manager) SaveScreenshotAs(name string) bool {
	img := m.TakeScreenshot()
	if img == nil {
		m.log.Warn("screenshot skipped: no frame rendered yet")
		return false
	}
	return m.saveImage(img, name)
}

// saveImage encodes img as PNG under name.
func (m *Manager) saveImage(img image.Image, name string) bool {
	path := ensureScreenshotExt(name)

	f, err := os.Create(path)
	if err != nil {
		m.log.Warn("failed to create screenshot file", "path", path, "error", err)
		return false
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		m.log.Warn("failed to encode screenshot", "path", path, "error", err)
		return false
	}
	if err := f.Close(); err != nil {
		m.log.Warn("failed to write screenshot", "path", path, "error", err)
		return false
	}

	m.log.Info("screenshot saved", "path", path)
	return true
}
