package scene

import (
	"testing"

	"github.com/stagedoor/stagedoor/pkg/style"
)

func TestBaseLifecycle(t *testing.T) {
	b := NewBase("title")

	if b.Name() != "title" {
		t.Errorf("Name() = %q, want %q", b.Name(), "title")
	}
	if b.Active() {
		t.Error("new scene should not be active")
	}

	b.Activate()
	if !b.Active() {
		t.Error("scene should be active after Activate")
	}

	b.Deactivate()
	if b.Active() {
		t.Error("scene should not be active after Deactivate")
	}
}

func TestBaseApplyStyle(t *testing.T) {
	b := NewBase("menu")

	if b.Style() == nil {
		t.Fatal("new scene should carry the default style")
	}

	custom := style.Default()
	custom.Padding = 99
	b.ApplyStyle(custom)
	if b.Style().Padding != 99 {
		t.Error("ApplyStyle should install the given stylesheet")
	}

	b.ApplyStyle(nil)
	if b.Style() != custom {
		t.Error("ApplyStyle(nil) should keep the current stylesheet")
	}
}

func TestBaseResize(t *testing.T) {
	b := NewBase("play")

	v := Viewport{
		LogicalWidth: 1024, LogicalHeight: 768,
		ScaledWidth: 512, ScaledHeight: 384,
		RatioX: 0.5, RatioY: 0.5,
	}
	b.Resize(v)

	if b.Viewport() != v {
		t.Errorf("Viewport() = %+v, want %+v", b.Viewport(), v)
	}
}

func TestViewportToLogical(t *testing.T) {
	tests := []struct {
		name         string
		v            Viewport
		x, y         float64
		wantX, wantY float64
	}{
		{
			"identity at ratio 1",
			Viewport{RatioX: 1, RatioY: 1},
			100, 200, 100, 200,
		},
		{
			"downscaled window",
			Viewport{RatioX: 0.5, RatioY: 0.5},
			100, 200, 200, 400,
		},
		{
			"anisotropic ratios",
			Viewport{RatioX: 2, RatioY: 0.5},
			100, 200, 50, 400,
		},
		{
			"zero ratios pass coordinates through",
			Viewport{},
			100, 200, 100, 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := tt.v.ToLogical(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("ToLogical(%g, %g) = (%g, %g), want (%g, %g)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}
