package window

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based tests for the screen-fit computation.

// TestProperty_FitPreservesSmallSizes checks that a logical size that
// already fits the screen is passed through unchanged with ratios of
// exactly 1.0.
func TestProperty_FitPreservesSmallSizes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("fitting size is identity", prop.ForAll(
		func(logicalW, logicalH, slackW, slackH int) bool {
			lw, lh := float64(logicalW), float64(logicalH)
			sw, sh := lw+float64(slackW), lh+float64(slackH)

			w, h := fitToScreen(lw, lh, sw, sh)
			if w != lw || h != lh {
				return false
			}
			rx, ry := scaleRatios(w, h, lw, lh)
			return rx == 1.0 && ry == 1.0
		},
		gen.IntRange(1, 4096),
		gen.IntRange(1, 4096),
		gen.IntRange(0, 2000),
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}

// TestProperty_FitRespectsScreenBounds checks that an oversized logical
// size is shrunk below the screen width minus the border margin while
// keeping the aspect ratio within rounding error.
func TestProperty_FitRespectsScreenBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("oversized logical size is fitted", prop.ForAll(
		func(logicalW, logicalH, screenW, screenH int) bool {
			lw, lh := float64(logicalW), float64(logicalH)
			sw, sh := float64(screenW), float64(screenH)
			if lw <= sw && lh <= sh {
				// Not the oversized case; covered above.
				return true
			}

			w, h := fitToScreen(lw, lh, sw, sh)

			if w > sw-screenFitMargin && w > 1 {
				return false
			}
			if w != math.Trunc(w) || h != math.Trunc(h) {
				return false
			}
			if w <= 1 || h <= 1 {
				// Clamped degenerate fit; aspect no longer holds.
				return true
			}

			aspect := lw / lh
			return math.Abs(h-w/aspect) <= 1.0
		},
		gen.IntRange(100, 8192),
		gen.IntRange(100, 8192),
		gen.IntRange(100, 4096),
		gen.IntRange(100, 4096),
	))

	properties.TestingRun(t)
}

// TestProperty_FitNeverCollapses checks that the computed size is
// always at least 1x1.
func TestProperty_FitNeverCollapses(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("fitted size stays positive", prop.ForAll(
		func(logicalW, logicalH, screenW, screenH int) bool {
			w, h := fitToScreen(float64(logicalW), float64(logicalH),
				float64(screenW), float64(screenH))
			return w >= 1 && h >= 1
		},
		gen.IntRange(0, 8192),
		gen.IntRange(0, 8192),
		gen.IntRange(1, 4096),
		gen.IntRange(1, 4096),
	))

	properties.TestingRun(t)
}
