package window

import "math"

// screenFitMargin is subtracted from a fitted width to leave room for
// platform window borders.
const screenFitMargin = 25

// fitToScreen computes the window size for the given logical size and
// usable screen bounds. When the logical size fits it is returned
// unchanged. Otherwise the largest integer width not exceeding the
// screen width whose aspect-correct height still fits is found by
// searching downward, the border margin is subtracted, and the height
// follows from the aspect ratio. The result is truncated to integers.
func fitToScreen(logicalW, logicalH, screenW, screenH float64) (float64, float64) {
	if logicalW <= 0 || logicalH <= 0 {
		return 1, 1
	}

	width, height := logicalW, logicalH
	if logicalW > screenW || logicalH > screenH {
		aspect := logicalW / logicalH
		for candidate := int(screenW); candidate >= 1; candidate-- {
			if float64(candidate)/aspect <= screenH {
				width = float64(candidate) - screenFitMargin
				height = width / aspect
				break
			}
		}
	}

	width = math.Trunc(width)
	height = math.Trunc(height)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// scaleRatios derives the logical-to-surface scale ratios.
func scaleRatios(scaledW, scaledH, logicalW, logicalH float64) (float64, float64) {
	rx, ry := 1.0, 1.0
	if logicalW > 0 {
		rx = scaledW / logicalW
	}
	if logicalH > 0 {
		ry = scaledH / logicalH
	}
	return rx, ry
}
