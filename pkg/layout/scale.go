// Package layout fits the piano row to the terminal.
//
// All measurements are in terminal cells. The keyboard gets one uniform scale
// factor; each key label gets its own, which decides how much of the label is
// shown. Nothing here panics, and no function returns NaN or Inf.
package layout

import "math"

// Scale bounds for the keyboard row.
const (
	MinScale = 0.5
	MaxScale = 1.3
)

// MinLabelScale is the legibility floor for key labels.
const MinLabelScale = 0.2

// LabelPadding is the cells of a key unavailable to its label (one border
// cell on each side).
const LabelPadding = 2

// ScaleEpsilon is the smallest change Commit accepts.
const ScaleEpsilon = 0.01

// DefaultSmallBreakpoint is the column count below which a terminal is small.
const DefaultSmallBreakpoint = 100

// KeyboardScale returns the scale that fits a row needing `needed` cells into
// `available` cells. Small viewports may upscale; others are capped at 1.0.
// The result is always within [MinScale, MaxScale].
func KeyboardScale(available, needed float64, small bool) float64 {
	if needed <= 0 || math.IsNaN(needed) || math.IsInf(needed, 0) {
		return 1.0
	}
	if math.IsNaN(available) || available < 0 {
		available = 0
	}
	ratio := available / needed
	if !small && ratio > 1.0 {
		ratio = 1.0
	}
	return clamp(ratio, MinScale, MaxScale)
}

// LabelScale returns the largest scale, at most 1.0, that fits a label of
// natural width into a key of keyWidth cells, floored at MinLabelScale.
func LabelScale(natural, keyWidth float64) float64 {
	if natural <= 0 || math.IsNaN(natural) || math.IsInf(natural, 0) {
		return 1.0
	}
	room := keyWidth - LabelPadding
	if math.IsNaN(room) || room <= 0 {
		return MinLabelScale
	}
	return clamp(room/natural, MinLabelScale, 1.0)
}

// Commit returns next when it differs from old by at least ScaleEpsilon, and
// old otherwise.
func Commit(old, next float64) float64 {
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return old
	}
	if math.Abs(next-old) < ScaleEpsilon {
		return old
	}
	return next
}

// IsSmall reports whether a terminal of the given width uses the small
// layout. A non-positive breakpoint uses DefaultSmallBreakpoint.
func IsSmall(width, breakpoint int) bool {
	if breakpoint <= 0 {
		breakpoint = DefaultSmallBreakpoint
	}
	return width < breakpoint
}

// IsPortrait reports whether the terminal is taller than it is wide. Cells
// are roughly twice as tall as they are wide.
func IsPortrait(width, height int) bool {
	return width < 2*height
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
