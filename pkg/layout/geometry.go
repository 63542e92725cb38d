package layout

import (
	"math"

	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// Rect is a key's cell rectangle relative to the row origin.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Geometry holds unscaled key dimensions in cells.
type Geometry struct {
	WhiteWidth, WhiteHeight int
	SharpWidth, SharpHeight int
	Gap                     int
}

// DefaultGeometry is the natural key size.
var DefaultGeometry = Geometry{
	WhiteWidth:  10,
	WhiteHeight: 9,
	SharpWidth:  7,
	SharpHeight: 6,
	Gap:         1,
}

// Minimum scaled sizes: enough for a border and one cell of content.
const (
	minKeyWidth  = 3
	minKeyHeight = 3
)

// NaturalWidth is the unscaled width of the whole row.
func (g Geometry) NaturalWidth() int {
	w := 0
	for i, k := range resume.Keys() {
		if i > 0 {
			w += g.Gap
		}
		if k.IsSharp {
			w += g.SharpWidth
		} else {
			w += g.WhiteWidth
		}
	}
	return w
}

// Keys lays out the twelve keys left to right at scale. Gaps do not scale.
// Sharp keys are shorter and top-aligned, as on a real keyboard.
func (g Geometry) Keys(scale float64) []Rect {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		scale = 1.0
	}
	keys := resume.Keys()
	rects := make([]Rect, len(keys))
	x := 0
	for i, k := range keys {
		w, h := g.WhiteWidth, g.WhiteHeight
		if k.IsSharp {
			w, h = g.SharpWidth, g.SharpHeight
		}
		r := Rect{
			X: x,
			W: scaled(w, scale, minKeyWidth),
			H: scaled(h, scale, minKeyHeight),
		}
		rects[i] = r
		x += r.W + g.Gap
	}
	return rects
}

// Width is the row width at scale.
func (g Geometry) Width(scale float64) int {
	rects := g.Keys(scale)
	last := rects[len(rects)-1]
	return last.X + last.W
}

// Height is the row height at scale.
func (g Geometry) Height(scale float64) int {
	h := 0
	for _, r := range g.Keys(scale) {
		if r.H > h {
			h = r.H
		}
	}
	return h
}

// HitTest returns the index of the key under (x, y), relative to the row
// origin.
func (g Geometry) HitTest(x, y int, scale float64) (int, bool) {
	for i, r := range g.Keys(scale) {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

func scaled(n int, scale float64, floor int) int {
	v := int(math.Round(float64(n) * scale))
	if v < floor {
		return floor
	}
	return v
}
