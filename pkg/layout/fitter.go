package layout

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/pianofolio/pkg/debug"
	"github.com/vanderheijden86/pianofolio/pkg/metrics"
	"github.com/vanderheijden86/pianofolio/pkg/resume"
)

// Viewport describes the space the keyboard may use.
type Viewport struct {
	Width     int // terminal columns
	Height    int // terminal rows
	Available int // columns left for the key row
}

// Fitter holds the committed keyboard scale and per-key label state.
type Fitter struct {
	geom       Geometry
	breakpoint int

	scale       float64
	labelScales []float64
	labelTexts  []string
}

// NewFitter returns a fitter at scale 1.0 with full labels.
func NewFitter(breakpoint int) *Fitter {
	keys := resume.Keys()
	f := &Fitter{
		geom:        DefaultGeometry,
		breakpoint:  breakpoint,
		scale:       1.0,
		labelScales: make([]float64, len(keys)),
		labelTexts:  make([]string, len(keys)),
	}
	for i, k := range keys {
		f.labelScales[i] = 1.0
		f.labelTexts[i] = k.SectionLabel
	}
	return f
}

// Geometry returns the key geometry in use.
func (f *Fitter) Geometry() Geometry { return f.geom }

// Scale returns the committed keyboard scale.
func (f *Fitter) Scale() float64 { return f.scale }

// Breakpoint returns the small-viewport threshold.
func (f *Fitter) Breakpoint() int { return f.breakpoint }

// LabelScale returns the committed label scale of key i.
func (f *Fitter) LabelScale(i int) float64 {
	if i < 0 || i >= len(f.labelScales) {
		return 1.0
	}
	return f.labelScales[i]
}

// LabelText returns the label text chosen for key i, full or abbreviated.
func (f *Fitter) LabelText(i int) string {
	if i < 0 || i >= len(f.labelTexts) {
		return ""
	}
	return f.labelTexts[i]
}

// Label returns the part of key i's label that fits at its scale.
func (f *Fitter) Label(i int) string {
	return VisibleLabel(f.LabelText(i), f.LabelScale(i))
}

// Fit recomputes the keyboard and label scales for vp and reports whether
// anything changed. A failure leaves the previous values in place.
func (f *Fitter) Fit(vp Viewport) (changed bool) {
	defer func() {
		if r := recover(); r != nil {
			debug.Log("layout: fit %+v panicked: %v", vp, r)
			changed = false
		}
	}()
	defer metrics.Timer(metrics.LayoutFit)()
	defer debug.LogEnterExit("layout.Fit")()

	small := IsSmall(vp.Width, f.breakpoint)
	next := KeyboardScale(float64(vp.Available), float64(f.geom.NaturalWidth()), small)
	scale := Commit(f.scale, next)
	if scale != f.scale {
		debug.Log("layout: scale %.2f -> %.2f (available=%d small=%v)", f.scale, scale, vp.Available, small)
		f.scale = scale
		changed = true
	}

	for i, r := range f.geom.Keys(f.scale) {
		key, _ := resume.KeyAt(i)
		text, ls := fitLabel(key.SectionLabel, r.W)
		if text != f.labelTexts[i] {
			f.labelTexts[i] = text
			f.labelScales[i] = ls
			changed = true
			continue
		}
		if c := Commit(f.labelScales[i], ls); c != f.labelScales[i] {
			f.labelScales[i] = c
			changed = true
		}
	}
	return changed
}

// fitLabel picks the full label when it fits at full scale and the short
// form otherwise, then measures whichever text was chosen.
func fitLabel(full string, keyWidth int) (string, float64) {
	s := LabelScale(float64(runewidth.StringWidth(full)), float64(keyWidth))
	if s >= 1.0 {
		return full, s
	}
	short := resume.ShortLabel(full)
	if short == full {
		return full, s
	}
	return short, LabelScale(float64(runewidth.StringWidth(short)), float64(keyWidth))
}

// VisibleLabel shortens text to the share of its width given by scale,
// marking the cut with an ellipsis.
func VisibleLabel(text string, scale float64) string {
	natural := runewidth.StringWidth(text)
	if natural == 0 || scale >= 1.0 || math.IsNaN(scale) {
		return text
	}
	n := int(math.Floor(float64(natural)*scale + 1e-9))
	if n < 1 {
		n = 1
	}
	if n >= natural {
		return text
	}
	return runewidth.Truncate(text, n, "…")
}
