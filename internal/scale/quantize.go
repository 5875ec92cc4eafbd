package scale

import "math"

// Levels is an ordered glyph set, emptiest first. Index i never shows less
// fill than index i-1.
type Levels []rune

// Glyph sets shared by the renderers.
var (
	// Blocks are the eight vertical fill levels used by waveforms.
	Blocks = Levels("▁▂▃▄▅▆▇█")
	// Shades are the four heat levels used by the geo renderer.
	Shades = Levels("░▒▓█")
	// Eighths are horizontal partial cells used for bar remainders; index 0
	// is one eighth, index 7 a full cell.
	Eighths = Levels("▏▎▍▌▋▊▉█")
)

// Bounds is an explicit normalization range.
type Bounds struct {
	Min float64
	Max float64
}

// Span returns the min/max bounds of data. Empty data spans {0, 0}.
func Span(data []float64) Bounds {
	if len(data) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: data[0], Max: data[0]}
	for _, v := range data[1:] {
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	return b
}

// Normalize maps v into [0, 1] relative to [lo, hi]. A zero-width range is
// treated as width 1, so a flat series sits at 0.
func Normalize(v, lo, hi float64) float64 {
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	n := (v - lo) / rng
	switch {
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}

// Quantize maps v onto a level index in [0, levels-1]. The exact maximum
// lands on the top level rather than one past it. levels <= 0 yields 0.
func Quantize(v, lo, hi float64, levels int) int {
	if levels <= 0 {
		return 0
	}
	idx := int(math.Floor(Normalize(v, lo, hi) * float64(levels)))
	return min(max(idx, 0), levels-1)
}

// Len returns the number of levels.
func (l Levels) Len() int { return len(l) }

// At returns the glyph for v within [lo, hi].
func (l Levels) At(v, lo, hi float64) rune {
	return l[Quantize(v, lo, hi, len(l))]
}

// Index returns the glyph at level i, clamped into range.
func (l Levels) Index(i int) rune {
	return l[min(max(i, 0), len(l)-1)]
}

// Empty returns the sparsest glyph.
func (l Levels) Empty() rune { return l[0] }

// Full returns the densest glyph.
func (l Levels) Full() rune { return l[len(l)-1] }
