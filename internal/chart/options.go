// Package chart renders numeric series and category shares as fixed-width
// lines of block glyphs.
//
// Renderers are pure functions: the same input always yields the same
// output, no state is kept between calls and nothing is written anywhere.
// Non-positive dimensions and empty input produce an empty result instead of
// an error. NaN or infinite values are a precondition violation.
package chart

import "github.com/bamsammich/termchart/internal/scale"

// axisLabelWidth is the right-aligned width of min/max labels.
const axisLabelWidth = 6

// AxisWidth is the number of columns ShowAxis adds left of the plot.
const AxisWidth = axisLabelWidth + 1

// Options configures the multi-line waveform renderers.
type Options struct {
	Width  int
	Height int
	// Bounds overrides the normalization range. Nil derives it from the data.
	Bounds   *scale.Bounds
	ShowAxis bool
	Title    string
}

func (o Options) bounds(data []float64) scale.Bounds {
	if o.Bounds != nil {
		return *o.Bounds
	}
	return scale.Span(data)
}
