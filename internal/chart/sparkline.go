package chart

import "github.com/bamsammich/termchart/internal/scale"

// Sparkline renders data as a single line of exactly width block glyphs,
// oldest sample on the left. The series is resampled to width columns and
// normalized to its own min/max.
func Sparkline(data []float64, width int) string {
	return SparklineWithin(data, width, scale.Span(data))
}

// SparklineWithin is Sparkline with caller-supplied bounds, so several
// sparklines can share one scale.
func SparklineWithin(data []float64, width int, b scale.Bounds) string {
	if width <= 0 || len(data) == 0 {
		return ""
	}

	samples := scale.Resample(data, width)
	out := make([]rune, width)
	for i, v := range samples {
		out[i] = scale.Blocks.At(v, b.Min, b.Max)
	}
	return string(out)
}
