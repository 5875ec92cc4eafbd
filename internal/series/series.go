// Package series holds the data model shared by the renderers: timestamped
// samples, category values and the rolling window used for live samples.
package series

import "time"

// TimePoint is a single timestamped sample.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// Series is an ordered sequence of samples. Callers keep it sorted by time;
// nothing in termchart re-sorts it and duplicate timestamps are allowed.
type Series []TimePoint

// Values projects the series onto its sample values, oldest first.
func (s Series) Values() []float64 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// Bounds returns the smallest and largest sample value. An empty series
// reports (0, 0).
func (s Series) Bounds() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].Value, s[0].Value
	for _, p := range s[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}

// Span returns the time covered by the series (last minus first timestamp).
func (s Series) Span() time.Duration {
	if len(s) < 2 {
		return 0
	}
	return s[len(s)-1].Time.Sub(s[0].Time)
}

// CategoryValue is one labelled quantity of a proportional chart.
// A zero Glyph lets the renderer pick one.
type CategoryValue struct {
	Label string
	Value float64
	Glyph rune
}

// Total sums the values of all categories.
func Total(items []CategoryValue) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Value
	}
	return sum
}

// MaxValue returns the largest category value, or 0 for an empty list.
func MaxValue(items []CategoryValue) float64 {
	var hi float64
	for _, it := range items {
		if it.Value > hi {
			hi = it.Value
		}
	}
	return hi
}
