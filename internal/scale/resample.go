// Package scale maps numeric sequences onto a fixed number of columns and
// discrete glyph levels.
package scale

import "math"

// Resample maps data onto exactly n samples while keeping its visual shape.
// Stretching interpolates linearly between neighbours, so it never exceeds
// the source extremes; compressing averages contiguous buckets, so spikes do
// not alias. Equal lengths return an element-wise copy. Empty data or n <= 0
// yields nil.
func Resample(data []float64, n int) []float64 {
	if len(data) == 0 || n <= 0 {
		return nil
	}
	switch {
	case len(data) == n:
		out := make([]float64, n)
		copy(out, data)
		return out
	case len(data) < n:
		return upsample(data, n)
	default:
		return downsample(data, n)
	}
}

func upsample(data []float64, n int) []float64 {
	out := make([]float64, n)
	step := 0.0
	if n > 1 {
		step = float64(len(data)-1) / float64(n-1)
	}
	for i := range n {
		pos := float64(i) * step
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if hi >= len(data) {
			hi = len(data) - 1
		}
		if lo > hi {
			lo = hi
		}
		frac := pos - float64(lo)
		out[i] = data[lo]*(1-frac) + data[hi]*frac
	}
	return out
}

func downsample(data []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range n {
		start := i * len(data) / n
		end := (i + 1) * len(data) / n
		if end > len(data) {
			end = len(data)
		}
		if end <= start {
			continue // empty bucket stays 0
		}
		var sum float64
		for _, v := range data[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
