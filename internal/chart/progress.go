package chart

import (
	"math"
	"strings"

	"github.com/bamsammich/termchart/internal/format"
)

const (
	progressFilled = '█'
	progressEmpty  = '░'
)

// Progress renders value/total as a bar of width cells, optionally followed by
// a rounded percentage (" 50%"). The ratio is clamped to [0, 1]; a
// non-positive total counts as 0%.
func Progress(value, total float64, width int, showPercent bool) string {
	if width <= 0 {
		return ""
	}

	ratio := 0.0
	if total > 0 {
		ratio = math.Min(math.Max(value/total, 0), 1)
	}
	filled := int(math.Round(ratio * float64(width)))

	var b strings.Builder
	b.WriteString(strings.Repeat(string(progressFilled), filled))
	b.WriteString(strings.Repeat(string(progressEmpty), width-filled))
	if showPercent {
		b.WriteByte(' ')
		b.WriteString(format.Percentage(ratio*100, 0))
	}
	return b.String()
}
