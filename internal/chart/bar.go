package chart

import (
	"math"
	"strings"

	"github.com/bamsammich/termchart/internal/cell"
	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/scale"
	"github.com/bamsammich/termchart/internal/series"
)

// BarOptions configures Bars.
type BarOptions struct {
	// Width is the bar area in columns, excluding label and value.
	Width int
	// LabelWidth pads or truncates labels. Zero uses the longest label.
	LabelWidth int
	ShowValues bool
	// Format renders the value suffix. Nil uses format.Compact.
	Format func(float64) string
}

// Bars renders one horizontal bar per item, scaled so the largest value
// spans the full width. Bar length is rounded to the nearest eighth of a
// cell: whole cells use the item glyph (█ by default) and the remainder one
// partial glyph. When every value is zero all bars are empty.
func Bars(items []series.CategoryValue, opts BarOptions) []string {
	if len(items) == 0 || opts.Width <= 0 {
		return nil
	}

	labelW := opts.LabelWidth
	if labelW <= 0 {
		for _, it := range items {
			labelW = max(labelW, cell.Width(it.Label))
		}
	}
	fmtValue := opts.Format
	if fmtValue == nil {
		fmtValue = format.Compact
	}
	hi := series.MaxValue(items)

	lines := make([]string, 0, len(items))
	for _, it := range items {
		var b strings.Builder
		if labelW > 0 {
			b.WriteString(cell.Fit(it.Label, labelW, cell.Left))
			b.WriteByte(' ')
		}
		b.WriteString(bar(it.Value, hi, opts.Width, it.Glyph))
		if opts.ShowValues {
			b.WriteByte(' ')
			b.WriteString(fmtValue(it.Value))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// bar draws value/hi of width cells at eighth-cell resolution, padded with
// spaces to exactly width columns.
func bar(value, hi float64, width int, glyph rune) string {
	if glyph == 0 {
		glyph = scale.Blocks.Full()
	}
	eighths := 0
	if hi > 0 && value > 0 {
		eighths = int(math.Round(value / hi * float64(width) * 8))
	}
	eighths = min(eighths, width*8)
	whole, rem := eighths/8, eighths%8

	var b strings.Builder
	b.WriteString(strings.Repeat(string(glyph), whole))
	used := whole
	if rem > 0 {
		b.WriteRune(scale.Eighths.Index(rem - 1))
		used++
	}
	b.WriteString(strings.Repeat(" ", width-used))
	return b.String()
}
