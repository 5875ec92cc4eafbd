package chart

import (
	"math"
	"strings"

	"github.com/bamsammich/termchart/internal/cell"
	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/scale"
)

// cellFunc picks the glyph for one grid cell. level is the column value in
// row units (normalized value * height); row 0 is the bottom row.
type cellFunc func(level float64, row int) rune

// Histogram renders data as vertical bars, top row first. A cell is full
// once the column reaches the middle of its row band; the boundary row shows
// a sub-block proportional to how far into the lower half of the band the
// value reaches. A value exactly on the half-band threshold is full, a value
// exactly on the band floor gets the lowest sub-block, so every column shows
// at least one glyph.
func Histogram(data []float64, opts Options) []string {
	return waveform(data, opts, histogramCell)
}

// Area renders data as a filled silhouette using fractional row heights: a
// row is full when the column covers it entirely and partially filled with
// an eighth-resolution glyph where the column top falls inside it.
func Area(data []float64, opts Options) []string {
	return waveform(data, opts, areaCell)
}

func histogramCell(level float64, row int) rune {
	r := float64(row)
	switch {
	case level >= r+0.5:
		return scale.Blocks.Full()
	case level >= r:
		return scale.Blocks.Index(int(math.Floor((level - r) * 16)))
	default:
		return ' '
	}
}

func areaCell(level float64, row int) rune {
	r := float64(row)
	switch {
	case level >= r+1:
		return scale.Blocks.Full()
	case level > r:
		return scale.Blocks.Index(int(math.Floor((level - r) * 8)))
	default:
		return ' '
	}
}

func waveform(data []float64, opts Options, cell cellFunc) []string {
	if opts.Width <= 0 || opts.Height <= 0 || len(data) == 0 {
		return nil
	}

	b := opts.bounds(data)
	cols := scale.Resample(data, opts.Width)
	levels := make([]float64, len(cols))
	for i, v := range cols {
		levels[i] = scale.Normalize(v, b.Min, b.Max) * float64(opts.Height)
	}

	lines := make([]string, 0, opts.Height+2)
	if opts.Title != "" {
		lines = append(lines, opts.Title)
	}

	row := make([]rune, opts.Width)
	for r := opts.Height - 1; r >= 0; r-- {
		for c, level := range levels {
			row[c] = cell(level, r)
		}
		line := string(row)
		if opts.ShowAxis {
			line = axisPrefix(r, opts.Height, b) + line
		}
		lines = append(lines, line)
	}

	if opts.ShowAxis {
		lines = append(lines, strings.Repeat(" ", axisLabelWidth)+"└"+strings.Repeat("─", opts.Width))
	}
	return lines
}

// axisPrefix labels the top row with the max and the bottom row with the
// min. A single-row chart carries the max label.
func axisPrefix(row, height int, b scale.Bounds) string {
	switch row {
	case height - 1:
		return axisLabel(b.Max)
	case 0:
		return axisLabel(b.Min)
	default:
		return strings.Repeat(" ", axisLabelWidth) + "│"
	}
}

// axisLabel right-aligns v in the gutter and clips it so every row keeps
// the same width.
func axisLabel(v float64) string {
	return cell.Fit(format.Compact(v), axisLabelWidth, cell.Right) + "┤"
}
