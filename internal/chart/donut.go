package chart

import (
	"fmt"
	"math"

	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/series"
)

// donutGlyphs is the fallback palette for categories without a glyph.
var donutGlyphs = []rune("█▓▒░●◆■▲")

const donutHole = 0.4 // inner radius as a fraction of the outer radius

// DonutOptions configures Donut.
type DonutOptions struct {
	// Size is the grid height in rows; the grid is twice as wide.
	Size   int
	Legend bool
}

// Donut rasterizes category shares onto a Size x 2*Size grid. Each cell
// centre is converted to polar coordinates around the grid centre (columns
// count half, compensating for tall character cells). Cells strictly inside
// the ring (0.4r, r) take the glyph of the first category whose cumulative
// share exceeds the cell angle, measured counter-clockwise from the positive
// x-axis as a fraction of a full turn. Other cells are blank. With Legend
// set, one "glyph label NN%" line per category follows the grid.
func Donut(items []series.CategoryValue, opts DonutOptions) []string {
	if opts.Size <= 0 || len(items) == 0 {
		return nil
	}

	total := series.Total(items)
	edges := cumulativeShares(items, total)
	glyphs := donutPalette(items)

	size := opts.Size
	radius := float64(size) / 2
	inner := donutHole * radius

	lines := make([]string, 0, size+len(items))
	row := make([]rune, size*2)
	for r := range size {
		y := radius - (float64(r) + 0.5)
		for c := range row {
			row[c] = ' '
			x := (float64(c) + 0.5 - float64(size)) / 2
			d := math.Hypot(x, y)
			if d <= inner || d >= radius {
				continue
			}
			angle := math.Atan2(y, x)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			turn := angle / (2 * math.Pi)
			for i, edge := range edges {
				if edge > turn {
					row[c] = glyphs[i]
					break
				}
			}
		}
		lines = append(lines, string(row))
	}

	if opts.Legend {
		for i, it := range items {
			pct := 0.0
			if total > 0 {
				pct = it.Value / total * 100
			}
			lines = append(lines, fmt.Sprintf("%c %s %s", glyphs[i], it.Label, format.Percentage(pct, 0)))
		}
	}
	return lines
}

// cumulativeShares returns the running share boundary of each category in
// input order. The last boundary is pinned to 1 so rounding never leaves a
// sliver of the ring unassigned. A zero total yields all-zero boundaries.
func cumulativeShares(items []series.CategoryValue, total float64) []float64 {
	edges := make([]float64, len(items))
	if total <= 0 {
		return edges
	}
	var run float64
	for i, it := range items {
		run += it.Value
		edges[i] = run / total
	}
	edges[len(edges)-1] = 1
	return edges
}

func donutPalette(items []series.CategoryValue) []rune {
	glyphs := make([]rune, len(items))
	for i, it := range items {
		glyphs[i] = it.Glyph
		if glyphs[i] == 0 {
			glyphs[i] = donutGlyphs[i%len(donutGlyphs)]
		}
	}
	return glyphs
}
