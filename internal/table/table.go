// Package table lays out rows of text as a bordered grid with single-line
// box-drawing characters.
package table

import (
	"strings"

	"github.com/bamsammich/termchart/internal/cell"
)

// Alignment positions a cell's text within its column.
type Alignment = cell.Alignment

// Column alignments.
const (
	Left   = cell.Left
	Right  = cell.Right
	Center = cell.Center
)

// Options configures Render. Both slices are indexed by column; missing or
// non-positive widths are inferred and missing alignments default to Left.
type Options struct {
	Widths []int
	Align  []Alignment
}

// padding is the blank column kept on each side of a cell's text.
const padding = 1

// Render draws headers and rows as a grid:
//
//	┌────┬────┐
//	│ X  │ Y  │
//	├────┼────┤
//	│ a  │ 1  │
//	│ bb │ 22 │
//	└────┴────┘
//
// The column count is len(headers), or the longest row when there are no
// headers (in which case the header row and separator are omitted). Short
// rows get empty cells, surplus cells are dropped, and text wider than its
// column is truncated rather than wrapped. With no columns the result is nil.
func Render(rows [][]string, headers []string, opts Options) []string {
	widths := Widths(rows, headers, opts.Widths)
	if len(widths) == 0 {
		return nil
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, border(widths, '┌', '┬', '┐'))
	if len(headers) > 0 {
		lines = append(lines, row(headers, widths, opts.Align))
		lines = append(lines, border(widths, '├', '┼', '┤'))
	}
	for _, r := range rows {
		lines = append(lines, row(r, widths, opts.Align))
	}
	lines = append(lines, border(widths, '└', '┴', '┘'))
	return lines
}

// Widths resolves the width of every column. Explicit positive widths win;
// otherwise a column is as wide as its widest header or cell plus two
// columns of padding.
func Widths(rows [][]string, headers []string, explicit []int) []int {
	cols := len(headers)
	if cols == 0 {
		for _, r := range rows {
			cols = max(cols, len(r))
		}
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	for i := range widths {
		if i < len(explicit) && explicit[i] > 0 {
			widths[i] = explicit[i]
			continue
		}
		w := 0
		if i < len(headers) {
			w = cell.Width(headers[i])
		}
		for _, r := range rows {
			if i < len(r) {
				w = max(w, cell.Width(r[i]))
			}
		}
		widths[i] = w + 2*padding
	}
	return widths
}

func border(widths []int, left, mid, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteRune(mid)
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteRune(right)
	return b.String()
}

func row(cells []string, widths []int, align []Alignment) string {
	var b strings.Builder
	b.WriteString("│")
	for i, w := range widths {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		a := Left
		if i < len(align) {
			a = align[i]
		}
		b.WriteString(pad(text, w, a))
		b.WriteString("│")
	}
	return b.String()
}

// pad fits text into a column of width w, keeping one blank on each side
// when the column is wide enough to afford it.
func pad(text string, w int, a Alignment) string {
	if w <= 2*padding {
		return cell.Fit(text, w, a)
	}
	space := strings.Repeat(" ", padding)
	return space + cell.Fit(text, w-2*padding, a) + space
}
