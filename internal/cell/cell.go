// Package cell measures, truncates and aligns text inside fixed-width
// character cells. Widths are counted in runes after NFC normalization, so a
// decomposed "é" occupies one column like its precomposed form.
package cell

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Alignment positions text within a cell.
type Alignment int

const (
	Left Alignment = iota
	Right
	Center
)

func (a Alignment) String() string {
	switch a {
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return "left"
	}
}

// ParseAlignment maps "left", "right" or "center" (or their first letter) to
// an Alignment. Anything else is Left.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right
	case "center", "centre", "c":
		return Center
	default:
		return Left
	}
}

// Width returns the display width of s in columns.
func Width(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// Truncate cuts s to at most w columns. It never adds an ellipsis.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) <= w {
		return s
	}
	r := []rune(s)
	return string(r[:w])
}

// Fit truncates s to w columns and pads it to exactly w using align.
func Fit(s string, w int, align Alignment) string {
	s = Truncate(s, w)
	gap := w - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case Right:
		return strings.Repeat(" ", gap) + s
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Widest returns the largest Width among ss.
func Widest(ss ...string) int {
	w := 0
	for _, s := range ss {
		w = max(w, Width(s))
	}
	return w
}
