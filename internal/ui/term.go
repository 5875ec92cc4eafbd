package ui

import "golang.org/x/term"

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// IsTTY reports whether the given file descriptor refers to a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TermWidth returns the terminal width in columns, or 80 if it cannot be determined.
func TermWidth(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// TermHeight returns the terminal height in rows, or 24 if it cannot be determined.
func TermHeight(fd uintptr) int {
	_, h, err := term.GetSize(int(fd))
	if err != nil || h <= 0 {
		return 24
	}
	return h
}

// ChartWidth picks the drawing width: an explicit request wins, otherwise
// the terminal width less reserved columns (labels, axis), never below 1.
func ChartWidth(requested, reserved int, fd uintptr) int {
	if requested > 0 {
		return requested
	}
	return max(TermWidth(fd)-reserved, 1)
}
