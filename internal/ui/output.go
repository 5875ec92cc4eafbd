package ui

import (
	"bufio"
	"io"
)

// WriteLines writes each rendered line followed by a newline. Nothing is
// written for an empty slice.
func WriteLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)  //nolint:errcheck // surfaced by Flush
		bw.WriteByte('\n') //nolint:errcheck // surfaced by Flush
	}
	return bw.Flush()
}

// ClearScreen moves the cursor home and clears the display, used between
// --watch redraws on a terminal.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[H\x1b[2J")
	return err
}
