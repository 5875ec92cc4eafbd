package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/time/rate"

	"github.com/bamsammich/termchart/internal/ui"
)

// watch redraws until ctx is cancelled, at most once per interval. Frames
// identical to the previous one are not rewritten, and a failed redraw
// keeps the last good frame on screen.
func watch(ctx context.Context, w io.Writer, interval time.Duration, draw func() ([]string, error)) error {
	if interval <= 0 {
		interval = time.Second
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = ui.IsTTY(f.Fd())
	}

	var last uint64
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		lines, err := draw()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("redraw failed", "error", err)
			continue
		}

		digest := xxhash.Sum64String(strings.Join(lines, "\n"))
		if digest == last {
			continue
		}
		last = digest

		if tty {
			if err := ui.ClearScreen(w); err != nil {
				return err
			}
		}
		if err := ui.WriteLines(w, lines); err != nil {
			return err
		}
		slog.Debug("redrawn", "lines", len(lines))
	}
}
