package ui_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/termchart/internal/ui"
)

// consoleAndFile mirrors the CLI: warnings on the console, everything in a
// JSON log.
func consoleAndFile() (*bytes.Buffer, *bytes.Buffer, *ui.MultiHandler) {
	var console, file bytes.Buffer
	h := ui.NewMultiHandler(
		slog.NewTextHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	return &console, &file, h
}

func jsonRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestMultiHandler_RoutesByLevel(t *testing.T) {
	t.Parallel()

	console, file, h := consoleAndFile()
	logger := slog.New(h)
	logger.Debug("flag from environment", "flag", "width")
	logger.Warn("redraw failed", "error", "truncated")

	assert.NotContains(t, console.String(), "flag from environment")
	assert.Contains(t, console.String(), "redraw failed")
	assert.Contains(t, console.String(), "error=truncated")

	recs := jsonRecords(t, file)
	require.Len(t, recs, 2)
	assert.Equal(t, "flag from environment", recs[0]["msg"])
	assert.Equal(t, "width", recs[0]["flag"])
	assert.Equal(t, "WARN", recs[1]["level"])
}

func TestMultiHandler_Enabled(t *testing.T) {
	t.Parallel()

	_, _, h := consoleAndFile()
	ctx := context.Background()
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.True(t, h.Enabled(ctx, lvl), lvl.String())
	}

	quiet := ui.NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	assert.False(t, quiet.Enabled(ctx, slog.LevelWarn))
	assert.False(t, ui.NewMultiHandler().Enabled(ctx, slog.LevelError))
}

func TestMultiHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	console, file, h := consoleAndFile()
	logger := slog.New(h).With("source", "traffic.csv").WithGroup("reload")
	logger.Warn("load failed", "attempt", 3)

	assert.Contains(t, console.String(), "source=traffic.csv")
	assert.Contains(t, console.String(), "reload.attempt=3")

	recs := jsonRecords(t, file)
	require.Len(t, recs, 1)
	assert.Equal(t, "traffic.csv", recs[0]["source"])
	group, ok := recs[0]["reload"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 3.0, group["attempt"], 0)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("disk full")
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	text := slog.NewTextHandler(&console, nil)
	h := ui.NewMultiHandler(text, failingHandler{text})

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0)
	err := h.Handle(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, console.String(), "still written")
}
