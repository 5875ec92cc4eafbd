package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/termchart/internal/config"
	"github.com/bamsammich/termchart/internal/ui"
)

// isolate points config lookup at an empty temp dir so a developer's own
// config and environment do not leak into the run.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvPath, filepath.Join(dir, "config.toml"))
	for _, k := range []string{"WIDTH", "HEIGHT", "FORMAT", "TOP", "LEGEND", "AXIS", "LOG", "VERBOSE", "QUIET"} {
		t.Setenv(envPrefix+k, "")
		os.Unsetenv(envPrefix + k) //nolint:errcheck // restored by t.Setenv cleanup
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "termchart dev\n", out)
}

func TestRun_Spark(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "s.json", `{"values": [1, 2, 3, 4, 5, 6, 7, 8]}`)

	code, out, errOut := runCLI("spark", "-w", "8", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "▁▂▃▄▅▆▇█\n", out)
}

func TestRun_SparkCSV(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "s.csv", "time,value\n1,1\n2,2\n3,3\n4,4\n5,5\n6,6\n7,7\n8,8\n")

	code, out, errOut := runCLI("spark", "--width", "8", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "▁▂▃▄▅▆▇█\n", out)
}

func TestRun_Progress(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI("progress", "-w", "8", "1", "4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "██░░░░░░ 25%\n", out)

	code, out, _ = runCLI("progress", "-w", "8", "--no-percent", "1", "4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "██░░░░░░\n", out)
}

func TestRun_ProgressBadNumber(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI("progress", "x", "4")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `value "x"`)
}

func TestRun_EmptyDatasetExitsOne(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "empty.json", "")

	code, out, errOut := runCLI("spark", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error:")
}

func TestRun_MissingSectionExitsOne(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "cats.json", `{"categories": [{"label": "a", "value": 1}]}`)

	code, _, errOut := runCLI("geo", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "countries")
}

func TestRun_MissingFileExitsTwo(t *testing.T) {
	dir := isolate(t)
	code, _, errOut := runCLI("spark", filepath.Join(dir, "nope.json"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "nope.json")
}

func TestRun_WatchOnStdinRejected(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI("spark", "--watch", "-f", "json")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--watch")
}

func TestRun_Bars(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "c.csv", "label,value\napi,10\nweb,5\n")

	code, out, errOut := runCLI("bars", "-w", "10", path)
	require.Equal(t, 0, code, errOut)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "api "))
	assert.Contains(t, lines[0], strings.Repeat("█", 10))
}

func TestRun_TableFromCountries(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "geo.csv", "code,requests\nUS,300\nDE,100\n")

	code, out, errOut := runCLI("table", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "75")
}

func TestRun_EnvOverridesConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "config.toml", "[defaults]\nwidth = 4\n")
	path := writeFile(t, dir, "s.json", `{"values": [1, 2, 3, 4, 5, 6, 7, 8]}`)

	code, out, _ := runCLI("spark", path)
	require.Equal(t, 0, code)
	assert.Equal(t, 4, len([]rune(strings.TrimSpace(out))), "config default applies")

	t.Setenv(envPrefix+"WIDTH", "6")
	code, out, _ = runCLI("spark", path)
	require.Equal(t, 0, code)
	assert.Equal(t, 6, len([]rune(strings.TrimSpace(out))), "environment beats config")

	code, out, _ = runCLI("spark", "-w", "8", path)
	require.Equal(t, 0, code)
	assert.Equal(t, 8, len([]rune(strings.TrimSpace(out))), "flag beats environment")
}

func TestRun_BadEnvValue(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "s.json", `{"values": [1, 2]}`)
	t.Setenv(envPrefix+"WIDTH", "wide")

	code, _, errOut := runCLI("spark", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "TERMCHART_WIDTH")
}

func TestRun_ConfigInitAndPath(t *testing.T) {
	dir := isolate(t)

	code, out, _ := runCLI("config", "path")
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(dir, "config.toml")+"\n", out)

	code, out, errOut := runCLI("config", "init")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "wrote")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	code, _, errOut = runCLI("config", "init")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "exists")

	// The starter file must not pin charts to a fixed width.
	path := writeFile(t, dir, "s.json", `{"values": [1, 2, 3]}`)
	code, out, errOut = runCLI("spark", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, ui.DefaultWidth, len([]rune(strings.TrimSpace(out))))
}

func TestRun_LogFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "run.log")
	path := writeFile(t, dir, "s.json", `{"values": [1, 2]}`)

	code, _, _ := runCLI("spark", "-w", "2", "--log", logPath, path)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"termchart starting"`)
}

func TestRun_LogFileFromEnv(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "env.log")
	path := writeFile(t, dir, "s.json", `{"values": [1, 2]}`)
	t.Setenv(envPrefix+"LOG", logPath)

	code, _, _ := runCLI("spark", "-w", "2", path)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"flag from environment"`)
	assert.Contains(t, string(data), `"flag":"log"`)
	assert.Contains(t, string(data), `"msg":"termchart starting"`)
}

func TestRun_VerbosityFromEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "s.json", `{"values": [1, 2]}`)

	t.Setenv(envPrefix+"VERBOSE", "true")
	code, _, errOut := runCLI("spark", "-w", "2", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `msg="termchart starting"`)

	// A broken config file only warns, so quiet mode hides it.
	writeFile(t, dir, "config.toml", "not toml [[[")
	t.Setenv(envPrefix+"VERBOSE", "false")
	code, _, errOut = runCLI("spark", "-w", "2", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "failed to load config")

	t.Setenv(envPrefix+"QUIET", "true")
	code, _, errOut = runCLI("spark", "-w", "2", path)
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestWatch_SkipsUnchangedFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	draw := func() ([]string, error) {
		n := calls.Add(1)
		switch {
		case n == 2:
			return nil, errors.New("half-written file")
		case n >= 4:
			cancel()
		}
		if n >= 3 {
			return []string{"second"}, nil
		}
		return []string{"first"}, nil
	}

	var out bytes.Buffer
	err := watch(ctx, &out, time.Millisecond, draw)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", out.String())
	assert.GreaterOrEqual(t, calls.Load(), int32(4))
}
