package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/termchart/internal/config"
	"github.com/bamsammich/termchart/internal/dataset"
	"github.com/bamsammich/termchart/internal/ui"
)

var version = "dev"

// envPrefix namespaces environment overrides: --width reads TERMCHART_WIDTH.
const envPrefix = "TERMCHART_"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	width    int
	height   int
	format   string
	logFile  string
	verbose  bool
	quiet    bool
	showVer  bool
	cfg      config.Config
	out      io.Writer
	errOut   io.Writer
	closeLog func()
}

func run(args []string, stdout, stderr io.Writer) int {
	g := &globals{out: stdout, errOut: stderr}
	root := newRootCmd(g)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	if g.closeLog != nil {
		g.closeLog()
	}
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errNoData) || errors.Is(err, dataset.ErrEmpty) {
			return 1 // readable input, nothing to draw
		}
		return 2
	}
	return 0
}

func newRootCmd(g *globals) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termchart",
		Short: "Render sparklines, histograms, bars, donuts, tables and world maps in the terminal",
		Long: `termchart renders numeric series, category shares and per-country traffic
as Unicode block charts sized to the terminal.

Input is a JSON, CSV or TOML file (optionally .zst compressed), or - for stdin
together with --format. Flag defaults can be set in the config file
(see "termchart config path") or as TERMCHART_<FLAG> environment variables,
which may also live in a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.showVer {
				fmt.Fprintf(g.out, "termchart %s\n", version)
				return nil
			}
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&g.width, "width", "w", 0, "chart width in columns (default: terminal width)")
	pf.IntVar(&g.height, "height", 8, "chart height in rows")
	pf.StringVarP(&g.format, "format", "f", "", "input format: json, csv or toml (default: from extension)")
	pf.StringVar(&g.logFile, "log", "", "write structured JSON log to FILE")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.Flags().BoolVar(&g.showVer, "version", false, "print version and exit")

	rootCmd.AddCommand(
		newSparkCmd(g),
		newHistCmd(g),
		newAreaCmd(g),
		newBarsCmd(g),
		newProgressCmd(g),
		newDonutCmd(g),
		newTableCmd(g),
		newGeoCmd(g),
		newRegionsCmd(g),
		newDashCmd(g),
		newConfigCmd(g),
		newDocsCmd(),
	)
	return rootCmd
}

// setup runs before every command: .env, environment overrides, logging,
// then config file defaults. Precedence is flag > env > config > built-in.
func (g *globals) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	// Environment first so TERMCHART_LOG, _VERBOSE and _QUIET shape logging.
	fromEnv, err := applyEnv(cmd.Flags())
	if err != nil {
		return err
	}

	if err := g.setupLogging(); err != nil {
		return err
	}
	for _, name := range fromEnv {
		slog.Debug("flag from environment", "flag", name)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config", "error", err)
	}
	g.cfg = cfg
	applyConfigDefaults(cmd, cfg.Defaults)

	slog.Debug("termchart starting", "command", cmd.Name(), "config", config.Path())
	return nil
}

func (g *globals) setupLogging() error {
	logLevel := slog.LevelWarn
	if g.verbose {
		logLevel = slog.LevelDebug
	} else if g.quiet {
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(g.errOut, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	if g.logFile != "" {
		lf, err := os.Create(g.logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		g.closeLog = func() { lf.Close() } //nolint:errcheck // best-effort close on exit
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return nil
}

// applyEnv sets every flag not given on the command line from its
// TERMCHART_<NAME> variable, if present, and returns the names it set.
func applyEnv(fs *pflag.FlagSet) ([]string, error) {
	var (
		set  []string
		errs []error
	)
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		val, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		set = append(set, f.Name)
	})
	return set, errors.Join(errs...)
}

// applyConfigDefaults applies config file defaults for flags not explicitly
// set on the CLI or in the environment.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig) {
	fs := cmd.Flags()
	setInt := func(name string, v *int) {
		if v != nil && fs.Lookup(name) != nil && !fs.Changed(name) {
			fs.Set(name, fmt.Sprint(*v)) //nolint:errcheck // ints always parse
		}
	}
	setBool := func(name string, v *bool) {
		if v != nil && fs.Lookup(name) != nil && !fs.Changed(name) {
			fs.Set(name, fmt.Sprint(*v)) //nolint:errcheck // bools always parse
		}
	}
	setString := func(name string, v *string) {
		if v != nil && fs.Lookup(name) != nil && !fs.Changed(name) {
			if err := fs.Set(name, *v); err != nil {
				slog.Warn("ignoring config default", "flag", name, "error", err)
			}
		}
	}

	setInt("width", defaults.Width)
	setInt("height", defaults.Height)
	setBool("axis", defaults.Axis)
	setBool("legend", defaults.Legend)
	setInt("top", defaults.Top)
	setString("format", defaults.Format)
	setString("interval", defaults.Interval)
}

// parsedFormat validates --format.
func (g *globals) parsedFormat() (dataset.Format, error) {
	return dataset.ParseFormat(g.format)
}

// chartWidth resolves --width against the terminal, reserving columns for
// labels or axes drawn beside the chart.
func (g *globals) chartWidth(reserved int) int {
	return ui.ChartWidth(g.width, reserved, os.Stdout.Fd())
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
