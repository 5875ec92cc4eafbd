package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bamsammich/termchart/internal/cell"
	"github.com/bamsammich/termchart/internal/chart"
	"github.com/bamsammich/termchart/internal/dataset"
	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/geo"
	"github.com/bamsammich/termchart/internal/scale"
	"github.com/bamsammich/termchart/internal/series"
	"github.com/bamsammich/termchart/internal/table"
	"github.com/bamsammich/termchart/internal/ui"
)

// errNoData marks a dataset that parsed but lacks what a chart draws.
var errNoData = errors.New("no data for this chart")

// renderFunc turns a loaded dataset into output lines.
type renderFunc func(d *dataset.Dataset) ([]string, error)

// watchFlags are shared by every file-based chart command.
type watchFlags struct {
	enabled  bool
	interval time.Duration
}

// newChartCmd wires the file argument, loading and --watch around render.
func newChartCmd(g *globals, use, short string, render renderFunc) *cobra.Command {
	w := &watchFlags{}
	cmd := &cobra.Command{
		Use:           use + " [file]",
		Short:         short,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dataset.Stdin
			if len(args) == 1 {
				path = args[0]
			}
			f, err := g.parsedFormat()
			if err != nil {
				return err
			}
			draw := func() ([]string, error) {
				d, err := dataset.Load(path, f)
				if err != nil {
					return nil, err
				}
				return render(d)
			}
			if w.enabled {
				if path == dataset.Stdin {
					return errors.New("--watch needs a file, not stdin")
				}
				return watch(cmd.Context(), g.out, w.interval, draw)
			}
			lines, err := draw()
			if err != nil {
				return err
			}
			return ui.WriteLines(g.out, lines)
		},
	}
	cmd.Flags().BoolVar(&w.enabled, "watch", false, "keep re-reading the file and redraw when the chart changes")
	cmd.Flags().DurationVar(&w.interval, "interval", 2*time.Second, "minimum time between --watch redraws")
	return cmd
}

func needValues(d *dataset.Dataset) ([]float64, error) {
	values := d.Values()
	if len(values) == 0 {
		return nil, fmt.Errorf("series: %w", errNoData)
	}
	return values, nil
}

// categoriesOf prefers explicit categories and falls back to country
// request counts.
func categoriesOf(d *dataset.Dataset) ([]series.CategoryValue, error) {
	if len(d.Categories) > 0 {
		return d.Categories, nil
	}
	if len(d.Countries) > 0 {
		out := make([]series.CategoryValue, len(d.Countries))
		for i, c := range d.Countries {
			out[i] = series.CategoryValue{Label: c.DisplayName(), Value: float64(c.Requests)}
		}
		return out, nil
	}
	return nil, fmt.Errorf("categories: %w", errNoData)
}

func needCountries(d *dataset.Dataset) ([]geo.CountryStat, error) {
	if len(d.Countries) == 0 {
		return nil, fmt.Errorf("countries: %w", errNoData)
	}
	return d.Countries, nil
}

func newSparkCmd(g *globals) *cobra.Command {
	cmd := newChartCmd(g, "spark", "Draw a one-line sparkline of a series", func(d *dataset.Dataset) ([]string, error) {
		values, err := needValues(d)
		if err != nil {
			return nil, err
		}
		return []string{chart.Sparkline(values, g.chartWidth(0))}, nil
	})
	return cmd
}

// waveformFlags configure hist and area.
type waveformFlags struct {
	axis  bool
	title string
	min   float64
	max   float64
}

func (wf *waveformFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&wf.axis, "axis", false, "draw min/max labels and a baseline")
	cmd.Flags().StringVar(&wf.title, "title", "", "title line above the chart")
	cmd.Flags().Float64Var(&wf.min, "min", 0, "fixed lower bound (default: data minimum)")
	cmd.Flags().Float64Var(&wf.max, "max", 0, "fixed upper bound (default: data maximum)")
}

func (wf *waveformFlags) options(cmd *cobra.Command, g *globals, values []float64) chart.Options {
	reserved := 0
	if wf.axis {
		reserved = chart.AxisWidth
	}
	opts := chart.Options{
		Width:    g.chartWidth(reserved),
		Height:   g.height,
		ShowAxis: wf.axis,
		Title:    wf.title,
	}
	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		b := scale.Span(values)
		if cmd.Flags().Changed("min") {
			b.Min = wf.min
		}
		if cmd.Flags().Changed("max") {
			b.Max = wf.max
		}
		opts.Bounds = &b
	}
	return opts
}

func newWaveformCmd(g *globals, use, short string, draw func([]float64, chart.Options) []string) *cobra.Command {
	wf := &waveformFlags{}
	var cmd *cobra.Command
	cmd = newChartCmd(g, use, short, func(d *dataset.Dataset) ([]string, error) {
		values, err := needValues(d)
		if err != nil {
			return nil, err
		}
		return draw(values, wf.options(cmd, g, values)), nil
	})
	wf.register(cmd)
	return cmd
}

func newHistCmd(g *globals) *cobra.Command {
	return newWaveformCmd(g, "hist", "Draw a multi-row histogram of a series", chart.Histogram)
}

func newAreaCmd(g *globals) *cobra.Command {
	return newWaveformCmd(g, "area", "Draw a filled area chart of a series", chart.Area)
}

func newBarsCmd(g *globals) *cobra.Command {
	var showValues bool
	cmd := newChartCmd(g, "bars", "Draw horizontal bars for categories", func(d *dataset.Dataset) ([]string, error) {
		items, err := categoriesOf(d)
		if err != nil {
			return nil, err
		}
		labels := make([]string, len(items))
		values := make([]string, len(items))
		for i, it := range items {
			labels[i] = it.Label
			values[i] = format.Compact(it.Value)
		}
		reserved := cell.Widest(labels...) + 1
		if showValues {
			reserved += cell.Widest(values...) + 1
		}
		return chart.Bars(items, chart.BarOptions{
			Width:      g.chartWidth(reserved),
			ShowValues: showValues,
		}), nil
	})
	cmd.Flags().BoolVar(&showValues, "values", false, "print each value after its bar")
	return cmd
}

func newProgressCmd(g *globals) *cobra.Command {
	var noPercent bool
	cmd := &cobra.Command{
		Use:           "progress <value> <total>",
		Short:         "Draw a progress bar for value out of total",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			total, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("total %q: %w", args[1], err)
			}
			reserved := 0
			if !noPercent {
				reserved = 5
			}
			line := chart.Progress(value, total, g.chartWidth(reserved), !noPercent)
			return ui.WriteLines(g.out, []string{line})
		},
	}
	cmd.Flags().BoolVar(&noPercent, "no-percent", false, "omit the percentage after the bar")
	return cmd
}

func newDonutCmd(g *globals) *cobra.Command {
	var legend bool
	cmd := newChartCmd(g, "donut", "Draw category shares as a donut (size = --height)", func(d *dataset.Dataset) ([]string, error) {
		items, err := categoriesOf(d)
		if err != nil {
			return nil, err
		}
		return chart.Donut(items, chart.DonutOptions{Size: g.height, Legend: legend}), nil
	})
	cmd.Flags().BoolVar(&legend, "legend", true, "list each category with its share below the donut")
	return cmd
}

func newTableCmd(g *globals) *cobra.Command {
	var (
		widths []int
		align  []string
		top    int
	)
	cmd := newChartCmd(g, "table", "Draw the dataset as a bordered table", func(d *dataset.Dataset) ([]string, error) {
		if len(d.Countries) > 0 {
			return geo.Table(d.Countries, top), nil
		}
		rows, headers := tableRows(d)
		if len(rows) == 0 {
			return nil, fmt.Errorf("table: %w", errNoData)
		}
		opts := table.Options{Widths: widths, Align: []table.Alignment{table.Left, table.Right}}
		if len(align) > 0 {
			opts.Align = make([]table.Alignment, len(align))
			for i, a := range align {
				opts.Align[i] = cell.ParseAlignment(a)
			}
		}
		return table.Render(rows, headers, opts), nil
	})
	cmd.Flags().IntSliceVar(&widths, "widths", nil, "explicit column widths, 0 to infer (e.g. 12,0)")
	cmd.Flags().StringSliceVar(&align, "align", nil, "column alignment: left, right or center (e.g. left,right)")
	cmd.Flags().IntVar(&top, "top", 0, "limit country tables to the N busiest (0 = all)")
	return cmd
}

func tableRows(d *dataset.Dataset) ([][]string, []string) {
	if len(d.Categories) > 0 {
		rows := make([][]string, len(d.Categories))
		for i, c := range d.Categories {
			rows[i] = []string{c.Label, format.Compact(c.Value)}
		}
		return rows, []string{"Label", "Value"}
	}
	rows := make([][]string, len(d.Series))
	for i, p := range d.Series {
		ts := strconv.Itoa(i + 1)
		if !p.Time.IsZero() {
			ts = p.Time.Format(time.RFC3339)
		}
		rows[i] = []string{ts, format.Compact(p.Value)}
	}
	return rows, []string{"Time", "Value"}
}

func newGeoCmd(g *globals) *cobra.Command {
	var (
		top    int
		legend bool
	)
	cmd := newChartCmd(g, "geo", "Draw per-country traffic on a world map", func(d *dataset.Dataset) ([]string, error) {
		stats, err := needCountries(d)
		if err != nil {
			return nil, err
		}
		return geo.Map(stats, geo.MapOptions{Top: top, Legend: legend}), nil
	})
	cmd.Flags().IntVar(&top, "top", geo.DefaultTop, "plot the N busiest countries")
	cmd.Flags().BoolVar(&legend, "legend", true, "list plotted countries and the shade key below the map")
	return cmd
}

func newRegionsCmd(g *globals) *cobra.Command {
	cmd := newChartCmd(g, "regions", "Draw per-continent request totals as bars", func(d *dataset.Dataset) ([]string, error) {
		stats, err := needCountries(d)
		if err != nil {
			return nil, err
		}
		// Longest region label plus a compact value.
		return geo.Regions(stats, g.chartWidth(len("North America")+8)), nil
	})
	return cmd
}
