package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/termchart/internal/cell"
	"github.com/bamsammich/termchart/internal/chart"
	"github.com/bamsammich/termchart/internal/dataset"
	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/geo"
	"github.com/bamsammich/termchart/internal/scale"
)

type viewMode int

const (
	viewOverview viewMode = iota
	viewArea
	viewCategories
	viewGeo
	viewCount
)

func (v viewMode) String() string {
	switch v {
	case viewOverview:
		return "overview"
	case viewArea:
		return "area"
	case viewCategories:
		return "categories"
	case viewGeo:
		return "geo"
	default:
		return "unknown"
	}
}

// block is a titled run of chart lines drawn in one style.
type block struct {
	title string
	lines []string
	style lipgloss.Style
}

// row is laid out left to right; a view is rows top to bottom.
type row []block

const blockGap = "   "

// emptyBlock stands in for a chart the dataset has no data for.
func emptyBlock(title, msg string) block {
	return block{title: title, lines: []string{msg}, style: styleEmpty}
}

func (b block) render(styled bool) string {
	var parts []string
	if b.title != "" {
		t := b.title
		if styled {
			t = styleSection.Render(t)
		}
		parts = append(parts, t)
	}
	for _, l := range b.lines {
		if styled {
			l = b.style.Render(l)
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, "\n")
}

// renderRows joins blocks horizontally within a row and rows vertically.
// Unstyled output is plain text suitable for saving to a file.
func renderRows(rows []row, styled bool) string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		cols := make([]string, 0, len(r)*2)
		for i, b := range r {
			if i > 0 {
				cols = append(cols, blockGap)
			}
			cols = append(cols, b.render(styled))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(out, "\n\n")
}

// layout builds the rows for a view at the given content size.
func layout(mode viewMode, d *dataset.Dataset, live []float64, width, height int) []row {
	width = max(width, 20)
	height = max(height, 6)
	if d == nil {
		return []row{{emptyBlock("", "waiting for data…")}}
	}

	switch mode {
	case viewArea:
		return areaLayout(d, width, height)
	case viewCategories:
		return categoriesLayout(d, width, height)
	case viewGeo:
		return geoLayout(d, width, height)
	default:
		return overviewLayout(d, live, width, height)
	}
}

func overviewLayout(d *dataset.Dataset, live []float64, width, height int) []row {
	values := d.Values()
	if len(values) == 0 {
		return []row{{emptyBlock("", "no series in dataset")}}
	}
	b := scale.Span(values)
	latest := values[len(values)-1]
	summary := fmt.Sprintf("%s   min %s   max %s   %d points",
		format.Compact(latest), format.Compact(b.Min), format.Compact(b.Max), len(values))

	plot := width - chart.AxisWidth
	histHeight := max(height-10, 3)

	rows := []row{
		{{title: "latest", lines: []string{summary}, style: styleBigNumber}},
		{{title: "live", lines: []string{chart.Sparkline(live, width)}, style: styleSparkline}},
		{{title: "history", lines: chart.Histogram(values, chart.Options{
			Width: plot, Height: histHeight, ShowAxis: true,
		}), style: styleWaveform}},
		{{title: "latest vs max", lines: []string{chart.Progress(latest, b.Max, plot, true)}, style: styleProgress}},
	}
	if len(live) == 0 {
		rows[1] = row{emptyBlock("live", "no samples yet")}
	}
	return rows
}

func areaLayout(d *dataset.Dataset, width, height int) []row {
	values := d.Values()
	if len(values) == 0 {
		return []row{{emptyBlock("", "no series in dataset")}}
	}
	lines := chart.Area(values, chart.Options{
		Width:    width - chart.AxisWidth,
		Height:   height - 2,
		ShowAxis: true,
	})
	title := "area"
	if span := d.Series.Span(); span > 0 {
		title = fmt.Sprintf("area over %s", format.Elapsed(span))
	}
	return []row{{{title: title, lines: lines, style: styleWaveform}}}
}

func categoriesLayout(d *dataset.Dataset, width, height int) []row {
	if len(d.Categories) == 0 {
		return []row{{emptyBlock("", "no categories in dataset")}}
	}

	size := max(min(height-len(d.Categories)-1, width/4), 4)
	donut := chart.Donut(d.Categories, chart.DonutOptions{Size: size, Legend: true})

	barWidth := max(width-2*size-len(blockGap)-labelWidth(d)-10, 4)
	bars := chart.Bars(d.Categories, chart.BarOptions{Width: barWidth, ShowValues: true})

	return []row{{
		{title: "values", lines: bars, style: styleBars},
		{title: "share", lines: donut, style: styleDonut},
	}}
}

func labelWidth(d *dataset.Dataset) int {
	labels := make([]string, len(d.Categories))
	for i, c := range d.Categories {
		labels[i] = c.Label
	}
	return cell.Widest(labels...)
}

func geoLayout(d *dataset.Dataset, width, height int) []row {
	if len(d.Countries) == 0 {
		return []row{{emptyBlock("", "no countries in dataset")}}
	}

	var rows []row
	if width >= geo.MapWidth {
		rows = append(rows, row{{title: "traffic", lines: geo.Map(d.Countries, geo.MapOptions{Legend: true}), style: styleMap}})
	} else {
		rows = append(rows, row{emptyBlock("traffic", "widen the terminal to show the map")})
	}

	tableRows := max(height-geo.MapHeight-8, 3)
	rows = append(rows, row{
		{title: "top countries", lines: geo.Table(d.Countries, tableRows), style: styleTable},
		{title: "regions", lines: geo.Regions(d.Countries, 16), style: styleBars},
	})
	return rows
}
