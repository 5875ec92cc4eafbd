package geo

import (
	"github.com/bamsammich/termchart/internal/chart"
	"github.com/bamsammich/termchart/internal/series"
)

// RollUp sums requests per continent. The result always has six entries in
// AllRegions order; countries missing from the lookup table are dropped.
func RollUp(stats []CountryStat) []series.CategoryValue {
	var totals [regionCount]float64
	for _, s := range stats {
		if r, ok := RegionOf(s.Code); ok {
			totals[r] += float64(s.Requests)
		}
	}

	out := make([]series.CategoryValue, 0, regionCount)
	for _, r := range AllRegions() {
		out = append(out, series.CategoryValue{Label: r.String(), Value: totals[r]})
	}
	return out
}

// Regions renders the continental roll-up as a six-row bar chart with
// compact request counts. Empty stats yield nil.
func Regions(stats []CountryStat, width int) []string {
	if len(stats) == 0 {
		return nil
	}
	return chart.Bars(RollUp(stats), chart.BarOptions{Width: width, ShowValues: true})
}
