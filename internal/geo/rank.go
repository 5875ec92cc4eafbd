// Package geo renders per-country traffic as a ranked table, a shaded world
// map and a continental roll-up.
package geo

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/table"
)

// CountryStat is the traffic recorded for one country. Share is the
// country's percentage of all requests.
type CountryStat struct {
	Code     string
	Name     string
	Requests int64
	Bytes    int64
	Share    float64
}

// DisplayName prefers the explicit name, then the lookup table, then the code.
func (s CountryStat) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return NameOf(s.Code)
}

// Ranked is a CountryStat with its 1-based rank and heat level.
type Ranked struct {
	CountryStat
	Rank int
	Heat int
}

// HeatLevels is the number of heat buckets.
const HeatLevels = 4

// HeatLevel buckets pct (a percentage of the maximum) into 0..3 with
// thresholds at 25, 50 and 75.
func HeatLevel(pct float64) int {
	switch {
	case pct < 25:
		return 0
	case pct < 50:
		return 1
	case pct < 75:
		return 2
	default:
		return 3
	}
}

// Rank orders stats by descending request count (ties by code) and assigns
// each entry a heat level relative to the busiest country. The input is not
// modified.
func Rank(stats []CountryStat) []Ranked {
	if len(stats) == 0 {
		return nil
	}

	sorted := slices.Clone(stats)
	slices.SortStableFunc(sorted, func(a, b CountryStat) int {
		if c := cmp.Compare(b.Requests, a.Requests); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})

	top := sorted[0].Requests
	out := make([]Ranked, len(sorted))
	for i, s := range sorted {
		pct := 0.0
		if top > 0 {
			pct = float64(s.Requests) / float64(top) * 100
		}
		out[i] = Ranked{CountryStat: s, Rank: i + 1, Heat: HeatLevel(pct)}
	}
	return out
}

// WithShares returns a copy of stats with Share filled from request totals
// when no entry carries one.
func WithShares(stats []CountryStat) []CountryStat {
	out := slices.Clone(stats)
	var total int64
	for _, s := range out {
		if s.Share != 0 {
			return out
		}
		total += s.Requests
	}
	if total == 0 {
		return out
	}
	for i := range out {
		out[i].Share = float64(out[i].Requests) / float64(total) * 100
	}
	return out
}

var tableHeaders = []string{"#", "Country", "Requests", "Bandwidth", "Share"}

// Table renders the ranked stats as a bordered table. limit <= 0 keeps
// every row.
func Table(stats []CountryStat, limit int) []string {
	ranked := Rank(stats)
	if len(ranked) == 0 {
		return nil
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{
			strconv.Itoa(r.Rank),
			r.DisplayName(),
			format.Compact(float64(r.Requests)),
			format.Bytes(float64(r.Bytes)),
			format.Percent(r.Share),
		}
	}
	return table.Render(rows, tableHeaders, table.Options{
		Align: []table.Alignment{table.Right, table.Left, table.Right, table.Right, table.Right},
	})
}
