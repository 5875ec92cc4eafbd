package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/bamsammich/termchart/internal/format"
	"github.com/bamsammich/termchart/internal/scale"
)

// Map geometry: an equirectangular projection at 5° of longitude per column
// and 8° of latitude per row, from 84°N down to 60°S.
const (
	MapWidth  = 72
	MapHeight = 18

	mapNorth  = 84.0
	degPerCol = 360.0 / MapWidth
	degPerRow = 8.0
)

// DefaultTop is the number of markers plotted when MapOptions.Top is unset.
const DefaultTop = 10

// worldMap is the fixed backdrop; rows shorter than MapWidth are padded.
var worldMap = [MapHeight]string{
	"                       ·········",
	"    ·················· ·········        ··     ·······················",
	"  ······················ ·····       ·································",
	"   ··    ················          · ····························",
	"           ·············           ·····························",
	"           ···········            ··   ······················· ··",
	"             ········             ········ ·················",
	"              ···  ·             ··························",
	"                ··               ·············     ··  ···",
	"                    ·····        ·············          ·",
	"                    ·······           ·······           ········",
	"                    ·········         ······             ········",
	"                     ········         ······                ·····",
	"                      ······           ····                ·······",
	"                     ·····             ··                  ·······",
	"                     ···                                        ·     ·",
	"                     ··",
	"",
}

// MapOptions configures Map.
type MapOptions struct {
	// Top limits markers to the N busiest countries. Zero uses DefaultTop.
	Top    int
	Legend bool
}

// Map renders the world backdrop with one heat-shaded marker per country
// among the top N by requests. When two countries project onto the same
// cell the higher-ranked one wins. Countries missing from the lookup table
// are not plotted. With Legend set, a line listing the plotted markers and a
// shade key follow the map. Empty stats yield nil.
func Map(stats []CountryStat, opts MapOptions) []string {
	ranked := Rank(stats)
	if len(ranked) == 0 {
		return nil
	}
	top := opts.Top
	if top <= 0 {
		top = DefaultTop
	}
	if top < len(ranked) {
		ranked = ranked[:top]
	}

	grid := backdrop()
	taken := make(map[[2]int]bool)
	var plotted []Ranked
	for _, r := range ranked {
		c, ok := Lookup(r.Code)
		if !ok {
			continue
		}
		row, col := project(c.Lat, c.Lon)
		if taken[[2]int{row, col}] {
			continue
		}
		taken[[2]int{row, col}] = true
		grid[row][col] = scale.Shades.Index(r.Heat)
		plotted = append(plotted, r)
	}

	lines := make([]string, 0, MapHeight+2)
	for _, row := range grid {
		lines = append(lines, string(row))
	}
	if opts.Legend {
		lines = append(lines, markerLegend(plotted), shadeKey())
	}
	return lines
}

// project maps a coordinate onto a grid cell, clamping to the map edges.
func project(lat, lon float64) (row, col int) {
	col = int(math.Floor((lon + 180) / degPerCol))
	row = int(math.Floor((mapNorth - lat) / degPerRow))
	return min(max(row, 0), MapHeight-1), min(max(col, 0), MapWidth-1)
}

func backdrop() [][]rune {
	grid := make([][]rune, MapHeight)
	for i, line := range worldMap {
		row := []rune(line)
		for len(row) < MapWidth {
			row = append(row, ' ')
		}
		grid[i] = row
	}
	return grid
}

func markerLegend(plotted []Ranked) string {
	parts := make([]string, len(plotted))
	for i, r := range plotted {
		parts[i] = fmt.Sprintf("%c %s %s", scale.Shades.Index(r.Heat), strings.ToUpper(r.Code),
			format.Compact(float64(r.Requests)))
	}
	return strings.Join(parts, "  ")
}

func shadeKey() string {
	return fmt.Sprintf("%c <25%%  %c <50%%  %c <75%%  %c ≥75%%",
		scale.Shades[0], scale.Shades[1], scale.Shades[2], scale.Shades[3])
}
