package geo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	c, ok := Lookup("us")
	require.True(t, ok)
	assert.Equal(t, "United States", c.Name)
	assert.Equal(t, NorthAmerica, c.Region)

	_, ok = Lookup("XX")
	assert.False(t, ok)

	assert.Equal(t, "DE", CodeFor("germany"))
	assert.Empty(t, CodeFor("Atlantis"))
	assert.Equal(t, "XX", NameOf("xx"))

	r, ok := RegionOf("RU")
	require.True(t, ok)
	assert.Equal(t, Europe, r)
	r, ok = RegionOf("TR")
	require.True(t, ok)
	assert.Equal(t, Asia, r)
}

func TestHeatLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  float64
		want int
	}{
		{0, 0},
		{24.9, 0},
		{25, 1},
		{49.9, 1},
		{50, 2},
		{74.9, 2},
		{75, 3},
		{100, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeatLevel(tt.pct), "pct=%v", tt.pct)
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	in := []CountryStat{
		{Code: "DE", Requests: 40},
		{Code: "US", Requests: 100},
		{Code: "BR", Requests: 40},
		{Code: "JP", Requests: 10},
	}
	ranked := Rank(in)
	require.Len(t, ranked, 4)

	codes := make([]string, len(ranked))
	for i, r := range ranked {
		codes[i] = r.Code
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, []string{"US", "BR", "DE", "JP"}, codes)
	assert.Equal(t, []int{3, 1, 1, 0}, []int{ranked[0].Heat, ranked[1].Heat, ranked[2].Heat, ranked[3].Heat})

	// Input order is untouched.
	assert.Equal(t, "DE", in[0].Code)
	assert.Nil(t, Rank(nil))
}

func TestRank_AllZero(t *testing.T) {
	t.Parallel()

	ranked := Rank([]CountryStat{{Code: "US"}, {Code: "DE"}})
	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.Equal(t, 0, r.Heat)
	}
}

func TestWithShares(t *testing.T) {
	t.Parallel()

	out := WithShares([]CountryStat{{Code: "US", Requests: 75}, {Code: "DE", Requests: 25}})
	assert.InDelta(t, 75.0, out[0].Share, 1e-9)
	assert.InDelta(t, 25.0, out[1].Share, 1e-9)

	explicit := WithShares([]CountryStat{{Code: "US", Requests: 75, Share: 10}, {Code: "DE", Requests: 25}})
	assert.InDelta(t, 10.0, explicit[0].Share, 1e-9)
	assert.Zero(t, explicit[1].Share)
}

func TestTable(t *testing.T) {
	t.Parallel()

	lines := Table([]CountryStat{
		{Code: "DE", Requests: 500, Bytes: 2048, Share: 33.3},
		{Code: "US", Requests: 1000, Bytes: 1536, Share: 66.7},
	}, 0)
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Country")
	assert.Contains(t, lines[3], "United States")
	assert.Contains(t, lines[3], "1.0K")
	assert.Contains(t, lines[3], "1.5 KB")
	assert.Contains(t, lines[3], "66.7%")
	assert.Contains(t, lines[4], "Germany")

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l))
	}

	limited := Table([]CountryStat{{Code: "US", Requests: 2}, {Code: "DE", Requests: 1}}, 1)
	assert.Len(t, limited, 5)
	assert.Nil(t, Table(nil, 0))
}

func TestProject(t *testing.T) {
	t.Parallel()

	row, col := project(39, -98)
	assert.Equal(t, 5, row)
	assert.Equal(t, 16, col)

	row, col = project(90, -180)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col = project(-90, 180)
	assert.Equal(t, MapHeight-1, row)
	assert.Equal(t, MapWidth-1, col)
}

func TestMap_Geometry(t *testing.T) {
	t.Parallel()

	lines := Map([]CountryStat{{Code: "US", Requests: 10}}, MapOptions{})
	require.Len(t, lines, MapHeight)
	for _, l := range lines {
		assert.Equal(t, MapWidth, utf8.RuneCountInString(l))
	}
	assert.Equal(t, '█', []rune(lines[5])[16])
}

func TestMap_HeatShades(t *testing.T) {
	t.Parallel()

	lines := Map([]CountryStat{
		{Code: "US", Requests: 100},
		{Code: "BR", Requests: 60},
		{Code: "AU", Requests: 30},
		{Code: "ZA", Requests: 5},
	}, MapOptions{})

	at := func(code string) rune {
		c, ok := Lookup(code)
		require.True(t, ok)
		row, col := project(c.Lat, c.Lon)
		return []rune(lines[row])[col]
	}
	assert.Equal(t, '█', at("US"))
	assert.Equal(t, '▓', at("BR"))
	assert.Equal(t, '▒', at("AU"))
	assert.Equal(t, '░', at("ZA"))
}

func TestMap_CollisionKeepsHigherRank(t *testing.T) {
	t.Parallel()

	// France and Belgium share a cell.
	fr, _ := Lookup("FR")
	be, _ := Lookup("BE")
	nr, nc := project(fr.Lat, fr.Lon)
	br, bc := project(be.Lat, be.Lon)
	require.Equal(t, [2]int{nr, nc}, [2]int{br, bc})

	lines := Map([]CountryStat{
		{Code: "BE", Requests: 10},
		{Code: "FR", Requests: 100},
	}, MapOptions{Legend: true})
	assert.Equal(t, '█', []rune(lines[nr])[nc])

	legend := lines[MapHeight]
	assert.Contains(t, legend, "FR")
	assert.NotContains(t, legend, "BE")
}

func TestMap_TopLimitsMarkers(t *testing.T) {
	t.Parallel()

	stats := []CountryStat{
		{Code: "US", Requests: 100},
		{Code: "JP", Requests: 90},
		{Code: "AU", Requests: 80},
	}
	lines := Map(stats, MapOptions{Top: 1, Legend: true})
	require.Len(t, lines, MapHeight+2)

	assert.Equal(t, "█ US 100", lines[MapHeight])
	assert.Equal(t, "░ <25%  ▒ <50%  ▓ <75%  █ ≥75%", lines[MapHeight+1])

	jp, _ := Lookup("JP")
	row, col := project(jp.Lat, jp.Lon)
	assert.NotEqual(t, '█', []rune(lines[row])[col])
}

func TestMap_UnknownCodesSkipped(t *testing.T) {
	t.Parallel()

	lines := Map([]CountryStat{{Code: "ZZ", Requests: 5}, {Code: "DE", Requests: 1}}, MapOptions{Legend: true})
	require.Len(t, lines, MapHeight+2)
	assert.Equal(t, "░ DE 1", lines[MapHeight])
	assert.Nil(t, Map(nil, MapOptions{}))
}

func TestRollUp(t *testing.T) {
	t.Parallel()

	got := RollUp([]CountryStat{
		{Code: "US", Requests: 100},
		{Code: "CA", Requests: 20},
		{Code: "DE", Requests: 50},
		{Code: "JP", Requests: 25},
		{Code: "ZZ", Requests: 999},
	})
	require.Len(t, got, 6)

	labels := make([]string, len(got))
	values := make([]float64, len(got))
	for i, c := range got {
		labels[i] = c.Label
		values[i] = c.Value
	}
	assert.Equal(t, []string{"North America", "South America", "Europe", "Africa", "Asia", "Oceania"}, labels)
	assert.Equal(t, []float64{120, 0, 50, 0, 25, 0}, values)
}

func TestRegions(t *testing.T) {
	t.Parallel()

	lines := Regions([]CountryStat{
		{Code: "US", Requests: 100},
		{Code: "DE", Requests: 50},
		{Code: "JP", Requests: 25},
	}, 8)
	require.Len(t, lines, 6)
	assert.Equal(t, "North America ████████ 100", lines[0])
	assert.Equal(t, "South America          0", lines[1])
	assert.Equal(t, "Europe        ████     50", lines[2])
	assert.Equal(t, "Asia          ██       25", lines[4])
	for _, l := range lines {
		assert.False(t, strings.HasSuffix(l, " "))
	}

	assert.Nil(t, Regions(nil, 8))
}
