package tui

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/bamsammich/termchart/internal/dataset"
)

// maxCacheEntries bounds the render cache; the whole map is dropped when
// it fills, since only the current view and size are ever hot.
const maxCacheEntries = 32

// renderCache memoizes rendered views keyed by a digest of everything the
// output depends on. Reloading an unchanged file or redrawing on a tick
// with no new sample reuses the previous string.
type renderCache struct {
	entries map[uint64]string
	hits    int
	misses  int
}

func newRenderCache() *renderCache {
	return &renderCache{entries: make(map[uint64]string)}
}

func (c *renderCache) get(key uint64, render func() string) string {
	if s, ok := c.entries[key]; ok {
		c.hits++
		return s
	}
	c.misses++
	if len(c.entries) >= maxCacheEntries {
		clear(c.entries)
	}
	s := render()
	c.entries[key] = s
	return s
}

// viewKey digests the view geometry, the dataset and the live samples.
func viewKey(mode viewMode, width, height int, d *dataset.Dataset, live []float64) uint64 {
	h := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:]) //nolint:errcheck // xxhash.Digest.Write never fails
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:]) //nolint:errcheck // xxhash.Digest.Write never fails
	}
	putString := func(s string) {
		putInt(len(s))
		h.WriteString(s) //nolint:errcheck // xxhash.Digest.WriteString never fails
	}

	putInt(int(mode))
	putInt(width)
	putInt(height)

	putInt(len(live))
	for _, v := range live {
		putFloat(v)
	}

	if d == nil {
		putInt(-1)
		return h.Sum64()
	}
	putString(d.Title)
	putInt(len(d.Series))
	for _, p := range d.Series {
		putInt(int(p.Time.Unix()))
		putFloat(p.Value)
	}
	putInt(len(d.Categories))
	for _, c := range d.Categories {
		putString(c.Label)
		putFloat(c.Value)
		putInt(int(c.Glyph))
	}
	putInt(len(d.Countries))
	for _, c := range d.Countries {
		putString(c.Code)
		putString(c.Name)
		putInt(int(c.Requests))
		putInt(int(c.Bytes))
		putFloat(c.Share)
	}
	return h.Sum64()
}
