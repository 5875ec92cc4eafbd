// Package dataset loads chart input from JSON, CSV or TOML files, optionally
// zstd-compressed, into the in-memory shapes the renderers consume.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/bamsammich/termchart/internal/geo"
	"github.com/bamsammich/termchart/internal/series"
)

var (
	// ErrUnknownFormat is returned when a format cannot be derived from a
	// path or flag.
	ErrUnknownFormat = errors.New("unknown dataset format")
	// ErrEmpty is returned when a dataset carries no series, categories or
	// countries.
	ErrEmpty = errors.New("dataset is empty")
	// ErrNotFinite is returned for NaN or infinite values, which no renderer
	// accepts.
	ErrNotFinite = errors.New("value is not finite")
)

// Format identifies an input encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	TOML Format = "toml"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

const zstdExt = ".zst"

// ParseFormat validates a --format value. The empty string is allowed and
// means "derive from the path".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", JSON, CSV, TOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFor derives the format from a file extension, looking through a
// trailing .zst suffix.
func FormatFor(path string) (Format, bool, error) {
	compressed := strings.EqualFold(filepath.Ext(path), zstdExt)
	if compressed {
		path = path[:len(path)-len(zstdExt)]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, compressed, nil
	case ".csv":
		return CSV, compressed, nil
	case ".toml":
		return TOML, compressed, nil
	}
	return "", compressed, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Dataset is everything a chart command may need. A file usually fills
// only one of Series, Categories or Countries.
type Dataset struct {
	Title      string
	Series     series.Series
	Categories []series.CategoryValue
	Countries  []geo.CountryStat
}

// Empty reports whether the dataset has nothing to draw.
func (d *Dataset) Empty() bool {
	return d == nil || (len(d.Series) == 0 && len(d.Categories) == 0 && len(d.Countries) == 0)
}

// Values returns the series values, falling back to category values so
// waveform commands can draw a categorical file.
func (d *Dataset) Values() []float64 {
	if len(d.Series) > 0 {
		return d.Series.Values()
	}
	if len(d.Categories) == 0 {
		return nil
	}
	out := make([]float64, len(d.Categories))
	for i, c := range d.Categories {
		out[i] = c.Value
	}
	return out
}

// Latest returns the most recent series value.
func (d *Dataset) Latest() (float64, bool) {
	if len(d.Series) == 0 {
		return 0, false
	}
	return d.Series[len(d.Series)-1].Value, true
}

// Load opens path and decodes it. format overrides the extension and is
// required for Stdin. A .zst suffix is decompressed transparently.
func Load(path string, format Format) (*Dataset, error) {
	var (
		r          io.Reader
		compressed bool
	)
	if path == Stdin {
		if format == "" {
			return nil, fmt.Errorf("%w: stdin requires --format", ErrUnknownFormat)
		}
		r = bufio.NewReader(os.Stdin)
	} else {
		derived, zst, err := FormatFor(path)
		if format == "" {
			if err != nil {
				return nil, err
			}
			format = derived
		}
		compressed = zst

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		r = f
	}

	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	d, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read decodes a dataset from r. Country shares left unset are computed
// from request totals.
func Read(r io.Reader, format Format) (*Dataset, error) {
	var (
		d   *Dataset
		err error
	)
	switch format {
	case JSON:
		d, err = decodeJSON(r)
	case CSV:
		d, err = decodeCSV(r)
	case TOML:
		d, err = decodeTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if d.Empty() {
		return nil, ErrEmpty
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	d.Countries = geo.WithShares(d.Countries)
	return d, nil
}

func (d *Dataset) validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	for i, p := range d.Series {
		if !finite(p.Value) {
			return fmt.Errorf("series point %d: %w", i, ErrNotFinite)
		}
	}
	for _, c := range d.Categories {
		if !finite(c.Value) {
			return fmt.Errorf("category %q: %w", c.Label, ErrNotFinite)
		}
	}
	for _, c := range d.Countries {
		if !finite(c.Share) {
			return fmt.Errorf("country %s share: %w", c.Code, ErrNotFinite)
		}
	}
	return nil
}
