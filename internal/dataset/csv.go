package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bamsammich/termchart/internal/geo"
	"github.com/bamsammich/termchart/internal/series"
)

// ErrColumns is returned when a CSV header matches none of the known
// layouts.
var ErrColumns = errors.New("unrecognized csv columns")

// csvLayout is detected from the header row.
type csvLayout int

const (
	layoutSeries csvLayout = iota
	layoutCategories
	layoutCountries
)

func decodeCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	layout, err := detectLayout(cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, header)
	}

	d := &Dataset{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err := d.addRecord(layout, cols, rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return d, nil
}

func detectLayout(cols map[string]int) (csvLayout, error) {
	has := func(name string) bool { _, ok := cols[name]; return ok }
	switch {
	case has("code") && has("requests"):
		return layoutCountries, nil
	case has("time") && has("value"):
		return layoutSeries, nil
	case has("label") && has("value"):
		return layoutCategories, nil
	}
	return 0, ErrColumns
}

func (d *Dataset) addRecord(layout csvLayout, cols map[string]int, rec []string) error {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	switch layout {
	case layoutSeries:
		t, err := parseTime(field("time"))
		if err != nil {
			return err
		}
		v, err := parseFloat("value", field("value"))
		if err != nil {
			return err
		}
		d.Series = append(d.Series, series.TimePoint{Time: t, Value: v})

	case layoutCategories:
		v, err := parseFloat("value", field("value"))
		if err != nil {
			return err
		}
		d.Categories = append(d.Categories, series.CategoryValue{Label: field("label"), Value: v})

	case layoutCountries:
		stat := geo.CountryStat{Code: strings.ToUpper(field("code")), Name: field("name")}
		var err error
		if stat.Requests, err = parseInt("requests", field("requests")); err != nil {
			return err
		}
		if stat.Bytes, err = parseInt("bytes", field("bytes")); err != nil {
			return err
		}
		if stat.Share, err = parseFloat("share", strings.TrimSuffix(field("share"), "%")); err != nil {
			return err
		}
		d.Countries = append(d.Countries, stat)
	}
	return nil
}

// parseFloat treats an empty field as zero.
func parseFloat(name, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return v, nil
}

func parseInt(name, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return v, nil
}
