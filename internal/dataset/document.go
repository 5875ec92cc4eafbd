package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/bamsammich/termchart/internal/geo"
	"github.com/bamsammich/termchart/internal/series"
)

// document is the shared JSON/TOML shape. Values is shorthand for a series
// without timestamps.
type document struct {
	Title      string     `json:"title" toml:"title"`
	Values     []float64  `json:"values" toml:"values"`
	Series     []point    `json:"series" toml:"series"`
	Categories []category `json:"categories" toml:"categories"`
	Countries  []country  `json:"countries" toml:"countries"`
}

type point struct {
	Time  stamp   `json:"time" toml:"time"`
	Value float64 `json:"value" toml:"value"`
}

type category struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
	Glyph string  `json:"glyph" toml:"glyph"`
}

type country struct {
	Code     string  `json:"code" toml:"code"`
	Name     string  `json:"name" toml:"name"`
	Requests int64   `json:"requests" toml:"requests"`
	Bytes    int64   `json:"bytes" toml:"bytes"`
	Share    float64 `json:"share" toml:"share"`
}

// stamp accepts RFC3339 strings or unix seconds.
type stamp struct{ t time.Time }

func (s *stamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		t, err := parseTime(str)
		s.t = t
		return err
	}
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("timestamp %s: %w", b, err)
	}
	s.t = unixTime(secs)
	return nil
}

func (s *stamp) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case time.Time:
		s.t = v
	case int64:
		s.t = time.Unix(v, 0).UTC()
	case float64:
		s.t = unixTime(v)
	case string:
		t, err := parseTime(v)
		if err != nil {
			return err
		}
		s.t = t
	default:
		return fmt.Errorf("timestamp: unsupported TOML type %T", v)
	}
	return nil
}

// parseTime reads an RFC3339 timestamp or unix seconds.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: want RFC3339 or unix seconds", s)
	}
	return unixTime(secs), nil
}

func unixTime(secs float64) time.Time {
	whole := int64(secs)
	return time.Unix(whole, int64((secs-float64(whole))*1e9)).UTC()
}

func decodeJSON(r io.Reader) (*Dataset, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{}, nil
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return doc.dataset(), nil
}

func decodeTOML(r io.Reader) (*Dataset, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode toml: unknown keys %v", undecoded)
	}
	return doc.dataset(), nil
}

func (doc document) dataset() *Dataset {
	d := &Dataset{Title: doc.Title}
	for _, v := range doc.Values {
		d.Series = append(d.Series, series.TimePoint{Value: v})
	}
	for _, p := range doc.Series {
		d.Series = append(d.Series, series.TimePoint{Time: p.Time.t, Value: p.Value})
	}
	for _, c := range doc.Categories {
		glyph, _ := utf8.DecodeRuneInString(c.Glyph)
		if glyph == utf8.RuneError {
			glyph = 0
		}
		d.Categories = append(d.Categories, series.CategoryValue{Label: c.Label, Value: c.Value, Glyph: glyph})
	}
	for _, c := range doc.Countries {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" {
			code = geo.CodeFor(c.Name)
		}
		d.Countries = append(d.Countries, geo.CountryStat{
			Code:     code,
			Name:     c.Name,
			Requests: c.Requests,
			Bytes:    c.Bytes,
			Share:    c.Share,
		})
	}
	return d
}
