// Package format converts numbers into the short, locale-independent strings
// used for chart labels and table cells.
//
// Every function is pure. NaN and ±Inf inputs are a precondition violation:
// the result is unspecified but the call never panics.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Compact renders v with a K/M/B/T magnitude suffix and one decimal
// ("1.5K"). Values in [1, 1000) render as integers, values below 1 keep up
// to two decimals with trailing zeros dropped. Negative values keep their sign.
func Compact(v float64) string {
	if v < 0 {
		s := Compact(-v)
		if s == "0" {
			return s
		}
		return "-" + s
	}
	if round(v, 2) >= 1 {
		return magnitude(v)
	}
	s := fixed(v, 2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

var compactUnits = []struct {
	scale  float64
	suffix string
}{{1, ""}, {1e3, "K"}, {1e6, "M"}, {1e9, "B"}, {1e12, "T"}}

// magnitude picks the largest unit not above v, then moves up one unit when
// rounding carries the mantissa to 1000 ("999.6" is "1.0K", not "1000").
func magnitude(v float64) string {
	i := 0
	for i < len(compactUnits)-1 && v >= compactUnits[i+1].scale {
		i++
	}
	if i < len(compactUnits)-1 && round(v/compactUnits[i].scale, decimalsFor(i)) >= 1000 {
		i++
	}
	u := compactUnits[i]
	return fixed(v/u.scale, decimalsFor(i)) + u.suffix
}

func decimalsFor(unit int) int {
	if unit == 0 {
		return 0
	}
	return 1
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders a byte count using 1024-based units from B to PB.
// Plain bytes have no decimals; every larger unit has one.
func Bytes(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	if unit < len(byteUnits)-1 && round(v, decimalsFor(unit)) >= 1024 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		return sign + fixed(v, 0) + " B"
	}
	return sign + fixed(v, 1) + " " + byteUnits[unit]
}

// Duration renders a latency given in milliseconds: µs below 1ms, whole
// milliseconds below 1s, seconds with one decimal below a minute, minutes
// with one decimal above that.
func Duration(ms float64) string {
	switch {
	case round(ms*1000, 0) < 1000:
		return fixed(ms*1000, 0) + "µs"
	case round(ms, 0) < 1000:
		return fixed(ms, 0) + "ms"
	case round(ms/1000, 1) < 60:
		return fixed(ms/1000, 1) + "s"
	default:
		return fixed(ms/60000, 1) + "m"
	}
}

// Percentage renders v (already in percent) with a fixed number of decimals.
func Percentage(v float64, decimals int) string {
	return fixed(v, max(decimals, 0)) + "%"
}

// Percent is Percentage with one decimal.
func Percent(v float64) string {
	return Percentage(v, 1)
}

// fixed formats v with exactly decimals digits after the point, rounding
// half away from zero.
func fixed(v float64, decimals int) string {
	r := round(v, decimals)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', decimals, 64)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Rate formats a bytes-per-second rate as a human-readable string.
func Rate(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return "0 B/s"
	}
	units := []string{"B/s", "KB/s", "MB/s", "GB/s", "TB/s"}
	val := bytesPerSec
	for _, u := range units {
		if val < 1024 {
			if val < 10 {
				return fmt.Sprintf("%.2f %s", val, u)
			}
			if val < 100 {
				return fmt.Sprintf("%.1f %s", val, u)
			}
			return fmt.Sprintf("%.0f %s", val, u)
		}
		val /= 1024
	}
	return fmt.Sprintf("%.1f PB/s", val)
}

// Count formats an integer with comma separators.
func Count(n int64) string {
	if n < 0 {
		return "-" + Count(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Elapsed formats a wall-clock duration concisely ("3m 17s").
func Elapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
