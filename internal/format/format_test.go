package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{0.123, "0.12"},
		{0.1, "0.1"},
		{1, "1"},
		{42.4, "42"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{12_345, "12.3K"},
		{1_000_000, "1.0M"},
		{2_500_000_000, "2.5B"},
		{1_200_000_000_000, "1.2T"},
		{-1500, "-1.5K"},
		{-7, "-7"},
		// Rounding that reaches the next unit moves up to it.
		{0.996, "1"},
		{999.4, "999"},
		{999.6, "1.0K"},
		{999_950, "1.0M"},
		{9.9996e8, "1.0B"},
		{-999_950, "-1.0M"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Compact(tt.input))
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{2.5 * 1024 * 1024 * 1024, "2.5 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.0 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024 * 1024, "1024.0 PB"},
		{1023.6, "1.0 KB"},
		{1024*1024 - 1, "1.0 MB"},
		{1024*1024 - 60, "1023.9 KB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.input))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.5, "500µs"},
		{0, "0µs"},
		{1, "1ms"},
		{750, "750ms"},
		{1500, "1.5s"},
		{59_000, "59.0s"},
		{65_000, "1.1m"},
		{600_000, "10.0m"},
		{0.9996, "1ms"},
		{999.6, "1.0s"},
		{59_999, "1.0m"},
		{59_940, "59.9s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.input))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "50.0%", Percent(50))
	assert.Equal(t, "33%", Percentage(33.3, 0))
	assert.Equal(t, "12.50%", Percentage(12.5, 2))
	assert.Equal(t, "7%", Percentage(7, -1)) // negative decimals clamp to 0
}

func TestCompact_Deterministic(t *testing.T) {
	for range 3 {
		assert.Equal(t, "1.5K", Compact(1500))
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0 B/s"},
		{-1, "0 B/s"},
		{512, "512 B/s"},
		{1024, "1.00 KB/s"},
		{1.5 * 1024 * 1024, "1.50 MB/s"},
		{100 * 1024, "100 KB/s"},
		{15 * 1024, "15.0 KB/s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Rate(tt.input))
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1000000, "1,000,000"},
		{14302, "14,302"},
		{-1000, "-1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.input))
		})
	}
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, "0s", Elapsed(0))
	assert.Equal(t, "30s", Elapsed(30*time.Second))
	assert.Equal(t, "3m 17s", Elapsed(3*time.Minute+17*time.Second))
	assert.Equal(t, "1h 02m 03s", Elapsed(1*time.Hour+2*time.Minute+3*time.Second))
}
