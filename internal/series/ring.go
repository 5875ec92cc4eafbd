package series

import (
	"sync"
	"time"
)

// DefaultRingSize is the sample capacity used by the live dashboard
// (one minute of one-second samples).
const DefaultRingSize = 60

// Ring is a fixed-capacity rolling window of samples. The oldest sample is
// overwritten once the ring is full. Safe for concurrent use.
type Ring struct {
	mu    sync.Mutex
	buf   []TimePoint
	idx   int // next write position
	count int // samples written, capped at len(buf)
}

// NewRing creates a ring holding at most size samples. A non-positive size
// falls back to DefaultRingSize.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Ring{buf: make([]TimePoint, size)}
}

// Push appends a sample, evicting the oldest one when the ring is full.
func (r *Ring) Push(t time.Time, v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.idx] = TimePoint{Time: t, Value: v}
	r.idx = (r.idx + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Len returns the number of samples currently held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Series returns a copy of the held samples, oldest first.
func (r *Ring) Series() Series {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return nil
	}
	out := make(Series, r.count)
	size := len(r.buf)
	for i := range r.count {
		out[i] = r.buf[(r.idx-r.count+i+size)%size]
	}
	return out
}

// Last returns the newest sample and whether one exists.
func (r *Ring) Last() (TimePoint, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return TimePoint{}, false
	}
	return r.buf[(r.idx-1+len(r.buf))%len(r.buf)], true
}

// Rolling returns the mean of the newest n samples (fewer if the ring holds
// fewer). An empty ring reports 0.
func (r *Ring) Rolling(n int) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := min(n, r.count)
	if count <= 0 {
		return 0
	}
	size := len(r.buf)
	var sum float64
	for i := range count {
		sum += r.buf[(r.idx-1-i+size)%size].Value
	}
	return sum / float64(count)
}

// Reset discards all samples.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = 0
	r.count = 0
}
