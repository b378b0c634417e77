package pacing

import "time"

// RollingAverage maintains a rolling average of durations over a fixed window.
// It is owned by the poll loop and not safe for concurrent use.
type RollingAverage struct {
	samples    []time.Duration
	maxSamples int
	sum        time.Duration
	max        time.Duration
	index      int
	filled     bool
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{
		samples:    make([]time.Duration, windowSize),
		maxSamples: windowSize,
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	r.samples[r.index] = d
	r.sum += d
	if d > r.max {
		r.max = d
	}

	r.index++
	if r.index >= r.maxSamples {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	count := r.count()
	if count == 0 {
		return 0
	}
	return r.sum / time.Duration(count)
}

// Max returns the longest sample seen since the last reset
func (r *RollingAverage) Max() time.Duration {
	return r.max
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	return r.count()
}

func (r *RollingAverage) count() int {
	if r.filled {
		return r.maxSamples
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.sum = 0
	r.max = 0
	r.index = 0
	r.filled = false
	r.samples = make([]time.Duration, r.maxSamples)
}
