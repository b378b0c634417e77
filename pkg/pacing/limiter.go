package pacing

import "time"

// Limiter caps how often the poll loop runs by sleeping out the rest of each interval
type Limiter struct {
	interval time.Duration
	last     time.Time
	work     *RollingAverage

	// swapped in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter creates a limiter for the given interval. A zero interval never sleeps.
func NewLimiter(interval time.Duration, window int) *Limiter {
	l := &Limiter{
		interval: interval,
		work:     NewRollingAverage(window),
		now:      time.Now,
		sleep:    time.Sleep,
	}
	l.last = l.now()
	return l
}

// Wait records how long the iteration took and sleeps for whatever is left of the interval
func (l *Limiter) Wait() {
	elapsed := l.now().Sub(l.last)
	l.work.Add(elapsed)

	if elapsed < l.interval {
		l.sleep(l.interval - elapsed)
	}
	l.last = l.now()
}

// Interval returns the configured interval
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Stats returns the rolling average and worst-case time spent working per iteration
func (l *Limiter) Stats() (avg, worst time.Duration) {
	return l.work.Average(), l.work.Max()
}

// ResetStats clears the collected iteration timings
func (l *Limiter) ResetStats() {
	l.work.Reset()
}
