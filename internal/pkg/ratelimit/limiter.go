// Package ratelimit implements the sliding-window admission control that
// guards request creation. State is process-local and best-effort: it does
// not coordinate across instances and is not a security control.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-key sliding-window counter. A background sweep removes
// empty buckets to bound memory.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	buckets map[string][]time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter admitting max calls per key per window and
// starts the sweep goroutine. Call Stop to release it.
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		window:  window,
		max:     max,
		buckets: make(map[string][]time.Time),
		stop:    make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

// Admit records a call for key at now if the key is under its limit.
// It returns whether the call is admitted, the remaining allowance, and,
// when rejected, how long until the earliest recorded call leaves the
// window.
func (l *Limiter) Admit(key string, now time.Time) (bool, int, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := pruneOlder(l.buckets[key], now.Add(-l.window))
	if len(recent) >= l.max {
		l.buckets[key] = recent
		retryAfter := recent[0].Add(l.window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, 0, retryAfter
	}

	recent = append(recent, now)
	l.buckets[key] = recent
	return true, l.max - len(recent), 0
}

// Stop terminates the sweep goroutine
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.sweep(now)
		case <-l.stop:
			return
		}
	}
}

// sweep drops timestamps that left the window and deletes empty buckets
func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	for key, timestamps := range l.buckets {
		recent := pruneOlder(timestamps, cutoff)
		if len(recent) == 0 {
			delete(l.buckets, key)
		} else {
			l.buckets[key] = recent
		}
	}
}

func pruneOlder(timestamps []time.Time, cutoff time.Time) []time.Time {
	recent := timestamps[:0:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	return recent
}
