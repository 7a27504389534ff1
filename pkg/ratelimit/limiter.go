package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a keyed token bucket. Every key shares the same capacity and
// refill rate.
type Limiter struct {
	capacity     float64
	refillPerSec float64
	now          func() time.Time

	mu sync.Mutex
	m  map[string]*bucket
}

// New creates a limiter holding up to capacity tokens per key, refilled at
// refillPerSec tokens per second.
func New(capacity, refillPerSec float64) *Limiter {
	return &Limiter{
		capacity:     capacity,
		refillPerSec: refillPerSec,
		now:          time.Now,
		m:            make(map[string]*bucket),
	}
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: now}
		l.m[key] = b
	}
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(l.capacity, b.tokens+elapsed*l.refillPerSec)
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
