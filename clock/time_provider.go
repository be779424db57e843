// Package clock provides time sources and the game-time scheduler for deferred work.
package clock

import "time"

// TimeProvider abstracts the wall clock so frame timing can be mocked
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts successive time readings into per-tick deltas
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts measuring from the provider's current time
// maxDelta caps a single tick so a stalled frame does not fast-forward the game
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the time elapsed since the previous Tick
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
