package clock

import (
	"sync"
	"time"
)

// StepTimeProvider is a deterministic time source that moves forward by a fixed step on every reading
// A zero step freezes time until Advance is called
type StepTimeProvider struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	reads uint64
}

// NewStepTimeProvider starts at start and advances by step per Now call
func NewStepTimeProvider(start time.Time, step time.Duration) *StepTimeProvider {
	return &StepTimeProvider{now: start, step: step}
}

// Now returns the current reading, then moves the clock by one step
func (p *StepTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.now
	p.now = p.now.Add(p.step)
	p.reads++
	return t
}

// Advance moves the clock without counting a reading
func (p *StepTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Rewind sets the clock back to t; FrameClock reports zero for the backwards tick
func (p *StepTimeProvider) Rewind(t time.Time) {
	p.mu.Lock()
	p.now = t
	p.mu.Unlock()
}

// Reads returns how many times Now was called
func (p *StepTimeProvider) Reads() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}
