package clock

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestStepTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewStepTimeProvider(start, 50*time.Millisecond)

	if now := p.Now(); !now.Equal(start) {
		t.Errorf("first reading = %v, want %v", now, start)
	}
	if now := p.Now(); !now.Equal(start.Add(50 * time.Millisecond)) {
		t.Errorf("second reading = %v, want start+50ms", now)
	}

	p.Advance(time.Hour)
	want := start.Add(100*time.Millisecond + time.Hour)
	if now := p.Now(); !now.Equal(want) {
		t.Errorf("reading after Advance = %v, want %v", now, want)
	}
	if r := p.Reads(); r != 3 {
		t.Errorf("Reads() = %d, want 3", r)
	}

	p.Rewind(start)
	if now := p.Now(); !now.Equal(start) {
		t.Errorf("reading after Rewind = %v, want %v", now, start)
	}
}

func TestFrameClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewStepTimeProvider(start, 0)
	fc := NewFrameClock(p, 100*time.Millisecond)

	p.Advance(16 * time.Millisecond)
	if dt := fc.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	p.Advance(5 * time.Second)
	if dt := fc.Tick(); dt != 100*time.Millisecond {
		t.Errorf("Expected delta capped at 100ms, got %v", dt)
	}

	p.Rewind(start)
	if dt := fc.Tick(); dt != 0 {
		t.Errorf("Expected zero delta when time goes backwards, got %v", dt)
	}
}

func TestFrameClock_FixedStep(t *testing.T) {
	p := NewStepTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 20*time.Millisecond)
	fc := NewFrameClock(p, time.Second)

	for i := 0; i < 5; i++ {
		if dt := fc.Tick(); dt != 20*time.Millisecond {
			t.Fatalf("tick %d = %v, want 20ms", i, dt)
		}
	}
}
