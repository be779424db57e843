package clock

import (
	"testing"
	"time"
)

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Schedule(2*time.Second, func() { fired++ })

	if n := s.Advance(time.Second); n != 0 || fired != 0 {
		t.Fatalf("Task fired early: n=%d fired=%d", n, fired)
	}
	if n := s.Advance(999 * time.Millisecond); n != 0 {
		t.Fatalf("Task fired at 1.999s")
	}
	if n := s.Advance(time.Millisecond); n != 1 || fired != 1 {
		t.Fatalf("Expected task to fire at 2s: n=%d fired=%d", n, fired)
	}
	s.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("Task fired more than once: %d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", s.Pending())
	}
}

func TestScheduler_OrderAndCancel(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Schedule(3*time.Second, func() { order = append(order, "late") })
	early := s.Schedule(time.Second, func() { order = append(order, "early") })
	mid := s.Schedule(2*time.Second, func() { order = append(order, "mid") })

	if !s.Cancel(mid) {
		t.Fatal("Cancel of pending task should succeed")
	}
	if s.Cancel(mid) {
		t.Error("Second cancel should report false")
	}

	s.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("Unexpected firing order: %v", order)
	}
	if s.Cancel(early) {
		t.Error("Cancel after firing should report false")
	}
}

func TestScheduler_NestedScheduleWaits(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.Schedule(0, func() {
		s.Schedule(0, func() { inner = true })
	})
	s.Advance(0)
	if inner {
		t.Error("Task scheduled during Advance should wait for the next Advance")
	}
	s.Advance(0)
	if !inner {
		t.Error("Nested task should run on the following Advance")
	}
}
