package events

import "testing"

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventSegmentSpawned, Frame: 1})
	q.Push(GameEvent{Type: EventSegmentRetired, Frame: 2})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Frame != 1 || got[1].Frame != 2 {
		t.Fatalf("Unexpected order: %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Second consume should be empty")
	}
}

func TestEventQueue_Overflow(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}
	if q.Len() != QueueSize {
		t.Fatalf("Expected queue capped at %d, got %d", QueueSize, q.Len())
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
	got := q.Consume()
	if got[0].Frame != 10 || got[len(got)-1].Frame != QueueSize+9 {
		t.Errorf("Oldest events should be overwritten: first=%d last=%d", got[0].Frame, got[len(got)-1].Frame)
	}
}

func TestRouter_DispatchAll(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*[]EventType](q)

	r.Register(HandlerFunc[*[]EventType]{
		Types: []EventType{EventCrossroadSpawned, EventCrossroadResolved},
		Fn: func(seen *[]EventType, ev GameEvent) {
			*seen = append(*seen, ev.Type)
		},
	})

	q.Push(GameEvent{Type: EventSegmentSpawned})
	q.Push(GameEvent{Type: EventCrossroadSpawned})
	q.Push(GameEvent{Type: EventCrossroadResolved})

	var seen []EventType
	if n := r.DispatchAll(&seen); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}
	if len(seen) != 2 || seen[0] != EventCrossroadSpawned || seen[1] != EventCrossroadResolved {
		t.Errorf("Handler saw %v", seen)
	}
	if !r.HasHandlers(EventCrossroadResolved) || r.HasHandlers(EventSegmentSpawned) {
		t.Error("HasHandlers mismatch")
	}
	if r.Unhandled() != 1 {
		t.Errorf("Unhandled() = %d, want 1", r.Unhandled())
	}
}

func TestRouter_OnAndObserve(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*[]string](q)

	r.On(func(log *[]string, ev GameEvent) {
		*log = append(*log, "typed:"+ev.Type.String())
	}, EventSegmentRetired)
	r.Observe(func(log *[]string, ev GameEvent) {
		*log = append(*log, "all:"+ev.Type.String())
	})

	q.Push(GameEvent{Type: EventSegmentRetired})
	q.Push(GameEvent{Type: EventEdgeReached})
	q.Push(GameEvent{Type: EventSegmentRetired})

	var log []string
	r.DispatchAll(&log)

	want := []string{
		"typed:segment_retired", "all:segment_retired",
		"all:edge_reached",
		"typed:segment_retired", "all:segment_retired",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if got := r.Routed(EventSegmentRetired); got != 2 {
		t.Errorf("Routed(retired) = %d, want 2", got)
	}
	if got := r.Routed(EventSegmentSpawned); got != 0 {
		t.Errorf("Routed(spawned) = %d, want 0", got)
	}
	if r.DispatchAll(&log) != 0 {
		t.Error("second dispatch should find an empty queue")
	}
}
