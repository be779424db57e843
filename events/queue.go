package events

// QueueSize is the fixed capacity of the event ring buffer
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// EventQueue is a fixed ring buffer for road events
// Single producer (generator tick) and single consumer (host loop) on the same goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events  [QueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&bufferMask] = event
	eq.tail++
	if eq.tail-eq.head > QueueSize {
		eq.head = eq.tail - QueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&bufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
