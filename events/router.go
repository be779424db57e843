package events

// Handler reacts to a fixed set of road event types with access to a caller context
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// HandlerFunc is a Handler built from a function and the types it accepts
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType             { return h.Types }

// Router drains one generator's queue and fans each event out to its handlers
// Typed handlers run in registration order, then observers see every event
type Router[T any] struct {
	queue     *EventQueue
	byType    map[EventType][]Handler[T]
	observers []func(ctx T, event GameEvent)
	routed    map[EventType]uint64
	unhandled uint64
}

// NewRouter binds a router to queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		queue:  queue,
		byType: make(map[EventType][]Handler[T]),
		routed: make(map[EventType]uint64),
	}
}

// Register subscribes handler to every type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.byType[t] = append(r.byType[t], handler)
	}
}

// On subscribes fn to the listed types
func (r *Router[T]) On(fn func(ctx T, event GameEvent), types ...EventType) {
	r.Register(HandlerFunc[T]{Types: types, Fn: fn})
}

// Observe subscribes fn to all event types, after the typed handlers
func (r *Router[T]) Observe(fn func(ctx T, event GameEvent)) {
	r.observers = append(r.observers, fn)
}

// DispatchAll drains the queue in FIFO order and returns the number of events consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	batch := r.queue.Consume()
	for _, ev := range batch {
		hs := r.byType[ev.Type]
		if len(hs) == 0 {
			r.unhandled++
		}
		for _, h := range hs {
			h.HandleEvent(ctx, ev)
		}
		for _, fn := range r.observers {
			fn(ctx, ev)
		}
		r.routed[ev.Type]++
	}
	return len(batch)
}

// HasHandlers reports whether a typed handler accepts t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.byType[t]) > 0
}

// Routed returns how many events of type t have been dispatched
func (r *Router[T]) Routed(t EventType) uint64 {
	return r.routed[t]
}

// Unhandled returns how many dispatched events had no typed handler
func (r *Router[T]) Unhandled() uint64 {
	return r.unhandled
}
