// Package events carries road lifecycle notifications from the generator to observers.
package events

import (
	"time"
)

// EventType represents the type of road event
type EventType int

const (
	// EventSegmentSpawned signals a new piece joined the active list
	// Payload: *SegmentPayload
	EventSegmentSpawned EventType = iota

	// EventSegmentRetired signals the oldest piece left the active list and awaits destruction
	// Payload: *SegmentPayload
	EventSegmentRetired

	// EventCrossroadSpawned signals both branches were placed and the generator waits on the player
	// Payload: *CrossroadPayload
	EventCrossroadSpawned

	// EventCrossroadResolved signals the player entered one branch and the other was removed
	// Payload: *CrossroadPayload
	EventCrossroadResolved

	// EventEdgeReached signals the frontier came close to the border and the next piece is a forced turn
	// Payload: *SegmentPayload (the frontier)
	EventEdgeReached

	// EventCrossroadDeferred signals a crossroad slot was skipped for lack of border clearance
	// Payload: nil
	EventCrossroadDeferred

	// EventGeneratorCleared signals teardown and re-seed of the start piece
	// Payload: nil
	EventGeneratorCleared

	// EventPortalEntered signals the player reached a portal piece and control moved to the linked generator
	// Payload: *SegmentPayload
	EventPortalEntered

	// EventGeometryFault signals a placement failed and generation halted
	// Payload: error
	EventGeometryFault
)

func (t EventType) String() string {
	switch t {
	case EventSegmentSpawned:
		return "segment_spawned"
	case EventSegmentRetired:
		return "segment_retired"
	case EventCrossroadSpawned:
		return "crossroad_spawned"
	case EventCrossroadResolved:
		return "crossroad_resolved"
	case EventEdgeReached:
		return "edge_reached"
	case EventCrossroadDeferred:
		return "crossroad_deferred"
	case EventGeneratorCleared:
		return "generator_cleared"
	case EventPortalEntered:
		return "portal_entered"
	case EventGeometryFault:
		return "geometry_fault"
	default:
		return "unknown"
	}
}

// GameEvent is one queued notification
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Generator tick that produced the event
	Timestamp time.Duration
}
