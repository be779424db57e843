package events

import (
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/world"
)

// SegmentPayload identifies one piece
type SegmentPayload struct {
	Handle     world.Handle
	Type       segment.Type
	Index      int
	Generation int
}

// CrossroadPayload describes the two branches of a crossroad
// Chosen and Discarded are set on resolution only
type CrossroadPayload struct {
	Crossroad world.Handle
	Left      world.Handle
	Right     world.Handle
	Chosen    world.Handle
	Discarded world.Handle
	Clockwise bool
}
