// Package world abstracts the host engine's object system.
// The generator and segments hold Handles and never engine objects.
package world

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/roadgen/vmath"
)

// Handle identifies one instantiated object; comparison is by identity
type Handle uuid.UUID

// NilHandle never refers to a live object
var NilHandle Handle

func (h Handle) IsNil() bool {
	return h == NilHandle
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Prototype is an authored object that can be instantiated
type Prototype struct {
	Name string
	// Size is the local-frame (rotation 0) extent of the object's renderer bounds
	Size vmath.Vec3F
	// Pivot is the local-frame offset from the transform position to the bounds center
	Pivot vmath.Vec3F
}

// World is the capability surface the generator needs from the engine
type World interface {
	// Instantiate places a new copy of proto; rotation is euler degrees
	Instantiate(proto Prototype, position, rotation vmath.Vec3F) Handle
	// Destroy removes the object; destroying an unknown handle is a no-op
	Destroy(h Handle)
	Position(h Handle) (vmath.Vec3F, bool)
	Rotation(h Handle) (vmath.Vec3F, bool)
	BoundsOf(h Handle) (vmath.Bounds, bool)
}
