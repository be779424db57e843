package world

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lixenwraith/roadgen/vmath"
)

// Object is a live instance tracked by Memory
type Object struct {
	Handle    Handle
	Prototype Prototype
	Position  vmath.Vec3F
	Rotation  vmath.Vec3F
	Bounds    vmath.Bounds
	Serial    uint64 // Instantiation order
}

// Memory is an in-process World with no rendering, used headless and in tests
// Not safe for concurrent use
type Memory struct {
	objects   map[Handle]*Object
	serial    uint64
	destroyed uint64
}

func NewMemory() *Memory {
	return &Memory{
		objects: make(map[Handle]*Object),
	}
}

// Instantiate places proto so its bounds follow the pivot offset rotated about Y
func (m *Memory) Instantiate(proto Prototype, position, rotation vmath.Vec3F) Handle {
	rotY := vmath.NormalizeDegrees(rotation.Y)
	center := vmath.V3FAdd(position, vmath.V3FRotateY(proto.Pivot, rotY))

	m.serial++
	h := Handle(uuid.New())
	m.objects[h] = &Object{
		Handle:    h,
		Prototype: proto,
		Position:  position,
		Rotation:  rotation,
		Bounds: vmath.Bounds{
			Center: center,
			Size:   vmath.RotatedSize(proto.Size, rotY),
		},
		Serial: m.serial,
	}
	return h
}

func (m *Memory) Destroy(h Handle) {
	if _, ok := m.objects[h]; !ok {
		return
	}
	delete(m.objects, h)
	m.destroyed++
}

func (m *Memory) Position(h Handle) (vmath.Vec3F, bool) {
	obj, ok := m.objects[h]
	if !ok {
		return vmath.Vec3F{}, false
	}
	return obj.Position, true
}

func (m *Memory) Rotation(h Handle) (vmath.Vec3F, bool) {
	obj, ok := m.objects[h]
	if !ok {
		return vmath.Vec3F{}, false
	}
	return obj.Rotation, true
}

func (m *Memory) BoundsOf(h Handle) (vmath.Bounds, bool) {
	obj, ok := m.objects[h]
	if !ok {
		return vmath.Bounds{}, false
	}
	return obj.Bounds, true
}

// Alive reports whether h refers to a live object
func (m *Memory) Alive(h Handle) bool {
	_, ok := m.objects[h]
	return ok
}

// Count returns the number of live objects
func (m *Memory) Count() int {
	return len(m.objects)
}

// Destroyed returns how many objects have been removed over the world's lifetime
func (m *Memory) Destroyed() uint64 {
	return m.destroyed
}

// Objects returns live objects in instantiation order
func (m *Memory) Objects() []Object {
	out := make([]Object, 0, len(m.objects))
	for _, obj := range m.objects {
		out = append(out, *obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out
}
