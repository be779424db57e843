package world

import (
	"testing"

	"github.com/lixenwraith/roadgen/vmath"
)

func TestMemory_InstantiateRotatesBounds(t *testing.T) {
	m := NewMemory()
	proto := Prototype{
		Name:  "straight",
		Size:  vmath.Vec3F{X: 8, Y: 1, Z: 4},
		Pivot: vmath.Vec3F{X: 4},
	}

	tests := []struct {
		rot        float64
		wantCenter vmath.Vec3F
		wantSize   vmath.Vec3F
	}{
		{0, vmath.Vec3F{X: 14, Z: 5}, vmath.Vec3F{X: 8, Y: 1, Z: 4}},
		{90, vmath.Vec3F{X: 10, Z: 1}, vmath.Vec3F{X: 4, Y: 1, Z: 8}},
		{180, vmath.Vec3F{X: 6, Z: 5}, vmath.Vec3F{X: 8, Y: 1, Z: 4}},
		{-90, vmath.Vec3F{X: 10, Z: 9}, vmath.Vec3F{X: 4, Y: 1, Z: 8}},
	}

	for _, tt := range tests {
		h := m.Instantiate(proto, vmath.Vec3F{X: 10, Z: 5}, vmath.Vec3F{Y: tt.rot})
		b, ok := m.BoundsOf(h)
		if !ok {
			t.Fatalf("rot %v: handle not found", tt.rot)
		}
		if b.Center != tt.wantCenter {
			t.Errorf("rot %v: center = %v, want %v", tt.rot, b.Center, tt.wantCenter)
		}
		if b.Size != tt.wantSize {
			t.Errorf("rot %v: size = %v, want %v", tt.rot, b.Size, tt.wantSize)
		}
	}
}

func TestMemory_DestroyIdempotent(t *testing.T) {
	m := NewMemory()
	a := m.Instantiate(Prototype{Name: "a"}, vmath.Vec3F{}, vmath.Vec3F{})
	b := m.Instantiate(Prototype{Name: "b"}, vmath.Vec3F{}, vmath.Vec3F{})

	if a == b {
		t.Fatal("Handles must be unique")
	}

	m.Destroy(a)
	m.Destroy(a)
	m.Destroy(NilHandle)

	if m.Alive(a) {
		t.Error("Expected a to be destroyed")
	}
	if !m.Alive(b) {
		t.Error("Expected b to survive")
	}
	if m.Destroyed() != 1 {
		t.Errorf("Expected 1 destruction, got %d", m.Destroyed())
	}
	if _, ok := m.Position(a); ok {
		t.Error("Position of destroyed handle should report false")
	}
}

func TestMemory_ObjectsOrdered(t *testing.T) {
	m := NewMemory()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		m.Instantiate(Prototype{Name: n}, vmath.Vec3F{}, vmath.Vec3F{})
	}
	objs := m.Objects()
	if len(objs) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(objs))
	}
	for i, obj := range objs {
		if obj.Prototype.Name != names[i] {
			t.Errorf("Object %d: expected %s, got %s", i, names[i], obj.Prototype.Name)
		}
	}
}
