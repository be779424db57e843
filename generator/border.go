package generator

import (
	"github.com/lixenwraith/roadgen/vmath"
)

// Border is the square generation area centered on the generator origin
type Border struct {
	Center vmath.Vec3F
	Size   int
}

// Exceeds reports whether a piece at pos heading along rotationY would cross
// the border within clearance more pieces of extent height (X) or width (Z)
// Non-canonical rotations never exceed
func (b Border) Exceeds(pos vmath.Vec3F, rotationY int, height, width float64, clearance int) bool {
	half := float64(b.Size) / 2
	k := float64(clearance)
	switch rotationY {
	case 0:
		return pos.X+height*k >= b.Center.X+half
	case 180:
		return pos.X-height*k <= b.Center.X-half
	case 270:
		return pos.Z+width*k >= b.Center.Z+half
	case 90:
		return pos.Z-width*k <= b.Center.Z-half
	}
	return false
}

// Corners returns the border square corners in XZ, counter-clockwise from -X-Z
func (b Border) Corners() [4]vmath.Vec3F {
	half := float64(b.Size) / 2
	c := b.Center
	return [4]vmath.Vec3F{
		{X: c.X - half, Y: c.Y, Z: c.Z - half},
		{X: c.X + half, Y: c.Y, Z: c.Z - half},
		{X: c.X + half, Y: c.Y, Z: c.Z + half},
		{X: c.X - half, Y: c.Y, Z: c.Z + half},
	}
}
