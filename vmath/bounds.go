package vmath

// Bounds is an axis-aligned box in world space
type Bounds struct {
	Center Vec3F
	Size   Vec3F
}

func (b Bounds) Extents() Vec3F {
	return V3FScale(b.Size, 0.5)
}

func (b Bounds) Min() Vec3F {
	return V3FSub(b.Center, b.Extents())
}

func (b Bounds) Max() Vec3F {
	return V3FAdd(b.Center, b.Extents())
}

// ContainsXZ reports whether p lies inside the box on the XZ plane
func (b Bounds) ContainsXZ(p Vec3F) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Z >= lo.Z && p.Z <= hi.Z
}

// RotatedSize returns the world-space size of a local-frame size rotated about Y
// Canonical quarter turns swap the X and Z extents
func RotatedSize(local Vec3F, deg int) Vec3F {
	switch NormalizeDegrees(float64(deg)) {
	case 90, 270:
		return Vec3F{X: local.Z, Y: local.Y, Z: local.X}
	}
	return local
}

// Frame holds the half extents and lane-step offsets of a segment's bounds
// Width subdivides the X extent, length subdivides the Z extent
type Frame struct {
	SimpleX float64 // size.x / 2
	SimpleZ float64 // size.z / 2
	WidthX  float64 // size.x / (2*width)
	LengthZ float64 // size.z / (2*length)
}

// NewFrame derives the offset frame for bounds subdivided into width x length lanes
func NewFrame(b Bounds, width, length int) Frame {
	if width < 1 {
		width = 1
	}
	if length < 1 {
		length = 1
	}
	return Frame{
		SimpleX: b.Size.X / 2,
		SimpleZ: b.Size.Z / 2,
		WidthX:  b.Size.X / float64(2*width),
		LengthZ: b.Size.Z / float64(2*length),
	}
}

// XMinusWidth is the X offset one lane-step inside the +X edge
func (f Frame) XMinusWidth() float64 { return f.SimpleX - f.WidthX }

// XPlusWidth is the X offset one lane-step inside the -X edge
func (f Frame) XPlusWidth() float64 { return -f.SimpleX + f.WidthX }

// ZMinusLength is the Z offset one lane-step inside the +Z edge
func (f Frame) ZMinusLength() float64 { return f.SimpleZ - f.LengthZ }

// ZPlusLength is the Z offset one lane-step inside the -Z edge
func (f Frame) ZPlusLength() float64 { return -f.SimpleZ + f.LengthZ }
