package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world space (Y up, XZ ground plane)
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the euclidean distance between a and b
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FLerp interpolates linearly, t=0 returns a and t=1 returns b
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec3F{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// V3FApprox compares component-wise within eps
func V3FApprox(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// V3FRotateY rotates v about the Y axis by a canonical angle in degrees
// Clockwise when seen from above: +X maps to -Z at 90
// Non-canonical angles fall back to trigonometric rotation
func V3FRotateY(v Vec3F, deg int) Vec3F {
	switch NormalizeDegrees(float64(deg)) {
	case 0:
		return v
	case 90:
		return Vec3F{X: v.Z, Y: v.Y, Z: -v.X}
	case 180:
		return Vec3F{X: -v.X, Y: v.Y, Z: -v.Z}
	case 270:
		return Vec3F{X: -v.Z, Y: v.Y, Z: v.X}
	}
	rad := float64(deg) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
