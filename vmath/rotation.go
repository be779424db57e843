package vmath

import "math"

// NormalizeDegrees rounds deg to the nearest whole degree and wraps it into [0,360)
func NormalizeDegrees(deg float64) int {
	r := int(math.Round(deg)) % 360
	if r < 0 {
		r += 360
	}
	return r
}

// IsCanonical reports whether a normalized rotation is one of 0, 90, 180, 270
func IsCanonical(deg int) bool {
	return deg >= 0 && deg < 360 && deg%90 == 0
}

// IsLongitudinalX reports whether a road at the given canonical rotation runs along X
// 0 and 180 run along X, 90 and 270 along Z
func IsLongitudinalX(deg int) bool {
	return deg == 0 || deg == 180
}
