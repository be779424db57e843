package vmath

// BezierPoint evaluates the quadratic bezier p0 -> p1 -> p2 at t in [0,1]
func BezierPoint(t float64, p0, p1, p2 Vec3F) Vec3F {
	u := 1 - t
	uu := u * u
	tt := t * t
	ut2 := 2 * u * t
	return Vec3F{
		X: uu*p0.X + ut2*p1.X + tt*p2.X,
		Y: uu*p0.Y + ut2*p1.Y + tt*p2.Y,
		Z: uu*p0.Z + ut2*p1.Z + tt*p2.Z,
	}
}

// GenerateCurve samples the bezier at n+1 evenly spaced parameters
// The first and last samples are exactly p0 and p2
func GenerateCurve(n int, p0, p1, p2 Vec3F) []Vec3F {
	if n < 1 {
		n = 1
	}
	points := make([]Vec3F, 0, n+1)
	points = append(points, p0)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		points = append(points, BezierPoint(t, p0, p1, p2))
	}
	return append(points, p2)
}

// PolylineLength sums the segment lengths of an ordered point sequence
func PolylineLength(points []Vec3F) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += V3FDist(points[i-1], points[i])
	}
	return total
}

// PolylineAt returns the point at fraction t of the polyline's arc length
func PolylineAt(points []Vec3F, t float64) Vec3F {
	switch len(points) {
	case 0:
		return Vec3F{}
	case 1:
		return points[0]
	}
	if t <= 0 {
		return points[0]
	}
	if t >= 1 {
		return points[len(points)-1]
	}

	target := PolylineLength(points) * t
	for i := 1; i < len(points); i++ {
		step := V3FDist(points[i-1], points[i])
		if step >= target {
			if step == 0 {
				return points[i]
			}
			return V3FLerp(points[i-1], points[i], target/step)
		}
		target -= step
	}
	return points[len(points)-1]
}
