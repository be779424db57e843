package vmath

import (
	"math"
	"testing"
)

func TestBezierPoint_Endpoints(t *testing.T) {
	p0 := Vec3F{X: -4, Y: 0, Z: 2.5}
	p1 := Vec3F{X: 3, Y: 1, Z: 2.5}
	p2 := Vec3F{X: 3, Y: 0, Z: -4}

	if got := BezierPoint(0, p0, p1, p2); got != p0 {
		t.Errorf("t=0: expected %v, got %v", p0, got)
	}
	if got := BezierPoint(1, p0, p1, p2); got != p2 {
		t.Errorf("t=1: expected %v, got %v", p2, got)
	}

	// Midpoint is 0.25*p0 + 0.5*p1 + 0.25*p2
	mid := BezierPoint(0.5, p0, p1, p2)
	want := Vec3F{X: 0.25*-4 + 0.5*3 + 0.25*3, Y: 0.5, Z: 0.25*2.5 + 0.5*2.5 + 0.25*-4}
	if !V3FApprox(mid, want, 1e-12) {
		t.Errorf("t=0.5: expected %v, got %v", want, mid)
	}
}

func TestGenerateCurve_Deterministic(t *testing.T) {
	p0 := Vec3F{X: 0.1, Z: 0.7}
	p1 := Vec3F{X: 3.3, Z: 0.7}
	p2 := Vec3F{X: 3.3, Z: -3.9}

	a := GenerateCurve(20, p0, p1, p2)
	b := GenerateCurve(20, p0, p1, p2)

	if len(a) != 21 {
		t.Fatalf("Expected 21 points, got %d", len(a))
	}
	if len(a) != len(b) {
		t.Fatalf("Length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Point %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
	if a[0] != p0 {
		t.Errorf("First point: expected %v, got %v", p0, a[0])
	}
	if a[len(a)-1] != p2 {
		t.Errorf("Last point: expected %v, got %v", p2, a[len(a)-1])
	}
}

func TestGenerateCurve_MinimumSamples(t *testing.T) {
	p0 := Vec3F{X: 1}
	p2 := Vec3F{X: 5}
	got := GenerateCurve(0, p0, Vec3F{X: 3}, p2)
	if len(got) != 2 || got[0] != p0 || got[1] != p2 {
		t.Errorf("Expected [p0 p2] for n<1, got %v", got)
	}
}

func TestPolylineAt(t *testing.T) {
	line := []Vec3F{{X: 0}, {X: 2}, {X: 2, Z: 2}}

	tests := []struct {
		name string
		t    float64
		want Vec3F
	}{
		{"start", 0, Vec3F{X: 0}},
		{"quarter", 0.25, Vec3F{X: 1}},
		{"corner", 0.5, Vec3F{X: 2}},
		{"three quarters", 0.75, Vec3F{X: 2, Z: 1}},
		{"end", 1, Vec3F{X: 2, Z: 2}},
		{"clamped", 1.5, Vec3F{X: 2, Z: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolylineAt(line, tt.t)
			if !V3FApprox(got, tt.want, 1e-9) {
				t.Errorf("PolylineAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if l := PolylineLength(line); math.Abs(l-4) > 1e-12 {
		t.Errorf("Expected length 4, got %v", l)
	}
}
