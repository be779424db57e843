package obstacle

import "github.com/lixenwraith/roadgen/vmath"

// AreaCount is the number of parallel lane areas per segment
const AreaCount = 3

// Area bounds a rectangular sampling region
// Front/Back lie on the road's long axis, Right/Left across it
type Area struct {
	Front, Back, Right, Left vmath.Vec3F
}

// Placement is the part of a segment's world state that areas derive from
type Placement struct {
	Bounds    vmath.Bounds
	Position  vmath.Vec3F
	RotationY int
}

// LaneAreas builds the three areas in order: centered, shifted by -spacing, shifted by +spacing
// Quarter extents come from the axis perpendicular to travel
func LaneAreas(p Placement, spacing float64) []Area {
	modifiers := [AreaCount]float64{0, -spacing, spacing}
	y := p.Bounds.Max().Y
	areas := make([]Area, 0, AreaCount)

	switch p.RotationY {
	case 0, 180:
		quarter := p.Bounds.Size.Z / 4
		cx := p.Bounds.Center.X
		z := p.Position.Z
		for _, m := range modifiers {
			areas = append(areas, Area{
				Front: vmath.Vec3F{X: cx - m - quarter, Y: y, Z: z},
				Back:  vmath.Vec3F{X: cx - m + quarter, Y: y, Z: z},
				Right: vmath.Vec3F{X: cx - m, Y: y, Z: z - quarter},
				Left:  vmath.Vec3F{X: cx - m, Y: y, Z: z + quarter},
			})
		}
	case 90, 270:
		quarter := p.Bounds.Size.X / 4
		cz := p.Bounds.Center.Z
		x := p.Position.X
		for _, m := range modifiers {
			areas = append(areas, Area{
				Front: vmath.Vec3F{X: x, Y: y, Z: cz - m - quarter},
				Back:  vmath.Vec3F{X: x, Y: y, Z: cz - m + quarter},
				Right: vmath.Vec3F{X: x - quarter, Y: y, Z: cz - m},
				Left:  vmath.Vec3F{X: x + quarter, Y: y, Z: cz - m},
			})
		}
	default:
		return nil
	}
	return areas
}
