package segment

import (
	"github.com/lixenwraith/roadgen/obstacle"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Piece is one catalog entry: an authored road tile and its obstacle setup
type Piece struct {
	Prototype world.Prototype
	Type      Type

	// Lane subdivisions of the X and Z extents
	Width  int
	Length int

	// CurveSamples is the number of bezier steps; zero uses parameter.CurveSamples
	CurveSamples int
	// SpecialOffset pulls turn anchors inward from the lane step
	SpecialOffset float64

	Obstacles obstacle.Config
}

func (p *Piece) curveSamples() int {
	if p.CurveSamples > 0 {
		return p.CurveSamples
	}
	return parameter.CurveSamples
}

// EntryPivot returns the local-frame offset from pivot to bounds center that
// puts the piece's pivot on its start anchor at rotation 0
func EntryPivot(p *Piece) (vmath.Vec3F, error) {
	b := vmath.Bounds{Size: p.Prototype.Size}
	off, err := anchorsFor(p.Type, 0, vmath.NewFrame(b, p.Width, p.Length), p.SpecialOffset)
	if err != nil {
		return vmath.Vec3F{}, err
	}
	return vmath.Vec3F{X: -off.start.x, Y: p.Prototype.Pivot.Y, Z: -off.start.z}, nil
}
