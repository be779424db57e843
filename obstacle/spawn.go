package obstacle

import (
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Count draws the random-mode obstacle count as Range(1,30) % 3 + 1
// Raw values 1..29 weight the outcomes 1:9, 2:10, 3:10 out of 29
func Count(rng *vmath.FastRand) int {
	return rng.Range(1, 30)%3 + 1
}

// Sample picks a position inside area for an obstacle with the given behavior
func Sample(rng *vmath.FastRand, rotationY int, area Area, behavior Behavior, heightOffset float64) vmath.Vec3F {
	var front, back, right, left float64
	longX := vmath.IsLongitudinalX(rotationY)
	if longX {
		front, back = area.Front.X, area.Back.X
		right, left = area.Right.Z, area.Left.Z
	} else {
		front, back = area.Front.Z, area.Back.Z
		right, left = area.Right.X, area.Left.X
	}

	along := rng.RangeF(front, back)
	across := (right + left) / 2
	y := area.Front.Y

	switch behavior {
	case RunAround:
		across = rng.RangeF(right, left)
	case Jump:
	case Slide:
		// Base height doubles before the offset is added
		y += y + heightOffset
	}

	if longX {
		return vmath.Vec3F{X: along, Y: y, Z: across}
	}
	return vmath.Vec3F{X: across, Y: y, Z: along}
}

// Spawner instantiates obstacles for one piece's config
type Spawner struct {
	cfg   Config
	world world.World
	rng   *vmath.FastRand
}

func NewSpawner(cfg Config, w world.World, rng *vmath.FastRand) *Spawner {
	return &Spawner{cfg: cfg, world: w, rng: rng}
}

// Spawn places obstacles on a segment and returns them in placement order
// An empty catalog or a non-canonical rotation places nothing
func (s *Spawner) Spawn(p Placement) []Instance {
	if len(s.cfg.Catalog) == 0 {
		return nil
	}
	areas := LaneAreas(p, s.cfg.Spacing)
	if len(areas) != AreaCount {
		return nil
	}

	var out []Instance
	if !s.cfg.Controlled {
		n := Count(s.rng)
		for i := 0; i < n; i++ {
			out = append(out, s.place(p, areas, i, s.randomPrototype()))
		}
		return out
	}

	for i, pin := range s.cfg.Areas {
		if !pin.Use {
			continue
		}
		proto := pin.Prototype
		if proto == nil {
			proto = s.randomPrototype()
		}
		out = append(out, s.place(p, areas, i, proto))
	}
	return out
}

func (s *Spawner) randomPrototype() *Prototype {
	return &s.cfg.Catalog[s.rng.Intn(len(s.cfg.Catalog))]
}

func (s *Spawner) place(p Placement, areas []Area, index int, proto *Prototype) Instance {
	pos := Sample(s.rng, p.RotationY, areas[index], proto.Behavior, s.cfg.HeightOffset)
	h := s.world.Instantiate(proto.Prototype, pos, vmath.Vec3F{Y: float64(p.RotationY)})
	return Instance{
		Handle:    h,
		Prototype: proto,
		Area:      index,
		Position:  pos,
	}
}
