// Package segment computes the anchors and follow curves of placed road pieces.
package segment

import (
	"fmt"
	"time"

	"github.com/lixenwraith/roadgen/clock"
	"github.com/lixenwraith/roadgen/obstacle"
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Segment is one instantiated road tile
type Segment struct {
	Handle world.Handle
	Piece  *Piece
	Index  int // Catalog index the piece came from

	Position  vmath.Vec3F
	Bounds    vmath.Bounds
	RotationY int

	AssetStart vmath.Vec3F
	AssetEnd   vmath.Vec3F
	AssetLeft  vmath.Vec3F // Crossroad only

	RoadCenter    vmath.Vec3F
	CreatureSpawn vmath.Vec3F

	// RoadHeight is the bounds X extent, RoadWidth the Z extent
	RoadHeight float64
	RoadWidth  float64

	CurvePoints      []vmath.Vec3F
	CurvePointsCross []vmath.Vec3F

	Obstacles []obstacle.Instance

	helper    vmath.Vec3F
	world     world.World
	task      clock.TaskID
	activated bool
	scheduled bool
	destroyed bool
}

// Type returns the piece type
func (s *Segment) Type() Type {
	return s.Piece.Type
}

// Place instantiates piece in w and activates it
// On error the instance is already removed from the world
func Place(w world.World, piece *Piece, index int, position, rotation vmath.Vec3F, rng *vmath.FastRand) (*Segment, error) {
	h := w.Instantiate(piece.Prototype, position, rotation)
	s := &Segment{
		Handle: h,
		Piece:  piece,
		Index:  index,
		world:  w,
	}
	if err := s.activate(rng); err != nil {
		w.Destroy(h)
		s.destroyed = true
		return nil, err
	}
	return s, nil
}

// activate reads the instance's world state, computes geometry and spawns obstacles
// Only the first call spawns; obstacles belong to the segment for its lifetime
func (s *Segment) activate(rng *vmath.FastRand) error {
	if s.activated {
		return nil
	}
	pos, ok := s.world.Position(s.Handle)
	if !ok {
		return fmt.Errorf("%w: handle %v is not live", ErrGeometry, s.Handle)
	}
	rot, _ := s.world.Rotation(s.Handle)
	bounds, _ := s.world.BoundsOf(s.Handle)

	s.Position = pos
	s.Bounds = bounds
	s.RotationY = vmath.NormalizeDegrees(rot.Y)
	s.RoadHeight = bounds.Size.X
	s.RoadWidth = bounds.Size.Z

	if err := s.ComputeGeometry(); err != nil {
		return err
	}

	if rng != nil {
		spawner := obstacle.NewSpawner(s.Piece.Obstacles, s.world, rng)
		s.Obstacles = spawner.Spawn(obstacle.Placement{
			Bounds:    s.Bounds,
			Position:  s.Position,
			RotationY: s.RotationY,
		})
	}
	s.activated = true
	return nil
}

// ComputeGeometry derives anchors and curves from bounds, position and rotation
func (s *Segment) ComputeGeometry() error {
	if !vmath.IsCanonical(s.RotationY) {
		return fmt.Errorf("%w: rotation %d is not a quarter turn", ErrGeometry, s.RotationY)
	}

	a, err := anchorsFor(s.Piece.Type, s.RotationY, vmath.NewFrame(s.Bounds, s.Piece.Width, s.Piece.Length), s.Piece.SpecialOffset)
	if err != nil {
		return err
	}

	s.AssetStart = s.point(a.start)
	s.AssetEnd = s.point(a.end)
	s.CreatureSpawn = s.point(a.helper)
	s.RoadCenter = s.point(xz{})
	s.CurvePoints = nil
	s.CurvePointsCross = nil

	if a.curve {
		s.helper = s.point(a.helper)
		s.CurvePoints = vmath.GenerateCurve(s.Piece.curveSamples(), s.AssetStart, s.helper, s.AssetEnd)
	}
	if a.cross {
		s.AssetLeft = s.point(a.left)
		s.CurvePointsCross = vmath.GenerateCurve(s.Piece.curveSamples(), s.AssetStart, s.helper, s.AssetLeft)
	}
	return nil
}

// point places a center offset at the segment's transform height
func (s *Segment) point(o xz) vmath.Vec3F {
	return vmath.Vec3F{
		X: s.Bounds.Center.X + o.x,
		Y: s.Position.Y,
		Z: s.Bounds.Center.Z + o.z,
	}
}

// Path returns the points the player follows across this segment
// Straight pieces have no curve and follow start to end
func (s *Segment) Path(crossBranch bool) []vmath.Vec3F {
	if crossBranch && len(s.CurvePointsCross) > 0 {
		return s.CurvePointsCross
	}
	if len(s.CurvePoints) > 0 {
		return s.CurvePoints
	}
	return []vmath.Vec3F{s.AssetStart, s.AssetEnd}
}

// ScheduleDestruction destroys the segment after delay of scheduler time
// Repeated calls keep the first schedule
func (s *Segment) ScheduleDestruction(sched *clock.Scheduler, delay time.Duration) {
	if s.scheduled || s.destroyed {
		return
	}
	s.scheduled = true
	s.task = sched.Schedule(delay, s.Destroy)
}

// CancelDestruction drops a pending scheduled destruction
func (s *Segment) CancelDestruction(sched *clock.Scheduler) bool {
	if !s.scheduled {
		return false
	}
	s.scheduled = false
	return sched.Cancel(s.task)
}

// Scheduled reports whether a destruction is pending
func (s *Segment) Scheduled() bool {
	return s.scheduled && !s.destroyed
}

// Destroy removes the segment and its obstacles from the world, once
func (s *Segment) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	for _, o := range s.Obstacles {
		s.world.Destroy(o.Handle)
	}
	s.world.Destroy(s.Handle)
}

// Destroyed reports whether Destroy has run
func (s *Segment) Destroyed() bool {
	return s.destroyed
}
