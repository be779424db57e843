// Package runner moves a stand-in player along generated road pieces.
package runner

import (
	"time"

	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Branch selects a crossroad exit
type Branch int

const (
	BranchNone Branch = iota
	BranchLeft
	BranchRight
)

func (b Branch) String() string {
	switch b {
	case BranchLeft:
		return "left"
	case BranchRight:
		return "right"
	default:
		return "none"
	}
}

// Choice picks an exit when the runner reaches a crossroad with both branches placed
// BranchNone waits at the crossroad
type Choice func(left, right *segment.Segment) Branch

// Road is the view of a generator the runner needs
type Road interface {
	Segments() []*segment.Segment
	Branches() (left, right *segment.Segment)
}

// Runner walks the active road at a constant piece rate and implements generator.Player
type Runner struct {
	road   Road
	choose Choice
	speed  float64 // Pieces per second

	current  *segment.Segment
	path     []vmath.Vec3F
	branch   Branch
	progress float64
	position vmath.Vec3F
	stalled  bool
}

// New returns a runner using choose at crossroads; nil always takes the left branch
func New(road Road, choose Choice) *Runner {
	if choose == nil {
		choose = func(_, _ *segment.Segment) Branch { return BranchLeft }
	}
	return &Runner{
		road:   road,
		choose: choose,
		speed:  parameter.RunnerSpeed,
	}
}

// SetSpeed sets the pace in pieces per second, negative values stop the runner
func (r *Runner) SetSpeed(piecesPerSecond float64) {
	if piecesPerSecond < 0 {
		piecesPerSecond = 0
	}
	r.speed = piecesPerSecond
}

// CurrentSegment returns the piece the runner is on
func (r *Runner) CurrentSegment() world.Handle {
	if r.current == nil {
		return world.NilHandle
	}
	return r.current.Handle
}

// Current returns the piece the runner is on, nil before the first Update
func (r *Runner) Current() *segment.Segment {
	return r.current
}

// Position returns the runner's point on its path
func (r *Runner) Position() vmath.Vec3F {
	return r.position
}

// Progress returns the fraction of the current path covered
func (r *Runner) Progress() float64 {
	return r.progress
}

// Stalled reports whether the runner waits at the end of the road
func (r *Runner) Stalled() bool {
	return r.stalled
}

// Reset drops the current piece; the next Update enters the oldest active piece
func (r *Runner) Reset() {
	r.current = nil
	r.path = nil
	r.branch = BranchNone
	r.progress = 0
	r.stalled = false
}

// Update advances the runner by dt
func (r *Runner) Update(dt time.Duration) {
	if r.current == nil || r.current.Destroyed() {
		segs := r.road.Segments()
		if len(segs) == 0 {
			return
		}
		r.enter(segs[0])
	}

	if r.current.Type() == segment.Crossroad && r.branch == BranchNone {
		r.decide()
	}

	r.progress += r.speed * dt.Seconds()
	r.stalled = false
	for r.progress >= 1 {
		next := r.next()
		if next == nil {
			r.progress = 1
			r.stalled = true
			break
		}
		r.progress -= 1
		r.enter(next)
	}
	r.position = vmath.PolylineAt(r.path, r.progress)
}

func (r *Runner) enter(s *segment.Segment) {
	r.current = s
	r.branch = BranchNone
	r.progress = 0
	r.path = s.Path(false)
	if s.Type() == segment.Crossroad {
		r.decide()
	}
}

// decide asks for an exit once both branches exist and picks the matching curve
func (r *Runner) decide() {
	left, right := r.road.Branches()
	if left == nil || right == nil {
		return
	}
	r.branch = r.choose(left, right)
	r.path = r.current.Path(r.branch == BranchLeft)
}

// next returns the piece after the current one, nil when none exists yet
func (r *Runner) next() *segment.Segment {
	if r.current.Type() == segment.Crossroad {
		if r.branch == BranchNone {
			r.decide()
		}
		left, right := r.road.Branches()
		switch r.branch {
		case BranchLeft:
			return left
		case BranchRight:
			return right
		}
		return nil
	}

	// A pending branch has no successor until the crossroad resolves
	if left, right := r.road.Branches(); r.current == left || r.current == right {
		return nil
	}

	segs := r.road.Segments()
	for i, s := range segs {
		if s == r.current && i+1 < len(segs) {
			return segs[i+1]
		}
	}
	return nil
}
