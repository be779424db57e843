// Package generator grows an endless road ahead of a player, keeps a bounded
// window of live pieces, and steers back inside a square border.
package generator

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/roadgen/clock"
	"github.com/lixenwraith/roadgen/events"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Player reports the road piece the player currently stands on
type Player interface {
	CurrentSegment() world.Handle
}

// Generator owns the active road window of one route
// All methods must be called from the host tick goroutine
type Generator struct {
	cfg    Config
	part   Partition
	world  world.World
	player Player

	rng   *vmath.FastRand
	sched *clock.Scheduler
	queue *events.EventQueue

	// active is ordered oldest first; the frontier is the piece new pieces attach to
	active   []*segment.Segment
	frontier *segment.Segment
	// retiring holds pieces waiting on their destruction timer
	retiring []*segment.Segment

	crossing   world.Handle
	leftSpawn  *segment.Segment
	rightSpawn *segment.Segment

	generation         int
	closeToEdge        bool
	edgeTurn           bool
	crossRoadGenerated bool
	clockwise          bool

	started        bool
	isActive       bool
	needsPrefill   bool
	clearRequested bool
	cleared        bool
	showBorder     bool

	teleport   TeleportTarget
	portalSeen map[world.Handle]bool

	fault error
	frame int64
}

// New validates cfg and returns an idle generator
func New(cfg Config, w world.World, player Player) (*Generator, error) {
	if w == nil || player == nil {
		return nil, fmt.Errorf("%w: world and player are required", ErrConfiguration)
	}
	part, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:        cfg,
		part:       part,
		world:      w,
		player:     player,
		rng:        vmath.NewFastRand(cfg.Seed),
		sched:      clock.NewScheduler(),
		queue:      events.NewEventQueue(),
		portalSeen: make(map[world.Handle]bool),
	}, nil
}

// Start places the start piece and fills the window
// Calling Start again is a no-op
func (g *Generator) Start() error {
	if g.started {
		return nil
	}
	g.started = true
	g.isActive = true
	g.clearRequested = false

	if err := g.placeStart(); err != nil {
		return g.halt(err)
	}
	if err := g.prefill(); err != nil {
		return g.halt(err)
	}
	log.Printf("generator: started at %v with %d pieces", g.cfg.Origin, len(g.active))
	return nil
}

// Activate resumes generation, starting the generator on first use
func (g *Generator) Activate() error {
	if !g.started {
		return g.Start()
	}
	if g.fault != nil {
		return g.fault
	}
	g.isActive = true
	return nil
}

// Deactivate pauses generation; pending destructions keep running
func (g *Generator) Deactivate() {
	g.isActive = false
}

// SetActive toggles between Activate and Deactivate
func (g *Generator) SetActive(active bool) error {
	if active {
		return g.Activate()
	}
	g.Deactivate()
	return nil
}

// Active reports whether the generator extends the road on Update
func (g *Generator) Active() bool {
	return g.isActive
}

// RequestClear asks for teardown on the next Update while inactive
func (g *Generator) RequestClear() {
	g.clearRequested = true
}

// Update runs one generator tick with dt of game time
// Returns the halting error once generation has faulted
func (g *Generator) Update(dt time.Duration) error {
	g.frame++
	if g.fault != nil {
		g.sched.Advance(dt)
		return g.fault
	}

	if g.isActive {
		if g.needsPrefill {
			g.needsPrefill = false
			g.cleared = false
			if err := g.prefill(); err != nil {
				return g.halt(err)
			}
		}

		if len(g.active) <= g.cfg.PiecesAtOnce && !g.crossRoadGenerated {
			if err := g.generateRoad(); err != nil {
				return g.halt(err)
			}
		}

		if g.crossRoadGenerated {
			g.resolveCrossroad()
		}

		g.retire()
		g.checkPortal()
	}

	if g.clearRequested && !g.isActive {
		if err := g.clear(); err != nil {
			return g.halt(err)
		}
	}

	g.sched.Advance(dt)
	return nil
}

// prefill extends the start piece to PiecesAtOnce pieces, stopping at a pending crossroad
func (g *Generator) prefill() error {
	for i := 1; i < g.cfg.PiecesAtOnce && !g.crossRoadGenerated; i++ {
		if err := g.generateRoad(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) placeStart() error {
	rot := g.cfg.DefaultRotation
	rot.Y += g.cfg.StartRotationY
	seg, err := segment.Place(g.world, &g.cfg.Pieces[0], 0, g.cfg.Origin, rot, g.rng)
	if err != nil {
		return err
	}
	g.active = append(g.active, seg)
	g.frontier = seg
	g.emitSegment(events.EventSegmentSpawned, seg)
	return nil
}

// generateRoad attaches one piece, or both crossroad branches, to the frontier
func (g *Generator) generateRoad() error {
	g.generation++

	frontier := g.frontier
	rot := frontier.RotationY

	var heading int
	switch frontier.Type() {
	case segment.Right:
		heading = rot + 90
	case segment.Left:
		heading = rot - 90
	case segment.Crossroad:
		return g.spawnBranches()
	default:
		heading = rot
	}
	g.checkBorders(rot)

	idx := g.pick(0, g.part.CrossStart, "non-crossroad")

	if g.closeToEdge {
		if g.clockwise {
			idx = g.pick(g.part.LeftMark+1, g.part.RightMark+1, "right")
		} else {
			idx = g.pick(g.part.StraightMark+1, g.part.LeftMark+1, "left")
		}
		g.closeToEdge = false
		g.edgeTurn = true
		return g.placeNext(idx, frontier.AssetEnd, heading)
	}
	g.edgeTurn = false

	switch {
	case g.generation%g.cfg.WhenToSpawnCross == 0 && g.part.Crossroad > 0:
		if g.bordersCondition(rot, g.cfg.CrossRoadBorderSpace) {
			// Retry the crossroad on the next piece
			g.generation--
			idx = g.pick(0, g.part.StraightMark+1, "straight")
			g.emit(events.EventCrossroadDeferred, nil)
		} else {
			idx = g.pick(g.part.CrossStart, g.part.Total, "crossroad")
		}
	case g.generation%2 == 0:
		idx = g.pick(0, g.part.StraightMark+1, "straight")
	}

	if idx <= g.part.StraightMark && g.portalDue() {
		return g.placePiece(g.cfg.Portal, PortalIndex, frontier.AssetEnd, heading)
	}
	return g.placeNext(idx, frontier.AssetEnd, heading)
}

// checkBorders flags a forced turn when the frontier nears the border
func (g *Generator) checkBorders(rot int) {
	if g.bordersCondition(rot, g.cfg.NormalRoadBorderSpace) {
		g.closeToEdge = true
		g.emitSegment(events.EventEdgeReached, g.frontier)
	}
}

func (g *Generator) bordersCondition(rot, space int) bool {
	f := g.frontier
	return g.Border().Exceeds(f.Position, rot, f.RoadHeight, f.RoadWidth, space)
}

// spawnBranches places one start piece on each crossroad exit
func (g *Generator) spawnBranches() error {
	cross := g.frontier
	rot := cross.RotationY

	left, err := g.placeBranch(cross.AssetLeft, rot-90)
	if err != nil {
		return err
	}
	right, err := g.placeBranch(cross.AssetEnd, rot+90)
	if err != nil {
		left.Destroy()
		g.active = g.active[:len(g.active)-1]
		return err
	}

	g.crossing = cross.Handle
	g.leftSpawn = left
	g.rightSpawn = right
	g.crossRoadGenerated = true
	g.emit(events.EventCrossroadSpawned, &events.CrossroadPayload{
		Crossroad: cross.Handle,
		Left:      left.Handle,
		Right:     right.Handle,
	})
	return nil
}

func (g *Generator) placeBranch(at vmath.Vec3F, heading int) (*segment.Segment, error) {
	seg, err := g.instantiate(&g.cfg.Pieces[0], 0, at, heading)
	if err != nil {
		return nil, err
	}
	g.active = append(g.active, seg)
	g.emitSegment(events.EventSegmentSpawned, seg)
	return seg, nil
}

// placeNext instantiates catalog piece idx and makes it the frontier
func (g *Generator) placeNext(idx int, at vmath.Vec3F, heading int) error {
	if idx < 0 || idx >= g.part.Total {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, idx, g.part.Total))
	}
	return g.placePiece(&g.cfg.Pieces[idx], idx, at, heading)
}

func (g *Generator) placePiece(piece *segment.Piece, idx int, at vmath.Vec3F, heading int) error {
	seg, err := g.instantiate(piece, idx, at, heading)
	if err != nil {
		return err
	}
	g.active = append(g.active, seg)
	g.frontier = seg

	switch {
	case idx > g.part.StraightMark && idx <= g.part.LeftMark:
		g.clockwise = false
	case idx > g.part.LeftMark && idx <= g.part.RightMark:
		g.clockwise = true
	}

	g.emitSegment(events.EventSegmentSpawned, seg)
	return nil
}

func (g *Generator) instantiate(piece *segment.Piece, idx int, at vmath.Vec3F, heading int) (*segment.Segment, error) {
	rot := vmath.Vec3F{
		X: g.cfg.DefaultRotation.X,
		Y: float64(vmath.NormalizeDegrees(float64(heading))),
		Z: g.cfg.DefaultRotation.Z,
	}
	seg, err := segment.Place(g.world, piece, idx, at, rot, g.rng)
	if err != nil {
		return nil, fmt.Errorf("placing %s at %v heading %d: %w", piece.Prototype.Name, at, heading, err)
	}
	return seg, nil
}

// pick draws uniformly from [lo, hi); an empty or out-of-catalog range is a programming error
func (g *Generator) pick(lo, hi int, kind string) int {
	if lo < 0 || lo >= hi || hi > g.part.Total {
		panic(fmt.Errorf("%w: empty %s range [%d,%d) of %d", ErrIndex, kind, lo, hi, g.part.Total))
	}
	return g.rng.Range(lo, hi)
}

// resolveCrossroad keeps the branch the player entered and removes the other
func (g *Generator) resolveCrossroad() {
	cur := g.player.CurrentSegment()
	switch {
	case g.leftSpawn != nil && cur == g.leftSpawn.Handle:
		g.chooseBranch(g.leftSpawn, g.rightSpawn, false)
	case g.rightSpawn != nil && cur == g.rightSpawn.Handle:
		g.chooseBranch(g.rightSpawn, g.leftSpawn, true)
	}
}

func (g *Generator) chooseBranch(keep, discard *segment.Segment, clockwise bool) {
	payload := &events.CrossroadPayload{
		Crossroad: g.crossing,
		Left:      g.leftSpawn.Handle,
		Right:     g.rightSpawn.Handle,
		Chosen:    keep.Handle,
		Discarded: discard.Handle,
		Clockwise: clockwise,
	}
	g.remove(discard)
	discard.Destroy()

	g.frontier = keep
	g.clockwise = clockwise
	g.crossRoadGenerated = false
	g.crossing = world.NilHandle
	g.leftSpawn = nil
	g.rightSpawn = nil

	g.emit(events.EventCrossroadResolved, payload)
}

func (g *Generator) remove(s *segment.Segment) {
	for i, a := range g.active {
		if a == s {
			g.active = append(g.active[:i], g.active[i+1:]...)
			return
		}
	}
}

// retire schedules the oldest piece for destruction once the player has moved past it
func (g *Generator) retire() {
	if len(g.active) < 2 {
		return
	}
	if g.player.CurrentSegment() != g.active[1].Handle {
		return
	}
	oldest := g.active[0]
	g.active = g.active[1:]
	oldest.ScheduleDestruction(g.sched, g.cfg.DestructionTimer)
	g.pruneRetiring()
	g.retiring = append(g.retiring, oldest)
	g.emitSegment(events.EventSegmentRetired, oldest)
}

// pruneRetiring drops retired pieces whose timer already fired
func (g *Generator) pruneRetiring() {
	live := g.retiring[:0]
	for _, s := range g.retiring {
		if !s.Destroyed() {
			live = append(live, s)
		}
	}
	clear(g.retiring[len(live):])
	g.retiring = live
}

// clear tears the road down to a fresh start piece
// Pending destructions are cancelled and their pieces destroyed here, once
// A generator that never started has nothing to tear down
func (g *Generator) clear() error {
	g.clearRequested = false
	if !g.started {
		return nil
	}

	cancelled := 0
	for _, s := range g.retiring {
		if s.CancelDestruction(g.sched) {
			cancelled++
		}
		s.Destroy()
	}
	g.retiring = nil

	for _, s := range g.active {
		s.Destroy()
	}
	removed := len(g.active)

	g.active = nil
	g.frontier = nil
	g.crossing = world.NilHandle
	g.leftSpawn = nil
	g.rightSpawn = nil
	g.generation = 0
	g.closeToEdge = false
	g.edgeTurn = false
	g.crossRoadGenerated = false
	g.clockwise = false
	clear(g.portalSeen)

	if err := g.placeStart(); err != nil {
		return err
	}
	g.needsPrefill = true
	g.cleared = true

	log.Printf("generator: cleared %d active and %d retiring pieces", removed, cancelled)
	g.emit(events.EventGeneratorCleared, nil)
	return nil
}

// halt stops generation after a geometry fault
func (g *Generator) halt(err error) error {
	g.fault = err
	g.isActive = false
	log.Printf("generator: halted: %v", err)
	g.emit(events.EventGeometryFault, err)
	return err
}

func (g *Generator) emitSegment(t events.EventType, s *segment.Segment) {
	g.emit(t, &events.SegmentPayload{
		Handle:     s.Handle,
		Type:       s.Type(),
		Index:      s.Index,
		Generation: g.generation,
	})
}

func (g *Generator) emit(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.sched.Now(),
	})
}

// Events returns the generator's event queue
func (g *Generator) Events() *events.EventQueue {
	return g.queue
}

// Segments returns a copy of the active list, oldest first
func (g *Generator) Segments() []*segment.Segment {
	out := make([]*segment.Segment, len(g.active))
	copy(out, g.active)
	return out
}

// Frontier returns the piece new pieces attach to
func (g *Generator) Frontier() *segment.Segment {
	return g.frontier
}

// Branches returns the pending crossroad branches, nil when none
func (g *Generator) Branches() (left, right *segment.Segment) {
	return g.leftSpawn, g.rightSpawn
}

// Generation returns the count of generation steps since start or clear
func (g *Generator) Generation() int {
	return g.generation
}

// Clockwise reports the direction of the last turn
func (g *Generator) Clockwise() bool {
	return g.clockwise
}

// Partition returns the validated catalog layout
func (g *Generator) Partition() Partition {
	return g.part
}

// Scheduler returns the game-time scheduler running deferred destruction
func (g *Generator) Scheduler() *clock.Scheduler {
	return g.sched
}

// Fault returns the error that halted generation, if any
func (g *Generator) Fault() error {
	return g.fault
}

// Border returns the generation area
func (g *Generator) Border() Border {
	return Border{Center: g.cfg.Origin, Size: g.cfg.BorderSize}
}

// ShowBorder reports whether the border outline should be drawn
func (g *Generator) ShowBorder() bool {
	return g.showBorder
}

// SetShowBorder toggles border drawing
func (g *Generator) SetShowBorder(show bool) {
	g.showBorder = show
}

// State returns the current phase
func (g *Generator) State() State {
	switch {
	case !g.started || g.fault != nil:
		return StateIdle
	case g.cleared:
		return StateCleared
	case !g.isActive:
		return StateIdle
	case g.crossRoadGenerated:
		return StateCrossroadPending
	case g.edgeTurn:
		return StateClosingOut
	default:
		return StateGenerating
	}
}
