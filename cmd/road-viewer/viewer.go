package main

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/roadgen/audio"
	"github.com/lixenwraith/roadgen/events"
	"github.com/lixenwraith/roadgen/generator"
	"github.com/lixenwraith/roadgen/runner"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// stats counts road events for the status line and headless summary
type stats struct {
	ticks      int
	spawned    int
	retired    int
	crossroads int
	resolved   int
	edges      int
	deferred   int
	portals    int
	clears     int
}

// viewer drives one or two linked routes and the runner walking them
type viewer struct {
	world  *world.Memory
	routes []*generator.Generator
	route  int

	routers []*events.Router[*viewer]
	runner  *runner.Runner
	cues    *audio.Player

	// Retired pieces still waiting on their destruction timer
	retiring map[world.Handle]vmath.Bounds

	prefer runner.Branch
	status string
	stats  stats
	err    error
}

// newViewer builds the primary route, and a second linked route when cfg has portals
func newViewer(cfg generator.Config, cues *audio.Player) (*viewer, error) {
	v := &viewer{
		world:    world.NewMemory(),
		cues:     cues,
		retiring: make(map[world.Handle]vmath.Bounds),
	}
	v.runner = runner.New(v, v.choose)

	primary, err := generator.New(cfg, v.world, v.runner)
	if err != nil {
		return nil, err
	}
	v.routes = append(v.routes, primary)

	if cfg.Portal != nil && cfg.PortalEvery > 0 {
		second := cfg
		second.Origin = vmath.V3FAdd(cfg.Origin, vmath.Vec3F{X: float64(cfg.BorderSize) * 2})
		if cfg.Seed != 0 {
			second.Seed = cfg.Seed + 1
		}
		linked, err := generator.New(second, v.world, v.runner)
		if err != nil {
			return nil, err
		}
		primary.LinkPortal(linked)
		linked.LinkPortal(primary)
		v.routes = append(v.routes, linked)
	}

	for i, g := range v.routes {
		r := events.NewRouter[*viewer](g.Events())
		v.registerHandlers(r)
		route := i + 1
		r.Observe(func(v *viewer, ev events.GameEvent) {
			log.Printf("viewer: route %d frame %d: %s", route, ev.Frame, ev.Type)
		})
		v.routers = append(v.routers, r)
	}
	return v, nil
}

func (v *viewer) registerHandlers(r *events.Router[*viewer]) {
	r.Register(events.HandlerFunc[*viewer]{
		Types: []events.EventType{events.EventSegmentSpawned},
		Fn: func(v *viewer, ev events.GameEvent) {
			v.stats.spawned++
			v.cues.Play(audio.CueSpawn)
		},
	})
	r.Register(events.HandlerFunc[*viewer]{
		Types: []events.EventType{events.EventSegmentRetired},
		Fn: func(v *viewer, ev events.GameEvent) {
			v.stats.retired++
			if p, ok := ev.Payload.(*events.SegmentPayload); ok {
				if b, live := v.world.BoundsOf(p.Handle); live {
					v.retiring[p.Handle] = b
				}
			}
			v.cues.Play(audio.CueRetire)
		},
	})
	r.Register(events.HandlerFunc[*viewer]{
		Types: []events.EventType{events.EventCrossroadSpawned, events.EventCrossroadResolved},
		Fn: func(v *viewer, ev events.GameEvent) {
			if ev.Type == events.EventCrossroadSpawned {
				v.stats.crossroads++
				v.status = "crossroad ahead: h left, l right"
				v.cues.Play(audio.CueCrossroad)
				return
			}
			v.stats.resolved++
			dir := "left"
			if p, ok := ev.Payload.(*events.CrossroadPayload); ok && p.Clockwise {
				dir = "right"
			}
			v.status = "took the " + dir + " branch"
			v.prefer = runner.BranchNone
			v.cues.Play(audio.CueResolve)
		},
	})
	r.Register(events.HandlerFunc[*viewer]{
		Types: []events.EventType{events.EventEdgeReached, events.EventCrossroadDeferred},
		Fn: func(v *viewer, ev events.GameEvent) {
			if ev.Type == events.EventCrossroadDeferred {
				v.stats.deferred++
				return
			}
			v.stats.edges++
			v.cues.Play(audio.CueEdge)
		},
	})
	r.On(func(v *viewer, ev events.GameEvent) {
		v.stats.clears++
		v.runner.Reset()
		v.status = "road cleared"
		v.cues.Play(audio.CueClear)
	}, events.EventGeneratorCleared)
	r.On(func(v *viewer, ev events.GameEvent) {
		v.stats.portals++
		v.route = (v.route + 1) % len(v.routes)
		v.runner.Reset()
		v.status = fmt.Sprintf("portal: route %d", v.route+1)
		v.cues.Play(audio.CuePortal)
	}, events.EventPortalEntered)
	r.On(func(v *viewer, ev events.GameEvent) {
		v.status = fmt.Sprintf("halted: %v", ev.Payload)
		v.cues.Play(audio.CueFault)
	}, events.EventGeometryFault)
}

// current returns the route the runner is on
func (v *viewer) current() *generator.Generator {
	return v.routes[v.route]
}

// Segments implements runner.Road for the current route
func (v *viewer) Segments() []*segment.Segment {
	return v.current().Segments()
}

// Branches implements runner.Road for the current route
func (v *viewer) Branches() (left, right *segment.Segment) {
	return v.current().Branches()
}

// choose answers the runner with the player's pending branch key
func (v *viewer) choose(_, _ *segment.Segment) runner.Branch {
	return v.prefer
}

func (v *viewer) start() error {
	if err := v.current().Start(); err != nil {
		return err
	}
	log.Printf("viewer: %d route(s), %d pieces live", len(v.routes), v.world.Count())
	return nil
}

// step advances the runner, every route, and event handlers by dt
func (v *viewer) step(dt time.Duration) error {
	v.stats.ticks++
	v.runner.Update(dt)
	for i, g := range v.routes {
		if err := g.Update(dt); err != nil && v.err == nil {
			v.err = fmt.Errorf("route %d: %w", i+1, err)
		}
		v.routers[i].DispatchAll(v)
	}
	for h := range v.retiring {
		if !v.world.Alive(h) {
			delete(v.retiring, h)
		}
	}
	return v.err
}

// Key actions, shared by the terminal loop and tests

func (v *viewer) preferBranch(b runner.Branch) {
	v.prefer = b
	v.status = "next crossroad: " + b.String()
}

func (v *viewer) toggleActive() {
	g := v.current()
	if err := g.SetActive(!g.Active()); err != nil {
		v.status = fmt.Sprintf("activate failed: %v", err)
		return
	}
	if g.Active() {
		v.status = "generation resumed"
	} else {
		v.status = "generation paused, c clears"
	}
}

func (v *viewer) requestClear() {
	g := v.current()
	g.RequestClear()
	if g.Active() {
		v.status = "clear pending, pause to apply"
	}
}

func (v *viewer) toggleBorder() {
	for _, g := range v.routes {
		g.SetShowBorder(!g.ShowBorder())
	}
}

func (v *viewer) summary() string {
	g := v.current()
	return fmt.Sprintf("ticks=%d route=%d state=%s generation=%d active=%d objects=%d spawned=%d retired=%d crossroads=%d resolved=%d edges=%d deferred=%d portals=%d clears=%d",
		v.stats.ticks, v.route+1, g.State(), g.Generation(), len(g.Segments()), v.world.Count(),
		v.stats.spawned, v.stats.retired, v.stats.crossroads, v.stats.resolved,
		v.stats.edges, v.stats.deferred, v.stats.portals, v.stats.clears)
}
