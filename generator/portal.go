package generator

import (
	"log"

	"github.com/lixenwraith/roadgen/events"
	"github.com/lixenwraith/roadgen/segment"
)

// TeleportTarget receives control when the player enters a portal piece
// *Generator implements it, so two routes can hand off to each other
type TeleportTarget interface {
	Activate() error
}

// LinkPortal sets the target for portal pieces; nil disables portals
func (g *Generator) LinkPortal(target TeleportTarget) {
	g.teleport = target
}

// portalDue reports whether this generation replaces a straight with a portal
func (g *Generator) portalDue() bool {
	return g.teleport != nil &&
		g.cfg.Portal != nil &&
		g.cfg.PortalEvery > 0 &&
		g.generation%g.cfg.PortalEvery == 0
}

// checkPortal hands control to the linked target once per portal piece
func (g *Generator) checkPortal() {
	if g.teleport == nil {
		return
	}
	cur := g.player.CurrentSegment()
	for _, s := range g.active {
		if s.Handle != cur || s.Type() != segment.Portal || g.portalSeen[s.Handle] {
			continue
		}
		g.portalSeen[s.Handle] = true
		g.isActive = false
		g.emitSegment(events.EventPortalEntered, s)
		if err := g.teleport.Activate(); err != nil {
			log.Printf("generator: portal target failed to activate: %v", err)
		}
		return
	}
}
