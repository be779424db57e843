// Package obstacle places hazards inside the three lane areas of a road segment.
package obstacle

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/roadgen/vmath"
	"github.com/lixenwraith/roadgen/world"
)

// Behavior selects how an obstacle is sampled inside its lane area
type Behavior int

const (
	RunAround Behavior = iota + 1 // Anywhere across the lane width
	Jump                          // Lane middle, ground height
	Slide                         // Lane middle, raised by the height offset
)

func (b Behavior) String() string {
	switch b {
	case RunAround:
		return "run_around"
	case Jump:
		return "jump"
	case Slide:
		return "slide"
	default:
		return fmt.Sprintf("behavior(%d)", int(b))
	}
}

// ParseBehavior accepts the String form, case-insensitive, with '-' or '_'
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "run_around", "runaround":
		return RunAround, nil
	case "jump":
		return Jump, nil
	case "slide":
		return Slide, nil
	}
	return 0, fmt.Errorf("unknown obstacle behavior %q", s)
}

// Prototype is an obstacle that can be instantiated on a segment
type Prototype struct {
	world.Prototype
	Behavior Behavior
}

// Pin controls one lane area when spawning is controlled
type Pin struct {
	Use       bool
	Prototype *Prototype // nil falls back to a random catalog pick
}

// Config is the per-piece obstacle spawner setup
type Config struct {
	Catalog      []Prototype
	HeightOffset float64
	Spacing      float64

	// Controlled bypasses the random count; Areas[0] is the area closest to the segment's middle
	Controlled bool
	Areas      [AreaCount]Pin
}

// Instance is a spawned obstacle
type Instance struct {
	Handle    world.Handle
	Prototype *Prototype
	Area      int // 0-based lane area index
	Position  vmath.Vec3F
}
