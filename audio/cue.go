// Package audio synthesizes short cues for road events.
package audio

// Cue identifies a road event sound
type Cue int

const (
	CueSpawn Cue = iota
	CueRetire
	CueCrossroad
	CueResolve
	CueEdge
	CuePortal
	CueFault
	CueClear
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueRetire:
		return "retire"
	case CueCrossroad:
		return "crossroad"
	case CueResolve:
		return "resolve"
	case CueEdge:
		return "edge"
	case CuePortal:
		return "portal"
	case CueFault:
		return "fault"
	case CueClear:
		return "clear"
	default:
		return "unknown"
	}
}
