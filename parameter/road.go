package parameter

import "time"

// Generator defaults
const (
	// Pieces kept generated ahead of the player, values above 4 start to overlap
	PiecesAtOnce = 3

	// A crossroad is attempted every WhenToSpawnCross generations
	WhenToSpawnCross = 6

	// Side of the square play area centered on the generator
	BorderSize = 100

	// Delay between retiring a piece and destroying it
	DestructionTimer = 2 * time.Second

	// Border clearance multipliers, in piece extents
	NormalRoadBorderSpace = 3
	CrossRoadBorderSpace  = 5
)

// Segment defaults
const (
	// Lane subdivisions per piece axis
	LaneWidth  = 8
	LaneLength = 8

	// Bezier steps per curve, the curve has CurveSamples+1 points
	CurveSamples = 20
)

// Obstacle defaults
const (
	// Distance between neighbouring lane areas
	ObstacleSpacing = 2.0
)

// Viewer defaults
const (
	TickInterval  = 16 * time.Millisecond
	MaxFrameDelta = 100 * time.Millisecond

	// Runner speed in segments per second
	RunnerSpeed = 0.8

	// World units per terminal column; rows use twice this to offset cell aspect
	ViewerScale = 1.0

	// Cue volume in [0,1]
	AudioVolume = 0.5
)
