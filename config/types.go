package config

import (
	"time"

	"github.com/lixenwraith/roadgen/vmath"
)

// RootConfig is the TOML document layout
type RootConfig struct {
	Generator GeneratorConfig  `toml:"generator"`
	Counts    *CountsConfig    `toml:"counts"`
	Obstacles []ObstacleConfig `toml:"obstacle"`
	Pieces    []PieceConfig    `toml:"piece"`
	Portal    *PieceConfig     `toml:"portal"`
}

// GeneratorConfig holds window, border and timing settings
// Zero values fall back to parameter defaults
type GeneratorConfig struct {
	PiecesAtOnce          int      `toml:"pieces_at_once"`
	WhenToSpawnCross      int      `toml:"when_to_spawn_cross"`
	BorderSize            int      `toml:"border_size"`
	DestructionTimer      Duration `toml:"destruction_timer"`
	NormalRoadBorderSpace *int     `toml:"normal_road_border_space"`
	CrossRoadBorderSpace  *int     `toml:"cross_road_border_space"`
	Origin                Vec3     `toml:"origin"`
	DefaultRotation       Vec3     `toml:"default_rotation"`
	StartRotationY        float64  `toml:"start_rotation_y"`
	Seed                  uint64   `toml:"seed"`
	PortalEvery           int      `toml:"portal_every"`
}

// CountsConfig declares the expected catalog partition
type CountsConfig struct {
	Straight  int `toml:"straight"`
	Left      int `toml:"left"`
	Right     int `toml:"right"`
	Crossroad int `toml:"crossroad"`
}

// ObstacleConfig is one named obstacle prototype
type ObstacleConfig struct {
	Name     string `toml:"name"`
	Size     Vec3   `toml:"size"`
	Behavior string `toml:"behavior"`
}

// PieceConfig is one catalog entry
type PieceConfig struct {
	Name          string              `toml:"name"`
	Type          string              `toml:"type"`
	Size          Vec3                `toml:"size"`
	PivotY        float64             `toml:"pivot_y"`
	Width         int                 `toml:"width"`
	Length        int                 `toml:"length"`
	CurveSamples  int                 `toml:"curve_samples"`
	SpecialOffset float64             `toml:"special_offset"`
	Obstacles     PieceObstacleConfig `toml:"obstacles"`
}

// PieceObstacleConfig references obstacle prototypes by name
type PieceObstacleConfig struct {
	Catalog      []string    `toml:"catalog"`
	HeightOffset float64     `toml:"height_offset"`
	Spacing      *float64    `toml:"spacing"`
	Controlled   bool        `toml:"controlled"`
	Areas        []PinConfig `toml:"areas"`
}

// PinConfig controls one lane area; an empty Obstacle picks from the catalog
type PinConfig struct {
	Use      bool   `toml:"use"`
	Obstacle string `toml:"obstacle"`
}

// Vec3 decodes a three-number TOML array
type Vec3 [3]float64

func (v Vec3) Vec3F() vmath.Vec3F {
	return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]}
}

// Duration decodes a time.ParseDuration string such as "2s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
