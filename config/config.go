// Package config loads road generator catalogs and settings from TOML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/roadgen/generator"
	"github.com/lixenwraith/roadgen/obstacle"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/world"
)

//go:embed default.toml
var defaultTOML []byte

// Default returns the embedded catalog
func Default() (generator.Config, error) {
	return Parse(defaultTOML)
}

// DefaultTOML returns a copy of the embedded document
func DefaultTOML() []byte {
	out := make([]byte, len(defaultTOML))
	copy(out, defaultTOML)
	return out
}

// Load reads and parses a TOML file
func Load(path string) (generator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generator.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return generator.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into a validated generator config
// Unknown keys, unknown names and partition errors wrap generator.ErrConfiguration
func Parse(data []byte) (generator.Config, error) {
	// 1. Decode TOML into intermediate config
	var root RootConfig
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return generator.Config{}, fmt.Errorf("%w: decode: %v", generator.ErrConfiguration, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return generator.Config{}, fmt.Errorf("%w: unknown keys: %s", generator.ErrConfiguration, strings.Join(keys, ", "))
	}

	// 2. Obstacle prototypes by name
	obstacles, err := buildObstacles(root.Obstacles)
	if err != nil {
		return generator.Config{}, err
	}

	// 3. Settings over parameter defaults
	cfg := generator.DefaultConfig()
	applyGenerator(&cfg, root.Generator)
	if root.Counts != nil {
		cfg.Declared = &generator.Counts{
			Straight:  root.Counts.Straight,
			Left:      root.Counts.Left,
			Right:     root.Counts.Right,
			Crossroad: root.Counts.Crossroad,
		}
	}

	// 4. Catalog pieces with entry pivots
	cfg.Pieces = make([]segment.Piece, 0, len(root.Pieces))
	for i := range root.Pieces {
		p, err := buildPiece(&root.Pieces[i], obstacles)
		if err != nil {
			return generator.Config{}, fmt.Errorf("piece %d: %w", i, err)
		}
		cfg.Pieces = append(cfg.Pieces, p)
	}
	if root.Portal != nil {
		if root.Portal.Type == "" {
			root.Portal.Type = segment.Portal.String()
		}
		p, err := buildPiece(root.Portal, obstacles)
		if err != nil {
			return generator.Config{}, fmt.Errorf("portal: %w", err)
		}
		cfg.Portal = &p
	}

	// 5. Partition and settings check
	if _, err := cfg.Validate(); err != nil {
		return generator.Config{}, err
	}
	return cfg, nil
}

func applyGenerator(cfg *generator.Config, g GeneratorConfig) {
	if g.PiecesAtOnce != 0 {
		cfg.PiecesAtOnce = g.PiecesAtOnce
	}
	if g.WhenToSpawnCross != 0 {
		cfg.WhenToSpawnCross = g.WhenToSpawnCross
	}
	if g.BorderSize != 0 {
		cfg.BorderSize = g.BorderSize
	}
	if g.DestructionTimer.Duration != 0 {
		cfg.DestructionTimer = g.DestructionTimer.Duration
	}
	if g.NormalRoadBorderSpace != nil {
		cfg.NormalRoadBorderSpace = *g.NormalRoadBorderSpace
	}
	if g.CrossRoadBorderSpace != nil {
		cfg.CrossRoadBorderSpace = *g.CrossRoadBorderSpace
	}
	cfg.Origin = g.Origin.Vec3F()
	cfg.DefaultRotation = g.DefaultRotation.Vec3F()
	cfg.StartRotationY = g.StartRotationY
	cfg.Seed = g.Seed
	cfg.PortalEvery = g.PortalEvery
}

func buildObstacles(defs []ObstacleConfig) (map[string]*obstacle.Prototype, error) {
	out := make(map[string]*obstacle.Prototype, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: obstacle %d has no name", generator.ErrConfiguration, i)
		}
		if _, dup := out[def.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate obstacle %q", generator.ErrConfiguration, def.Name)
		}
		behavior, err := obstacle.ParseBehavior(def.Behavior)
		if err != nil {
			return nil, fmt.Errorf("%w: obstacle %q: %v", generator.ErrConfiguration, def.Name, err)
		}
		out[def.Name] = &obstacle.Prototype{
			Prototype: world.Prototype{Name: def.Name, Size: def.Size.Vec3F()},
			Behavior:  behavior,
		}
	}
	return out, nil
}

func buildPiece(pc *PieceConfig, obstacles map[string]*obstacle.Prototype) (segment.Piece, error) {
	typ, err := segment.ParseType(pc.Type)
	if err != nil {
		return segment.Piece{}, fmt.Errorf("%w: %s: %v", generator.ErrConfiguration, pc.Name, err)
	}

	width, length := pc.Width, pc.Length
	if width == 0 {
		width = parameter.LaneWidth
	}
	if length == 0 {
		length = parameter.LaneLength
	}

	p := segment.Piece{
		Prototype: world.Prototype{
			Name: pc.Name,
			Size: pc.Size.Vec3F(),
		},
		Type:          typ,
		Width:         width,
		Length:        length,
		CurveSamples:  pc.CurveSamples,
		SpecialOffset: pc.SpecialOffset,
	}

	p.Obstacles, err = buildPieceObstacles(pc.Name, pc.Obstacles, obstacles)
	if err != nil {
		return segment.Piece{}, err
	}

	pivot, err := segment.EntryPivot(&p)
	if err != nil {
		return segment.Piece{}, fmt.Errorf("%w: %s: %v", generator.ErrConfiguration, pc.Name, err)
	}
	pivot.Y = pc.PivotY
	p.Prototype.Pivot = pivot
	return p, nil
}

func buildPieceObstacles(piece string, oc PieceObstacleConfig, obstacles map[string]*obstacle.Prototype) (obstacle.Config, error) {
	cfg := obstacle.Config{
		HeightOffset: oc.HeightOffset,
		Spacing:      parameter.ObstacleSpacing,
		Controlled:   oc.Controlled,
	}
	if oc.Spacing != nil {
		cfg.Spacing = *oc.Spacing
	}

	index := make(map[string]int, len(oc.Catalog))
	for _, name := range oc.Catalog {
		proto, ok := obstacles[name]
		if !ok {
			return cfg, fmt.Errorf("%w: %s: unknown obstacle %q", generator.ErrConfiguration, piece, name)
		}
		index[name] = len(cfg.Catalog)
		cfg.Catalog = append(cfg.Catalog, *proto)
	}

	if len(oc.Areas) > obstacle.AreaCount {
		return cfg, fmt.Errorf("%w: %s: %d obstacle areas, at most %d", generator.ErrConfiguration, piece, len(oc.Areas), obstacle.AreaCount)
	}
	for i, pin := range oc.Areas {
		cfg.Areas[i].Use = pin.Use
		if pin.Obstacle == "" {
			continue
		}
		j, ok := index[pin.Obstacle]
		if !ok {
			return cfg, fmt.Errorf("%w: %s: area %d pins %q outside the piece catalog", generator.ErrConfiguration, piece, i, pin.Obstacle)
		}
		cfg.Areas[i].Prototype = &cfg.Catalog[j]
	}
	return cfg, nil
}
