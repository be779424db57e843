package generator

import (
	"fmt"
	"time"

	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/vmath"
)

// PortalIndex is the catalog index recorded on portal segments, which live outside the catalog
const PortalIndex = -1

// Counts declares how many catalog pieces of each type exist
type Counts struct {
	Straight  int
	Left      int
	Right     int
	Crossroad int
}

// Config is the static generator setup
type Config struct {
	// Pieces is the catalog ordered straights, lefts, rights, crossroads
	// Index 0 must be an empty straight: it is the start piece and the crossroad branch piece
	Pieces []segment.Piece

	// Declared, if set, must match the catalog contents
	Declared *Counts

	PiecesAtOnce     int
	WhenToSpawnCross int
	BorderSize       int
	DestructionTimer time.Duration

	NormalRoadBorderSpace int
	CrossRoadBorderSpace  int

	// Origin is the generator position, the border square is centered on it
	Origin vmath.Vec3F
	// DefaultRotation is applied to every piece; its Y only to the start piece
	DefaultRotation vmath.Vec3F
	StartRotationY  float64

	// Seed for piece and obstacle selection, zero picks a time-based seed
	Seed uint64

	// Portal, when set with PortalEvery > 0 and a linked target, replaces a straight slot every PortalEvery generations
	Portal      *segment.Piece
	PortalEvery int
}

// DefaultConfig returns settings with parameter defaults and an empty catalog
func DefaultConfig() Config {
	return Config{
		PiecesAtOnce:          parameter.PiecesAtOnce,
		WhenToSpawnCross:      parameter.WhenToSpawnCross,
		BorderSize:            parameter.BorderSize,
		DestructionTimer:      parameter.DestructionTimer,
		NormalRoadBorderSpace: parameter.NormalRoadBorderSpace,
		CrossRoadBorderSpace:  parameter.CrossRoadBorderSpace,
	}
}

// Partition holds the catalog index boundaries by type
// Straights occupy [0, StraightMark], lefts (StraightMark, LeftMark], rights (LeftMark, RightMark],
// crossroads [CrossStart, total)
type Partition struct {
	Counts
	StraightMark int
	LeftMark     int
	RightMark    int
	CrossStart   int
	Total        int
}

// Validate checks settings and returns the catalog partition
func (c *Config) Validate() (Partition, error) {
	var p Partition

	switch {
	case c.PiecesAtOnce < 1:
		return p, fmt.Errorf("%w: pieces_at_once must be at least 1, got %d", ErrConfiguration, c.PiecesAtOnce)
	case c.WhenToSpawnCross < 1:
		return p, fmt.Errorf("%w: when_to_spawn_cross must be at least 1, got %d", ErrConfiguration, c.WhenToSpawnCross)
	case c.BorderSize <= 0:
		return p, fmt.Errorf("%w: border_size must be positive, got %d", ErrConfiguration, c.BorderSize)
	case c.DestructionTimer < 0:
		return p, fmt.Errorf("%w: destruction_timer must not be negative", ErrConfiguration)
	case c.NormalRoadBorderSpace < 0 || c.CrossRoadBorderSpace < 0:
		return p, fmt.Errorf("%w: border spaces must not be negative", ErrConfiguration)
	case len(c.Pieces) == 0:
		return p, fmt.Errorf("%w: piece catalog is empty", ErrConfiguration)
	}

	// Types must appear in partition order with no interleaving
	order := map[segment.Type]int{segment.Straight: 0, segment.Left: 1, segment.Right: 2, segment.Crossroad: 3}
	last := 0
	for i := range c.Pieces {
		piece := &c.Pieces[i]
		rank, ok := order[piece.Type]
		if !ok {
			return p, fmt.Errorf("%w: piece %d (%s) has type %v, not allowed in the catalog", ErrConfiguration, i, piece.Prototype.Name, piece.Type)
		}
		if rank < last {
			return p, fmt.Errorf("%w: piece %d (%s) of type %v is out of order, expected straights, lefts, rights, crossroads", ErrConfiguration, i, piece.Prototype.Name, piece.Type)
		}
		last = rank
		if err := validatePiece(i, piece); err != nil {
			return p, err
		}

		switch piece.Type {
		case segment.Straight:
			p.Straight++
		case segment.Left:
			p.Left++
		case segment.Right:
			p.Right++
		case segment.Crossroad:
			p.Crossroad++
		}
	}

	if c.Pieces[0].Type != segment.Straight {
		return p, fmt.Errorf("%w: piece 0 must be the straight start piece", ErrConfiguration)
	}
	if p.Left == 0 || p.Right == 0 {
		return p, fmt.Errorf("%w: catalog needs at least one left and one right piece for border turns", ErrConfiguration)
	}
	if c.Declared != nil && *c.Declared != p.Counts {
		return p, fmt.Errorf("%w: declared counts %+v do not match catalog %+v", ErrConfiguration, *c.Declared, p.Counts)
	}

	if c.Portal != nil {
		if c.Portal.Type != segment.Portal {
			return p, fmt.Errorf("%w: portal piece has type %v", ErrConfiguration, c.Portal.Type)
		}
		if err := validatePiece(PortalIndex, c.Portal); err != nil {
			return p, err
		}
	}
	if c.PortalEvery < 0 {
		return p, fmt.Errorf("%w: portal_every must not be negative", ErrConfiguration)
	}

	p.StraightMark = p.Straight - 1
	p.LeftMark = p.StraightMark + p.Left
	p.RightMark = p.LeftMark + p.Right
	p.Total = len(c.Pieces)
	p.CrossStart = p.Total - p.Crossroad
	return p, nil
}

func validatePiece(i int, piece *segment.Piece) error {
	size := piece.Prototype.Size
	if size.X <= 0 || size.Z <= 0 {
		return fmt.Errorf("%w: piece %d (%s) needs a positive footprint, got %v", ErrConfiguration, i, piece.Prototype.Name, size)
	}
	if piece.Width < 1 || piece.Length < 1 {
		return fmt.Errorf("%w: piece %d (%s) needs width and length of at least 1", ErrConfiguration, i, piece.Prototype.Name)
	}
	// Turn anchors only agree across rotations when lanes are square
	if (piece.Type.IsTurn() || piece.Type == segment.Crossroad) && piece.Width != piece.Length {
		return fmt.Errorf("%w: piece %d (%s) is a %v with width %d != length %d", ErrConfiguration, i, piece.Prototype.Name, piece.Type, piece.Width, piece.Length)
	}
	return nil
}
