package segment

import (
	"fmt"
	"strings"
)

// Type is the authored shape of a road piece
type Type int

const (
	Straight Type = iota + 1
	Right
	Left
	Crossroad
	// Portal is a straight piece that links to another generator
	Portal
)

func (t Type) String() string {
	switch t {
	case Straight:
		return "straight"
	case Right:
		return "right"
	case Left:
		return "left"
	case Crossroad:
		return "crossroad"
	case Portal:
		return "portal"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// IsTurn reports whether the piece changes heading
func (t Type) IsTurn() bool {
	return t == Right || t == Left
}

// ParseType accepts the String form, case-insensitive
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight":
		return Straight, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "crossroad", "cross":
		return Crossroad, nil
	case "portal":
		return Portal, nil
	}
	return 0, fmt.Errorf("unknown segment type %q", s)
}
