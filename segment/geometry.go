package segment

import (
	"fmt"

	"github.com/lixenwraith/roadgen/vmath"
)

// xz is an offset from the bounds center on the ground plane
type xz struct {
	x, z float64
}

// anchors holds the per (type, rotation) offsets of every segment point
type anchors struct {
	start, end xz
	helper     xz
	left       xz
	curve      bool // start -> helper -> end
	cross      bool // start -> helper -> left as well
}

// anchorsFor is the closed-form anchor table
// Turn and crossroad tables assume square lanes (width == length) for rotation consistency
func anchorsFor(t Type, rot int, f vmath.Frame, so float64) (anchors, error) {
	sx, sz := f.SimpleX, f.SimpleZ
	xMW, xPW := f.XMinusWidth(), f.XPlusWidth()
	zML, zPL := f.ZMinusLength(), f.ZPlusLength()

	switch t {
	case Straight, Portal:
		switch rot {
		case 0:
			return anchors{start: xz{-sx, 0}, end: xz{sx, 0}}, nil
		case 90:
			return anchors{start: xz{0, sz}, end: xz{0, -sz}}, nil
		case 180:
			return anchors{start: xz{sx, 0}, end: xz{-sx, 0}}, nil
		case 270:
			return anchors{start: xz{0, -sz}, end: xz{0, sz}}, nil
		}

	case Right:
		switch rot {
		case 0:
			return anchors{start: xz{-sx, zML - so}, end: xz{xMW - so, -sz}, helper: xz{xMW - so, zML - so}, curve: true}, nil
		case 90:
			return anchors{start: xz{xMW - so, sz}, end: xz{-sx, zPL + so}, helper: xz{xMW - so, zPL + so}, curve: true}, nil
		case 180:
			return anchors{start: xz{sx, zPL + so}, end: xz{xPW + so, sz}, helper: xz{xPW + so, zPL + so}, curve: true}, nil
		case 270:
			return anchors{start: xz{xPW + so, -sz}, end: xz{sx, zML - so}, helper: xz{xPW + so, zML - so}, curve: true}, nil
		}

	case Left:
		switch rot {
		case 0:
			return anchors{start: xz{-sx, zPL + so}, end: xz{xMW - so, sz}, helper: xz{xMW - so, zPL + so}, curve: true}, nil
		case 90:
			return anchors{start: xz{xPW + so, sz}, end: xz{sx, zPL + so}, helper: xz{xPW + so, zPL + so}, curve: true}, nil
		case 180:
			return anchors{start: xz{sx, zML - so}, end: xz{xPW + so, -sz}, helper: xz{xPW + so, zML - so}, curve: true}, nil
		case 270:
			return anchors{start: xz{xMW - so, -sz}, end: xz{-sx, zML - so}, helper: xz{xMW - so, zML - so}, curve: true}, nil
		}

	case Crossroad:
		switch rot {
		case 0:
			return anchors{start: xz{-sx, 0}, end: xz{xMW, -sz}, helper: xz{xMW, 0}, left: xz{xMW, sz}, curve: true, cross: true}, nil
		case 90:
			return anchors{start: xz{0, sz}, end: xz{-sx, zPL}, helper: xz{0, zPL}, left: xz{sx, zPL}, curve: true, cross: true}, nil
		case 180:
			return anchors{start: xz{sx, 0}, end: xz{xPW, sz}, helper: xz{xPW, 0}, left: xz{xPW, -sz}, curve: true, cross: true}, nil
		case 270:
			return anchors{start: xz{0, -sz}, end: xz{sx, zML}, helper: xz{0, zML}, left: xz{-sx, zML}, curve: true, cross: true}, nil
		}

	default:
		return anchors{}, fmt.Errorf("%w: unhandled segment type %v", ErrGeometry, t)
	}

	return anchors{}, fmt.Errorf("%w: %v segment at non-canonical rotation %d", ErrGeometry, t, rot)
}
