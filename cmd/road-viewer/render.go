package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roadgen/obstacle"
	"github.com/lixenwraith/roadgen/runner"
	"github.com/lixenwraith/roadgen/segment"
	"github.com/lixenwraith/roadgen/vmath"
)

var (
	styleGround   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	styleStraight = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 150, 150))
	styleTurn     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCross    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePortal   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleRetiring = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 40, 40))
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRunner   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// camera maps world XZ onto terminal cells, +Z up the screen
// Rows cover twice the distance of columns to offset cell aspect
type camera struct {
	center vmath.Vec3F
	scale  float64
}

func (c camera) project(p vmath.Vec3F, w, h int) (int, int) {
	col := int(math.Round((p.X-c.center.X)/c.scale)) + w/2
	row := h/2 - int(math.Round((p.Z-c.center.Z)/(2*c.scale)))
	return col, row
}

func segmentStyle(s *segment.Segment) tcell.Style {
	switch s.Type() {
	case segment.Right, segment.Left:
		return styleTurn
	case segment.Crossroad:
		return styleCross
	case segment.Portal:
		return stylePortal
	default:
		return styleStraight
	}
}

func obstacleGlyph(b obstacle.Behavior) rune {
	switch b {
	case obstacle.Jump:
		return '^'
	case obstacle.Slide:
		return '_'
	default:
		return 'o'
	}
}

// draw renders the current route top-down, centered on the runner
func (v *viewer) draw(screen tcell.Screen, scale float64) {
	screen.Clear()
	w, h := screen.Size()
	if w <= 0 || h <= 1 {
		screen.Show()
		return
	}
	mapH := h - 1

	cam := camera{center: v.runner.Position(), scale: scale}
	g := v.current()
	segs := g.Segments()

	for _, b := range v.retiring {
		v.fillBounds(screen, cam, w, mapH, b, '.', styleRetiring)
	}

	for _, s := range segs {
		v.fillBounds(screen, cam, w, mapH, s.Bounds, '.', styleGround)
		style := segmentStyle(s)
		for _, p := range s.Path(false) {
			setCell(screen, cam, w, mapH, p, '*', style)
		}
		if s.Type() == segment.Crossroad {
			for _, p := range s.Path(true) {
				setCell(screen, cam, w, mapH, p, '*', style)
			}
		}
		for _, o := range s.Obstacles {
			setCell(screen, cam, w, mapH, o.Position, obstacleGlyph(o.Prototype.Behavior), styleObstacle)
		}
	}

	if g.ShowBorder() {
		v.drawBorder(screen, cam, w, mapH, g.Border().Corners())
	}

	setCell(screen, cam, w, mapH, v.runner.Position(), '@', styleRunner)

	v.drawStatus(screen, w, h)
	screen.Show()
}

func (v *viewer) fillBounds(screen tcell.Screen, cam camera, w, h int, b vmath.Bounds, ch rune, style tcell.Style) {
	lo, hi := b.Min(), b.Max()
	c0, r0 := cam.project(vmath.Vec3F{X: lo.X, Z: hi.Z}, w, h)
	c1, r1 := cam.project(vmath.Vec3F{X: hi.X, Z: lo.Z}, w, h)
	for row := max(r0, 0); row <= min(r1, h-1); row++ {
		for col := max(c0, 0); col <= min(c1, w-1); col++ {
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (v *viewer) drawBorder(screen tcell.Screen, cam camera, w, h int, corners [4]vmath.Vec3F) {
	c0, r1 := cam.project(corners[0], w, h)
	c1, r0 := cam.project(corners[2], w, h)
	for col := c0; col <= c1; col++ {
		putCell(screen, w, h, col, r0, '-', styleBorder)
		putCell(screen, w, h, col, r1, '-', styleBorder)
	}
	for row := r0; row <= r1; row++ {
		putCell(screen, w, h, c0, row, '|', styleBorder)
		putCell(screen, w, h, c1, row, '|', styleBorder)
	}
	for _, c := range [][2]int{{c0, r0}, {c1, r0}, {c0, r1}, {c1, r1}} {
		putCell(screen, w, h, c[0], c[1], '+', styleBorder)
	}
}

func (v *viewer) drawStatus(screen tcell.Screen, w, h int) {
	g := v.current()
	prefer := ""
	if v.prefer != runner.BranchNone {
		prefer = " next=" + v.prefer.String()
	}
	line := " " + g.State().String() + prefer + " | " + v.status + " | h/l branch  space pause  c clear  b border  q quit"
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}

func setCell(screen tcell.Screen, cam camera, w, h int, p vmath.Vec3F, ch rune, style tcell.Style) {
	col, row := cam.project(p, w, h)
	putCell(screen, w, h, col, row, ch, style)
}

func putCell(screen tcell.Screen, w, h, col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	screen.SetContent(col, row, ch, nil, style)
}
