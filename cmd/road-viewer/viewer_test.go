package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roadgen/audio"
	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/generator"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/vmath"
)

func testViewer(t *testing.T, mutate func(*generator.Config)) *viewer {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default: %v", err)
	}
	cfg.Seed = 5
	if mutate != nil {
		mutate(&cfg)
	}
	v, err := newViewer(cfg, audio.NewPlayer(0))
	if err != nil {
		t.Fatalf("newViewer: %v", err)
	}
	return v
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHeadless_Run(t *testing.T) {
	v := testViewer(t, nil)
	var out bytes.Buffer
	if err := runHeadless(v, 6000, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	if !strings.Contains(out.String(), "ticks=6000") {
		t.Errorf("summary = %q", out.String())
	}
	if v.stats.retired == 0 || v.stats.spawned <= parameter.PiecesAtOnce {
		t.Errorf("stats = %+v, road did not advance", v.stats)
	}
	if v.stats.resolved == 0 {
		t.Errorf("stats = %+v, no crossroad resolved", v.stats)
	}
	if v.cues.Played(audio.CueSpawn) != v.stats.spawned {
		t.Errorf("spawn cues = %d, spawned = %d", v.cues.Played(audio.CueSpawn), v.stats.spawned)
	}
	if len(v.retiring) > 10 {
		t.Errorf("retiring map holds %d entries", len(v.retiring))
	}
}

func TestHeadless_PortalSwitchesRoute(t *testing.T) {
	v := testViewer(t, func(c *generator.Config) { c.PortalEvery = 4 })
	if len(v.routes) != 2 {
		t.Fatalf("routes = %d, want 2 with portals", len(v.routes))
	}
	var out bytes.Buffer
	if err := runHeadless(v, 3000, &out); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if v.stats.portals == 0 {
		t.Fatalf("stats = %+v, no portal entered", v.stats)
	}
	if !v.current().Active() {
		t.Error("current route must be the active one")
	}
}

func TestKeys_PauseAndClear(t *testing.T) {
	v := testViewer(t, nil)
	if err := v.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 200; i++ {
		if err := v.step(parameter.TickInterval); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	if !v.handleKey(key(' ')) || v.current().Active() {
		t.Fatal("space must pause generation")
	}
	v.handleKey(key('c'))
	if err := v.step(parameter.TickInterval); err != nil {
		t.Fatalf("step: %v", err)
	}
	if v.stats.clears != 1 || v.current().State() != generator.StateCleared {
		t.Fatalf("clears=%d state=%v", v.stats.clears, v.current().State())
	}
	if n := len(v.current().Segments()); n != 1 {
		t.Errorf("active after clear = %d, want 1", n)
	}

	v.handleKey(key(' '))
	for i := 0; i < 5; i++ {
		if err := v.step(parameter.TickInterval); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if n := len(v.current().Segments()); n < parameter.PiecesAtOnce {
		t.Errorf("active after resume = %d", n)
	}
	if v.runner.Current() == nil || v.runner.Current() != v.current().Segments()[0] {
		t.Error("runner must restart on the fresh start piece")
	}
}

func TestKeys_BranchBorderQuit(t *testing.T) {
	v := testViewer(t, nil)

	v.handleKey(key('l'))
	if v.prefer.String() != "right" {
		t.Errorf("prefer = %v after l", v.prefer)
	}
	v.handleKey(key('h'))
	if v.prefer.String() != "left" {
		t.Errorf("prefer = %v after h", v.prefer)
	}

	v.handleKey(key('b'))
	if !v.current().ShowBorder() {
		t.Error("b must show the border")
	}

	if v.handleKey(key('q')) {
		t.Error("q must quit")
	}
	if v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc must quit")
	}
}

func TestDraw_SimulationScreen(t *testing.T) {
	v := testViewer(t, nil)
	if err := v.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 30; i++ {
		if err := v.step(parameter.TickInterval); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	v.toggleBorder()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	v.draw(screen, 1.0)

	// Runner sits at the center of the map area above the status row
	if mainc, _, _, _ := screen.GetContent(40, 11); mainc != '@' {
		t.Errorf("center cell = %q, want runner", mainc)
	}

	var status strings.Builder
	for col := 0; col < 80; col++ {
		mainc, _, _, _ := screen.GetContent(col, 23)
		status.WriteRune(mainc)
	}
	if !strings.Contains(status.String(), "quit") {
		t.Errorf("status row = %q", status.String())
	}

	road := 0
	for row := 0; row < 23; row++ {
		for col := 0; col < 80; col++ {
			if mainc, _, _, _ := screen.GetContent(col, row); mainc == '*' || mainc == '.' {
				road++
			}
		}
	}
	if road == 0 {
		t.Error("no road cells drawn")
	}
}

func TestCamera_Project(t *testing.T) {
	cam := camera{scale: 1}
	tests := []struct {
		x, z     float64
		col, row int
	}{
		{0, 0, 40, 12},
		{10, 0, 50, 12},
		{0, 10, 40, 7},
		{-4, -4, 36, 14},
	}
	for _, tt := range tests {
		col, row := cam.project(vmathVec(tt.x, tt.z), 80, 24)
		if col != tt.col || row != tt.row {
			t.Errorf("project(%v,%v) = %d,%d want %d,%d", tt.x, tt.z, col, row, tt.col, tt.row)
		}
	}
}

func vmathVec(x, z float64) vmath.Vec3F {
	return vmath.Vec3F{X: x, Z: z}
}

func TestCheckScale(t *testing.T) {
	tests := []struct {
		scale float64
		ok    bool
	}{
		{parameter.ViewerScale, true},
		{0.25, true},
		{0, false},
		{-1, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if err := checkScale(tt.scale); (err == nil) != tt.ok {
			t.Errorf("checkScale(%v) = %v, want ok=%v", tt.scale, err, tt.ok)
		}
	}
}
