// Command road-viewer renders a generated endless road top-down in the terminal,
// or runs it headless and prints a summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roadgen/audio"
	"github.com/lixenwraith/roadgen/clock"
	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/generator"
	"github.com/lixenwraith/roadgen/parameter"
)

var (
	configFlag   = flag.String("config", "", "Road catalog TOML file, embedded default when empty")
	seedFlag     = flag.Uint64("seed", 0, "Generator seed, 0 picks a time-based seed")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/road-viewer.log")
	audioFlag    = flag.Bool("audio", false, "Play event cues")
	headlessFlag = flag.Int("headless", 0, "Run N ticks without a terminal and print a summary")
	portalFlag   = flag.Int("portal", 0, "Place a portal every N generations, linking a second route")
	scaleFlag    = flag.Float64("scale", parameter.ViewerScale, "World units per terminal column")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := checkScale(*scaleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "road-viewer: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "road-viewer: %v\n", err)
		return 2
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *portalFlag > 0 {
		cfg.PortalEvery = *portalFlag
	}

	cues := audio.NewPlayer(parameter.AudioVolume)
	if *audioFlag {
		if err := cues.Init(); err != nil {
			// Non-fatal, the viewer runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer cues.Close()

	v, err := newViewer(cfg, cues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "road-viewer: %v\n", err)
		return 2
	}

	if *headlessFlag > 0 {
		if err := runHeadless(v, *headlessFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "road-viewer: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runTerminal(v, *scaleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "road-viewer: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (generator.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// checkScale rejects scales the camera cannot divide by
func checkScale(scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return fmt.Errorf("-scale must be a positive finite number, got %v", scale)
	}
	return nil
}

func runTerminal(v *viewer, scale float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Restore the terminal even if the loop panics
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROAD-VIEWER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := v.start(); err != nil {
		return err
	}

	frames := clock.NewFrameClock(clock.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	reported := false
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := v.step(frames.Tick()); err != nil && !reported {
				log.Printf("viewer: %v", err)
				reported = true
			}
			v.draw(screen, scale)
		}
	}
}
