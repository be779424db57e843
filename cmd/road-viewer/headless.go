package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/roadgen/clock"
	"github.com/lixenwraith/roadgen/parameter"
	"github.com/lixenwraith/roadgen/runner"
)

// runHeadless steps the viewer for ticks fixed frames, alternating crossroad branches
func runHeadless(v *viewer, ticks int, out io.Writer) error {
	if err := v.start(); err != nil {
		return err
	}

	frames := clock.NewFrameClock(clock.NewStepTimeProvider(time.Unix(0, 0), parameter.TickInterval), parameter.MaxFrameDelta)
	next := runner.BranchLeft
	for i := 0; i < ticks; i++ {
		if left, _ := v.Branches(); left != nil && v.prefer == runner.BranchNone {
			v.prefer = next
			if next == runner.BranchLeft {
				next = runner.BranchRight
			} else {
				next = runner.BranchLeft
			}
		}
		if err := v.step(frames.Tick()); err != nil {
			fmt.Fprintln(out, v.summary())
			return err
		}
	}

	log.Printf("viewer: headless run done: %s", v.summary())
	fmt.Fprintln(out, v.summary())
	return nil
}
