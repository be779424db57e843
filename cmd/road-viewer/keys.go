package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roadgen/runner"
)

// handleKey applies one key press, returning false to quit
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			v.preferBranch(runner.BranchLeft)
		case 'l':
			v.preferBranch(runner.BranchRight)
		case ' ':
			v.toggleActive()
		case 'c':
			v.requestClear()
		case 'b':
			v.toggleBorder()
		}
	}
	return true
}
