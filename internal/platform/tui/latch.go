package tui

import "github.com/vovakirdan/space-racer/internal/core"

// InputLatch turns terminal key events into held controls.
//
// A terminal reports presses and auto-repeats but never releases, so a
// movement or fire press keeps its action held for a fixed number of
// ticks. Auto-repeat refreshes the hold while the key stays down.
// Pause, restart and back are one-shot and last exactly one frame.
type InputLatch struct {
	holdTicks int
	held      map[core.Action]int
	once      core.InputFrame
}

// NewInputLatch creates a latch holding each press for holdTicks ticks.
func NewInputLatch(holdTicks int) *InputLatch {
	return &InputLatch{
		holdTicks: max(1, holdTicks),
		held:      make(map[core.Action]int),
		once:      core.NewInputFrame(),
	}
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// isHeld reports whether a is a continuous control rather than a command.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// Press records a key event. Pressing a direction releases its opposite.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		l.once.Set(a)
		return
	}
	l.held[a] = l.holdTicks
	if o, ok := opposite[a]; ok {
		delete(l.held, o)
	}
}

// Frame returns the actions for the next tick and ages every hold by one.
func (l *InputLatch) Frame() core.InputFrame {
	frame := l.once.Clone()
	l.once.Clear()

	for a, left := range l.held {
		frame.Set(a)
		if left <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = left - 1
		}
	}
	return frame
}

// Reset drops every held and pending action.
func (l *InputLatch) Reset() {
	clear(l.held)
	l.once.Clear()
}
