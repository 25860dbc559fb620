package tui

import (
	"testing"

	"github.com/vovakirdan/space-racer/internal/core"
)

func TestInputLatchHoldsForTicks(t *testing.T) {
	l := NewInputLatch(3)
	l.Press(core.ActionLeft)

	for i := range 3 {
		if !l.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i)
		}
	}
	if l.Frame().Has(core.ActionLeft) {
		t.Error("hold should expire after three ticks")
	}
}

func TestInputLatchRepeatRefreshesHold(t *testing.T) {
	l := NewInputLatch(2)
	l.Press(core.ActionFire)
	l.Frame()
	l.Press(core.ActionFire) // auto-repeat
	l.Frame()
	if !l.Frame().Has(core.ActionFire) {
		t.Error("repeat should restart the hold")
	}
}

func TestInputLatchOppositeReleases(t *testing.T) {
	l := NewInputLatch(8)
	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	l.Press(core.ActionRight)

	f := l.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %v, want right and up held", f.Actions)
	}
}

func TestInputLatchOneShotCommands(t *testing.T) {
	l := NewInputLatch(8)
	l.Press(core.ActionPause)
	l.Press(core.ActionNone)

	if !l.Frame().Has(core.ActionPause) {
		t.Fatal("pause should reach the next frame")
	}
	f := l.Frame()
	if f.Has(core.ActionPause) || f.Has(core.ActionNone) {
		t.Errorf("one-shot leaked into the following frame: %v", f.Actions)
	}
}

func TestInputLatchReset(t *testing.T) {
	l := NewInputLatch(8)
	l.Press(core.ActionDown)
	l.Press(core.ActionRestart)
	l.Reset()

	if f := l.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after reset = %v", f.Actions)
	}
}
