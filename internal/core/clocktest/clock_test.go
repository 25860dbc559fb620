package clocktest

import (
	"testing"

	"github.com/vovakirdan/space-racer/internal/core"
)

var _ core.Clock = (*ManualClock)(nil)

func TestManualClock(t *testing.T) {
	c := NewManualClock(1000)

	c.Advance(16)
	if c.NowMs() != 1016 {
		t.Errorf("NowMs() = %d, expected 1016", c.NowMs())
	}

	c.Advance(-500)
	c.Set(10)
	if c.NowMs() != 1016 {
		t.Errorf("clock must never go backwards, got %d", c.NowMs())
	}

	c.Set(2000)
	if c.NowMs() != 2000 {
		t.Errorf("Set() = %d, expected 2000", c.NowMs())
	}
}
