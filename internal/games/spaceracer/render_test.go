package spaceracer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-racer/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t)
	g.World().score = 120

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	top := screen.Row(0)
	for _, want := range []string{"Score: 120", "Lives: 3", "Wave: 1"} {
		if !strings.Contains(top, want) {
			t.Errorf("HUD %q missing %q", top, want)
		}
	}
	if strings.Contains(screen.Row(1), "BOOST") {
		t.Error("no effect should be shown without power-ups")
	}
}

func TestEffectsLineRoundsUp(t *testing.T) {
	tests := []struct {
		boost, ohk int64
		want       string
	}{
		{0, 0, ""},
		{45000, 0, "SPEED BOOST: 45s"},
		{1, 0, "SPEED BOOST: 1s"},
		{0, 29001, "ONE-HIT KILL: 30s"},
		{2500, 1000, "SPEED BOOST: 3s  ONE-HIT KILL: 1s"},
	}

	for _, tt := range tests {
		got := EffectsLine(Snapshot{BoostRemainingMs: tt.boost, OneHitKillRemainingMs: tt.ohk})
		if got != tt.want {
			t.Errorf("EffectsLine(%d, %d) = %q, want %q", tt.boost, tt.ohk, got, tt.want)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g, _ := newTestGame(t)
	w := g.World()
	w.lives = 1
	w.enemies = []Enemy{enemyAt(w.player.Bounds.X, w.player.Bounds.Y, 1)}
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "Press R to Restart or Esc to Exit"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(t)
	g.World().SetPaused(true)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderShipStyles(t *testing.T) {
	snap := Snapshot{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Player:   *NewPlayer(380, 520, 0),
		Backdrop: BackdropFor(1, DefaultWidth, DefaultHeight),
	}

	screen := core.NewScreen(80, 32)
	RenderSnapshot(screen, snap)
	if !strings.Contains(screen.String(), "#") {
		t.Error("procedural ship should be drawn without a visual")
	}

	snap.HasShipVisual = true
	RenderSnapshot(screen, snap)
	if !strings.Contains(screen.String(), "█") {
		t.Error("sprite ship should be drawn with a visual")
	}
}

func TestRenderEntities(t *testing.T) {
	snap := Snapshot{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Player:   *NewPlayer(380, 520, 0),
		Enemies:  []Enemy{enemyAt(100, 100, 4)},
		Bullets:  []Bullet{{Bounds: core.NewRect(300, 300, BulletWidth, BulletHeight)}},
		PowerUps: []PowerUp{NewPowerUp(200, 200, PowerUpOneHitKill)},
		Backdrop: BackdropFor(1, DefaultWidth, DefaultHeight),
	}

	screen := core.NewScreen(80, 32)
	RenderSnapshot(screen, snap)

	// 80 columns over 800 pixels and 30 rows over 600 pixels.
	if c := screen.GetCell(10, hudRows+5); c.Rune != EnemyChar || c.Color != core.ColorRed {
		t.Errorf("enemy cell = %+v", c)
	}
	if c := screen.GetCell(30, hudRows+15); c.Rune != BulletChar {
		t.Errorf("bullet cell = %+v", c)
	}
	if c := screen.GetCell(20, hudRows+10); c.Rune != OneHitKillChar {
		t.Errorf("power-up cell = %+v", c)
	}
}
