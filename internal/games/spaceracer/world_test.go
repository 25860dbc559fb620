package spaceracer

import (
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/vovakirdan/space-racer/internal/core"
	"github.com/vovakirdan/space-racer/internal/core/clocktest"
	"github.com/vovakirdan/space-racer/internal/core/mocks"
)

func TestNewWorldInitialState(t *testing.T) {
	w, _ := newTestWorld(t)

	if w.Score() != 0 || w.Lives() != StartLives || w.Wave() != 1 {
		t.Errorf("score=%d lives=%d wave=%d", w.Score(), w.Lives(), w.Wave())
	}
	if w.GameOver() || w.Paused() {
		t.Error("new world should be running")
	}
	if w.Width() != DefaultWidth || w.Height() != DefaultHeight {
		t.Errorf("playfield = %dx%d", w.Width(), w.Height())
	}
	wantX := DefaultWidth/2 - PlayerWidth/2
	if w.player.Bounds.X != wantX || w.player.Bounds.Y != DefaultHeight-80 {
		t.Errorf("player at (%d,%d)", w.player.Bounds.X, w.player.Bounds.Y)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	w, clock := newTestWorld(t)
	fire := Intents{Fire: true}

	events := w.Tick(fire)
	if len(w.bullets) != 1 || countEvents(events, EventBulletFired) != 1 {
		t.Fatalf("first shot: bullets=%d events=%+v", len(w.bullets), events)
	}

	clock.Advance(50)
	w.Tick(fire)
	if len(w.bullets) != 1 {
		t.Errorf("shot inside cooldown: bullets=%d", len(w.bullets))
	}

	clock.Advance(50)
	w.Tick(fire)
	if len(w.bullets) != 2 {
		t.Errorf("shot after cooldown: bullets=%d", len(w.bullets))
	}
}

func TestTickMovesPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	x, y := w.player.Bounds.X, w.player.Bounds.Y

	w.Tick(Intents{Left: true, Up: true})
	if w.player.Bounds.X != x-PlayerBaseSpeed || w.player.Bounds.Y != y-PlayerBaseSpeed {
		t.Errorf("player at (%d,%d), want (%d,%d)", w.player.Bounds.X, w.player.Bounds.Y, x-PlayerBaseSpeed, y-PlayerBaseSpeed)
	}

	// Opposing keys cancel
	w.Tick(Intents{Left: true, Right: true, Up: true, Down: true})
	if w.player.Bounds.X != x-PlayerBaseSpeed || w.player.Bounds.Y != y-PlayerBaseSpeed {
		t.Errorf("opposing keys moved the player")
	}
}

// Lives reaching zero mid-tick ends the game exactly once.
func TestGameOverTransitionsOnce(t *testing.T) {
	w, _ := newTestWorld(t)
	w.lives = 1
	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.enemies = []Enemy{enemyAt(px, py, 1), enemyAt(px+5, py+5, 1)}

	events := w.Tick(Intents{})

	if !w.GameOver() {
		t.Fatal("game should be over")
	}
	if w.Lives() != 0 {
		t.Errorf("lives = %d, want clamp at 0", w.Lives())
	}
	if countEvents(events, EventGameOver) != 1 {
		t.Errorf("game over events = %d, want 1", countEvents(events, EventGameOver))
	}

	for range 10 {
		if got := w.Tick(Intents{Fire: true}); len(got) != 0 {
			t.Fatalf("finished world produced events: %+v", got)
		}
	}
	if w.Ticks() != 1 {
		t.Errorf("ticks = %d, want no simulation after game over", w.Ticks())
	}

	w.TogglePause()
	if w.Paused() {
		t.Error("finished match should not pause")
	}
}

// Restart resets everything regardless of prior game-over state.
func TestRestartRoundTrip(t *testing.T) {
	w, clock := newTestWorld(t)
	w.score = 500
	w.lives = 0
	w.gameOver = true
	w.paused = true
	w.bullets = []Bullet{bulletAt(10, 10)}
	w.enemies = []Enemy{enemyAt(10, 10, 1)}
	w.explosions = []Explosion{NewExplosion(hitExplosion, 1, 1)}
	w.powerUps = []PowerUp{NewPowerUp(1, 1, PowerUpOneHitKill)}
	w.player.ApplyOneHitKill(clock.NowMs(), OneHitKillDurationMs)
	w.waves.wave = 6

	w.Restart()

	snap := w.Snapshot()
	if snap.Score != 0 || snap.Lives != StartLives || snap.Wave != 1 {
		t.Errorf("score=%d lives=%d wave=%d", snap.Score, snap.Lives, snap.Wave)
	}
	if snap.GameOver || snap.Paused {
		t.Error("restart should clear game over and pause")
	}
	if len(snap.Bullets)+len(snap.Enemies)+len(snap.Explosions)+len(snap.PowerUps) != 0 {
		t.Errorf("collections not cleared: %+v", snap)
	}
	if snap.OneHitKillRemainingMs != 0 || snap.BoostRemainingMs != 0 {
		t.Error("restart should clear timed effects")
	}

	w.Tick(Intents{})
	if w.Ticks() != 1 {
		t.Errorf("ticks = %d, restarted world should simulate again", w.Ticks())
	}
}

func TestPauseHaltsSimulation(t *testing.T) {
	w, clock := newTestWorld(t)
	e := enemyAt(100, 100, 1)
	e.Speed = 2
	w.enemies = []Enemy{e}

	w.TogglePause()
	clock.Advance(5000)
	for range 5 {
		w.Tick(Intents{Fire: true, Left: true})
	}
	if w.Ticks() != 0 || w.enemies[0].Bounds.Y != 100 || len(w.bullets) != 0 {
		t.Errorf("paused world changed: ticks=%d enemy y=%d", w.Ticks(), w.enemies[0].Bounds.Y)
	}

	w.SetPaused(false)
	w.Tick(Intents{})
	if w.enemies[0].Bounds.Y != 102 {
		t.Errorf("enemy y = %d after resume, want 102", w.enemies[0].Bounds.Y)
	}
}

func TestWaveAdvancesWhenFieldEmpty(t *testing.T) {
	w, clock := newTestWorld(t)
	w.waves.spawnedCount = w.waves.spawnTarget
	w.waves.spawnComplete = true
	w.enemies = []Enemy{enemyAt(100, 100, 1)}

	w.Tick(Intents{})
	if w.Wave() != 1 {
		t.Fatalf("wave advanced with enemies on the field")
	}

	w.enemies = nil
	clock.Advance(16)
	events := w.Tick(Intents{})
	if w.Wave() != 2 {
		t.Fatalf("wave = %d, want 2", w.Wave())
	}
	if countEvents(events, EventWaveCleared) != 1 {
		t.Errorf("events = %+v", events)
	}
	for _, e := range events {
		if e.Kind == EventWaveCleared && e.Wave != 1 {
			t.Errorf("cleared event reports wave %d, want 1", e.Wave)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w, _ := newTestWorld(t)
	w.enemies = []Enemy{enemyAt(100, 100, 3)}

	snap := w.Snapshot()
	snap.Enemies[0].Health = 0
	snap.Player.Bounds.X = 0

	if w.enemies[0].Health != 3 {
		t.Error("mutating the snapshot changed an enemy")
	}
	if w.player.Bounds.X == 0 {
		t.Error("mutating the snapshot moved the player")
	}
}

func TestSnapshotEffectsUseTickTime(t *testing.T) {
	w, clock := newTestWorld(t)
	w.player.ApplyOneHitKill(clock.NowMs(), OneHitKillDurationMs)
	w.Tick(Intents{})

	before := w.Snapshot().OneHitKillRemainingMs
	clock.Advance(5000)
	if got := w.Snapshot().OneHitKillRemainingMs; got != before {
		t.Errorf("remaining changed between ticks: %d -> %d", before, got)
	}

	w.Tick(Intents{})
	if got := w.Snapshot().OneHitKillRemainingMs; got != before-5000 {
		t.Errorf("remaining after tick = %d, want %d", got, before-5000)
	}
}

func runScripted(seed int64, ticks int) Snapshot {
	clock := clocktest.NewManualClock(0)
	w := NewWorld(Options{Seed: seed, Clock: clock})
	for i := range ticks {
		in := Intents{Fire: i%3 == 0}
		switch (i / 40) % 4 {
		case 0:
			in.Left = true
		case 1:
			in.Up = true
		case 2:
			in.Right = true
		case 3:
			in.Down = true
		}
		w.Tick(in)
		clock.Advance(16)
	}
	return w.Snapshot()
}

func TestWorldDeterminism(t *testing.T) {
	snap1 := runScripted(12345, 1500)
	snap2 := runScripted(12345, 1500)

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Determinism failed: score %d/%d wave %d/%d lives %d/%d",
			snap1.Score, snap2.Score, snap1.Wave, snap2.Wave, snap1.Lives, snap2.Lives)
	}
	if snap1.Ticks == 0 {
		t.Error("scripted run did not simulate")
	}
}

func TestLivesNeverIncreaseProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := clocktest.NewManualClock(0)
		w := NewWorld(Options{Seed: rapid.Int64().Draw(t, "seed"), Clock: clock})
		steps := rapid.IntRange(1, 600).Draw(t, "steps")

		prevLives, prevScore := w.Lives(), w.Score()
		gameOvers := 0
		for i := range steps {
			in := Intents{
				Up:    rapid.Bool().Draw(t, "up"),
				Down:  rapid.Bool().Draw(t, "down"),
				Left:  rapid.Bool().Draw(t, "left"),
				Right: rapid.Bool().Draw(t, "right"),
				Fire:  rapid.Bool().Draw(t, "fire"),
			}
			clock.Advance(rapid.Int64Range(0, 400).Draw(t, "dt"))

			for _, e := range w.Tick(in) {
				if e.Kind == EventGameOver {
					gameOvers++
				}
			}

			if w.Lives() > prevLives || w.Lives() < 0 {
				t.Fatalf("tick %d: lives went %d -> %d", i, prevLives, w.Lives())
			}
			if w.Score() < prevScore {
				t.Fatalf("tick %d: score went %d -> %d", i, prevScore, w.Score())
			}
			if w.GameOver() != (w.Lives() == 0) {
				t.Fatalf("tick %d: game over %v with %d lives", i, w.GameOver(), w.Lives())
			}
			prevLives, prevScore = w.Lives(), w.Score()
		}
		if gameOvers > 1 {
			t.Fatalf("game over emitted %d times", gameOvers)
		}
	})
}

func TestTimedEffectsFollowScriptedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	gomock.InOrder(
		clock.EXPECT().NowMs().Return(int64(1000)).Times(2), // NewWorld, pickup tick
		clock.EXPECT().NowMs().Return(int64(31000)),         // boosted move
		clock.EXPECT().NowMs().Return(int64(46000)),         // boost expired
	)

	w := NewWorld(Options{Seed: 3, Clock: clock})
	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.powerUps = []PowerUp{NewPowerUp(px, py, PowerUpSpeedBoost)}

	w.Tick(Intents{})
	x := w.player.Bounds.X

	w.Tick(Intents{Left: true})
	if got := x - w.player.Bounds.X; got != PlayerBoostSpeed {
		t.Errorf("boosted step = %d, want %d", got, PlayerBoostSpeed)
	}
	// Snapshots between ticks use the tick's time and never read the clock
	first, second := w.Snapshot(), w.Snapshot()
	if first.BoostRemainingMs != 15000 || second.BoostRemainingMs != first.BoostRemainingMs {
		t.Errorf("boost remaining = %d then %d, want 15000 twice", first.BoostRemainingMs, second.BoostRemainingMs)
	}

	x = w.player.Bounds.X
	w.Tick(Intents{Left: true})
	if got := x - w.player.Bounds.X; got != PlayerBaseSpeed {
		t.Errorf("step after expiry = %d, want %d", got, PlayerBaseSpeed)
	}

	if snap := w.Snapshot(); snap.BoostRemainingMs != 0 {
		t.Errorf("boost remaining = %d, want 0", snap.BoostRemainingMs)
	}
}

func TestIntentsFromFrame(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionFire)

	got := IntentsFromFrame(in)
	want := Intents{Up: true, Fire: true}
	if got != want {
		t.Errorf("IntentsFromFrame = %+v, want %+v", got, want)
	}
}
