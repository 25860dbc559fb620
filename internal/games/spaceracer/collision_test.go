package spaceracer

import (
	"testing"

	"github.com/vovakirdan/space-racer/internal/core"
	"github.com/vovakirdan/space-racer/internal/core/clocktest"
)

// newTestWorld returns a world on a stopped clock, so no spawn interval
// elapses unless the test advances it.
func newTestWorld(t *testing.T) (*World, *clocktest.ManualClock) {
	t.Helper()
	clock := clocktest.NewManualClock(10000)
	w := NewWorld(Options{Seed: 1, Clock: clock})
	return w, clock
}

// bulletAt places a bullet whose top-left lands on (x, y) after one update.
func bulletAt(x, y int) Bullet {
	return Bullet{
		Bounds: core.NewRect(x, y-BulletSpeed, BulletWidth, BulletHeight),
		VY:     BulletSpeed,
		Damage: BulletDamage,
	}
}

// enemyAt places a stationary enemy.
func enemyAt(x, y, health int) Enemy {
	return Enemy{
		Bounds:     core.NewRect(x, y, EnemySize, EnemySize),
		Health:     health,
		ScoreValue: EnemyScore(1),
	}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestBulletDamagesEnemy(t *testing.T) {
	w, _ := newTestWorld(t)
	w.enemies = []Enemy{enemyAt(100, 100, 3)}
	w.bullets = []Bullet{bulletAt(110, 120)}

	events := w.Tick(Intents{})

	if len(w.enemies) != 1 || w.enemies[0].Health != 2 {
		t.Fatalf("enemy = %+v, want one enemy with health 2", w.enemies)
	}
	if len(w.bullets) != 0 {
		t.Errorf("bullet should be consumed by the hit")
	}
	if len(w.explosions) != 1 {
		t.Errorf("explosions = %d, want 1 hit explosion", len(w.explosions))
	}
	if w.score != 0 {
		t.Errorf("score = %d, want 0 for a non-lethal hit", w.score)
	}
	if countEvents(events, EventEnemyHit) != 1 || countEvents(events, EventEnemyDestroyed) != 0 {
		t.Errorf("events = %+v", events)
	}
}

// A player with one-hit-kill destroys a health-5 enemy with a damage-1 bullet.
func TestOneHitKillDestroysRegardlessOfHealth(t *testing.T) {
	w, clock := newTestWorld(t)
	w.player.ApplyOneHitKill(clock.NowMs(), OneHitKillDurationMs)
	w.enemies = []Enemy{enemyAt(100, 100, 5)}
	w.bullets = []Bullet{bulletAt(110, 120)}

	events := w.Tick(Intents{})

	if len(w.enemies) != 0 {
		t.Fatalf("enemy should be removed, got %+v", w.enemies)
	}
	if w.score != EnemyScore(1) {
		t.Errorf("score = %d, want %d", w.score, EnemyScore(1))
	}
	if len(w.explosions) != 1+burstCount+1 {
		t.Errorf("explosions = %d, want hit plus burst", len(w.explosions))
	}
	if countEvents(events, EventEnemyDestroyed) != 1 {
		t.Errorf("expected one destroyed event, got %+v", events)
	}
}

func TestBulletHitsAtMostOneEnemy(t *testing.T) {
	w, _ := newTestWorld(t)
	// Both enemies overlap the bullet; the first in collection order takes the hit.
	w.enemies = []Enemy{enemyAt(100, 100, 1), enemyAt(105, 105, 1)}
	w.bullets = []Bullet{bulletAt(120, 120)}

	w.Tick(Intents{})

	if len(w.enemies) != 1 {
		t.Fatalf("enemies left = %d, want 1", len(w.enemies))
	}
	if w.enemies[0].Bounds.X != 105 || w.enemies[0].Health != 1 {
		t.Errorf("surviving enemy = %+v, want the second, untouched", w.enemies[0])
	}
	if w.score != EnemyScore(1) {
		t.Errorf("score = %d, want a single kill", w.score)
	}
}

func TestDeadEnemyIgnoredBySecondBullet(t *testing.T) {
	w, _ := newTestWorld(t)
	w.enemies = []Enemy{enemyAt(100, 100, 1)}
	w.bullets = []Bullet{bulletAt(110, 120), bulletAt(115, 125)}

	events := w.Tick(Intents{})

	if len(w.enemies) != 0 {
		t.Fatalf("enemy should be destroyed")
	}
	if len(w.bullets) != 1 {
		t.Errorf("bullets = %d, want the second bullet to fly on", len(w.bullets))
	}
	if countEvents(events, EventEnemyHit) != 1 {
		t.Errorf("hits = %d, want 1", countEvents(events, EventEnemyHit))
	}
}

// An enemy leaving through the bottom costs exactly one life and leaves no
// explosion behind.
func TestEnemyEscapeCostsLifeWithoutExplosion(t *testing.T) {
	w, _ := newTestWorld(t)
	e := enemyAt(100, DefaultHeight+ExitMargin, 1)
	e.Speed = 1
	w.enemies = []Enemy{e}

	events := w.Tick(Intents{})

	if w.lives != StartLives-1 {
		t.Errorf("lives = %d, want %d", w.lives, StartLives-1)
	}
	if len(w.enemies) != 0 {
		t.Errorf("escaped enemy should be removed")
	}
	if len(w.explosions) != 0 {
		t.Errorf("escape spawned %d explosions", len(w.explosions))
	}
	if w.score != 0 {
		t.Errorf("escape awarded score %d", w.score)
	}
	if countEvents(events, EventEnemyEscaped) != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestPlayerCrashCostsLifePerEnemy(t *testing.T) {
	w, _ := newTestWorld(t)
	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.enemies = []Enemy{
		enemyAt(px, py, 2),
		enemyAt(px+10, py+10, 4),
		enemyAt(10, 10, 1),
	}

	events := w.Tick(Intents{})

	if w.lives != StartLives-2 {
		t.Errorf("lives = %d, want %d", w.lives, StartLives-2)
	}
	if len(w.enemies) != 1 || w.enemies[0].Bounds.X != 10 {
		t.Errorf("enemies = %+v, want only the distant one", w.enemies)
	}
	if w.score != 0 {
		t.Errorf("crash awarded score %d", w.score)
	}
	if countEvents(events, EventPlayerHit) != 2 {
		t.Errorf("player hits = %d, want 2", countEvents(events, EventPlayerHit))
	}
}

// A bullet kill resolves before the crash pass, so the dead enemy no longer
// hurts the player.
func TestBulletKillPreventsCrash(t *testing.T) {
	w, _ := newTestWorld(t)
	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.enemies = []Enemy{enemyAt(px, py-30, 1)}
	w.bullets = []Bullet{bulletAt(px+15, py-20)}

	w.Tick(Intents{})

	if w.lives != StartLives {
		t.Errorf("lives = %d, want %d", w.lives, StartLives)
	}
	if w.score != EnemyScore(1) {
		t.Errorf("score = %d, want %d", w.score, EnemyScore(1))
	}
}

// Picking up an effect that is already active resets it to the full
// duration instead of adding to it.
func TestPowerUpPickupResetsDuration(t *testing.T) {
	w, clock := newTestWorld(t)
	w.player.ApplySpeedBoost(clock.NowMs(), SpeedBoostDurationMs)
	clock.Advance(10000)

	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.powerUps = []PowerUp{NewPowerUp(px, py, PowerUpSpeedBoost)}

	events := w.Tick(Intents{})

	if len(w.powerUps) != 0 {
		t.Fatalf("power-up should be consumed")
	}
	if got := w.player.SpeedBoostRemaining(clock.NowMs()); got != SpeedBoostDurationMs {
		t.Errorf("boost remaining = %d, want %d", got, SpeedBoostDurationMs)
	}
	if countEvents(events, EventPowerUpCollected) != 1 {
		t.Errorf("events = %+v", events)
	}
}

func TestOneHitKillPickup(t *testing.T) {
	w, clock := newTestWorld(t)
	px, py := w.player.Bounds.X, w.player.Bounds.Y
	w.powerUps = []PowerUp{NewPowerUp(px, py, PowerUpOneHitKill), NewPowerUp(10, 10, PowerUpSpeedBoost)}

	w.Tick(Intents{})

	if got := w.player.OneHitKillRemaining(clock.NowMs()); got != OneHitKillDurationMs {
		t.Errorf("one-hit-kill remaining = %d, want %d", got, OneHitKillDurationMs)
	}
	if w.player.SpeedBoostRemaining(clock.NowMs()) != 0 {
		t.Error("distant speed boost should not apply")
	}
	if len(w.powerUps) != 1 || w.powerUps[0].Kind != PowerUpSpeedBoost {
		t.Errorf("powerUps = %+v, want the distant one", w.powerUps)
	}
}

func TestKillsDropPowerUps(t *testing.T) {
	w, _ := newTestWorld(t)

	drops := 0
	kills := 400
	for range kills {
		w.enemies = []Enemy{enemyAt(100, 100, 1)}
		w.bullets = []Bullet{bulletAt(110, 120)}
		w.powerUps = nil
		events := w.Tick(Intents{})
		drops += countEvents(events, EventPowerUpDropped)
		for _, p := range w.powerUps {
			if p.Bounds.X != 120-PowerUpSize/2 {
				t.Fatalf("power-up at x=%d, want centred on the enemy", p.Bounds.X)
			}
		}
	}

	// 25% drop chance; allow a wide band so the test is seed-independent.
	if drops < kills/10 || drops > kills/2 {
		t.Errorf("drops = %d of %d kills", drops, kills)
	}
	if w.score != kills*EnemyScore(1) {
		t.Errorf("score = %d, want %d", w.score, kills*EnemyScore(1))
	}
}

func TestSweep(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	got := sweep(s, func(v *int) bool { return *v%2 == 0 })
	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("sweep = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sweep = %v, want %v", got, want)
		}
	}
	if s[3] != 0 || s[5] != 0 {
		t.Errorf("tail not cleared: %v", s)
	}
}
