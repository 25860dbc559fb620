// Package spaceracer implements a vertical arcade shooter.
// The player's ship dodges and destroys descending enemies across
// escalating waves, collecting timed power-ups under a lives/score economy.
package spaceracer

import (
	"math/rand"

	"github.com/vovakirdan/space-racer/internal/core"
)

// defaultFrameDeltaMs is how far explosions age per tick.
const defaultFrameDeltaMs = 16

// Options configures a World.
type Options struct {
	Width        int        // Playfield width in pixels
	Height       int        // Playfield height in pixels
	Seed         int64      // Seed for the spawn/drop generator
	Clock        core.Clock // Millisecond clock; nil means a SystemClock
	FrameDeltaMs float64    // Explosion aging per tick; 0 means 16ms
	ShipVisual   bool       // Whether a ship image is available to the renderer
}

// Intents are the held controls sampled at the start of a tick.
type Intents struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// IntentsFromFrame extracts the held controls from an input frame.
func IntentsFromFrame(in core.InputFrame) Intents {
	return Intents{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	}
}

// axis folds two opposing intents into -1, 0 or 1.
func axis(neg, pos bool) int {
	v := 0
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

// World is the complete simulation state of one match. It is owned by a
// single frame driver; nothing else mutates it.
type World struct {
	opts  Options
	clock core.Clock
	rng   *rand.Rand

	player     *Player
	bullets    []Bullet
	enemies    []Enemy
	explosions []Explosion
	powerUps   []PowerUp
	waves      *WaveManager

	score    int
	lives    int
	gameOver bool
	paused   bool
	tick     int
	now      int64 // clock reading of the latest tick

	events []Event
}

// NewWorld creates a world in its initial state.
func NewWorld(opts Options) *World {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.FrameDeltaMs <= 0 {
		opts.FrameDeltaMs = defaultFrameDeltaMs
	}

	w := &World{
		opts:  opts,
		clock: opts.Clock,
		rng:   rand.New(rand.NewSource(opts.Seed)),
	}
	if w.clock == nil {
		w.clock = core.NewSystemClock()
	}
	w.Restart()
	return w
}

// Restart replaces all match state with fresh initial values: score 0,
// three lives, wave 1 and empty collections. The generator keeps running.
func (w *World) Restart() {
	now := w.clock.NowMs()

	w.player = NewPlayer(w.opts.Width/2-PlayerWidth/2, w.opts.Height-80, now)
	w.player.HasVisual = w.opts.ShipVisual
	w.bullets = nil
	w.enemies = nil
	w.explosions = nil
	w.powerUps = nil
	w.waves = NewWaveManager(w.opts.Width, w.opts.Height, now)

	w.score = 0
	w.lives = StartLives
	w.gameOver = false
	w.paused = false
	w.tick = 0
	w.now = now
	w.events = nil
}

// Tick advances the simulation by one fixed step and returns the events
// it produced. A paused or finished match does not advance.
func (w *World) Tick(in Intents) []Event {
	if w.gameOver || w.paused {
		return nil
	}

	w.tick++
	w.events = w.events[:0]
	now := w.clock.NowMs()
	w.now = now

	w.updatePlayer(in, now)
	w.updateBullets()
	w.updateEnemies()
	w.updatePowerUps()
	w.spawnEnemies(now)
	w.updateExplosions()
	w.resolveCollisions(now)
	w.checkWaveEnd(now)
	w.checkGameOver()

	out := make([]Event, len(w.events))
	copy(out, w.events)
	return out
}

func (w *World) updatePlayer(in Intents, now int64) {
	dx := axis(in.Left, in.Right)
	dy := axis(in.Up, in.Down)
	w.player.Move(dx, dy, w.opts.Width, w.opts.Height, now)

	if !in.Fire {
		return
	}
	if b, ok := w.player.TryFire(now); ok {
		w.bullets = append(w.bullets, b)
		w.emit(Event{Kind: EventBulletFired, X: b.Bounds.X, Y: b.Bounds.Y})
	}
}

func (w *World) updateBullets() {
	for i := range w.bullets {
		w.bullets[i].Update()
	}
	w.bullets = sweep(w.bullets, func(b *Bullet) bool {
		return b.Alive(w.opts.Width, w.opts.Height)
	})
}

// updateEnemies moves enemies; one that escapes through the bottom costs a
// life and disappears without an explosion.
func (w *World) updateEnemies() {
	for i := range w.enemies {
		e := &w.enemies[i]
		e.Update()
		if e.Escaped(w.opts.Height) {
			e.Health = 0
			w.loseLife()
			w.emit(Event{Kind: EventEnemyEscaped, Lives: w.lives, X: e.Bounds.X, Y: e.Bounds.Y})
		}
	}
	w.enemies = sweep(w.enemies, func(e *Enemy) bool { return !e.Dead() })
}

func (w *World) updatePowerUps() {
	for i := range w.powerUps {
		w.powerUps[i].Update()
	}
	w.powerUps = sweep(w.powerUps, func(p *PowerUp) bool {
		return p.Alive(w.opts.Height)
	})
}

func (w *World) spawnEnemies(now int64) {
	for _, e := range w.waves.Update(now, w.rng) {
		w.enemies = append(w.enemies, e)
		w.emit(Event{Kind: EventEnemySpawned, X: e.Bounds.X, Y: e.Bounds.Y})
	}
}

func (w *World) updateExplosions() {
	for i := range w.explosions {
		w.explosions[i].Update(w.opts.FrameDeltaMs)
	}
	w.explosions = sweep(w.explosions, func(e *Explosion) bool { return e.Alive() })
}

func (w *World) checkWaveEnd(now int64) {
	wave := w.waves.Wave()
	if w.waves.NextWave(now, len(w.enemies)) {
		w.emit(Event{Kind: EventWaveCleared, Wave: wave})
	}
}

func (w *World) checkGameOver() {
	if w.lives <= 0 && !w.gameOver {
		w.gameOver = true
		w.emit(Event{Kind: EventGameOver, Score: w.score, Lives: w.lives})
	}
}

func (w *World) loseLife() {
	w.lives = max(0, w.lives-1)
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	if e.Wave == 0 {
		e.Wave = w.waves.Wave()
	}
	w.events = append(w.events, e)
}

// SetPaused halts or resumes future ticks without touching state.
func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

// TogglePause flips the pause flag. Finished matches cannot be paused.
func (w *World) TogglePause() {
	if w.gameOver {
		return
	}
	w.paused = !w.paused
}

// Paused reports whether ticks are currently halted.
func (w *World) Paused() bool {
	return w.paused
}

// GameOver reports whether the match has ended.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Lives returns the remaining lives.
func (w *World) Lives() int {
	return w.lives
}

// Wave returns the current wave number.
func (w *World) Wave() int {
	return w.waves.Wave()
}

// Ticks returns the number of simulated ticks since the last restart.
func (w *World) Ticks() int {
	return w.tick
}

// Width returns the playfield width.
func (w *World) Width() int {
	return w.opts.Width
}

// Height returns the playfield height.
func (w *World) Height() int {
	return w.opts.Height
}
