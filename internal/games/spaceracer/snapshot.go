package spaceracer

import "slices"

// Snapshot is a read-only copy of the world taken after a tick.
type Snapshot struct {
	Width, Height int

	Player     Player
	Bullets    []Bullet
	Enemies    []Enemy
	Explosions []Explosion
	PowerUps   []PowerUp

	Score                 int
	Lives                 int
	Wave                  int
	WaveState             WaveState
	BoostRemainingMs      int64
	OneHitKillRemainingMs int64
	GameOver              bool
	Paused                bool
	Ticks                 int

	Backdrop      Backdrop
	HasShipVisual bool
}

// Snapshot copies the current state for rendering. Mutating the result
// never affects the world. Effect durations are measured at the latest tick,
// so every snapshot taken between two ticks agrees.
func (w *World) Snapshot() Snapshot {
	now := w.now
	return Snapshot{
		Width:  w.opts.Width,
		Height: w.opts.Height,

		Player:     *w.player,
		Bullets:    slices.Clone(w.bullets),
		Enemies:    slices.Clone(w.enemies),
		Explosions: slices.Clone(w.explosions),
		PowerUps:   slices.Clone(w.powerUps),

		Score:                 w.score,
		Lives:                 w.lives,
		Wave:                  w.waves.Wave(),
		WaveState:             w.waves.State(),
		BoostRemainingMs:      w.player.SpeedBoostRemaining(now),
		OneHitKillRemainingMs: w.player.OneHitKillRemaining(now),
		GameOver:              w.gameOver,
		Paused:                w.paused,
		Ticks:                 w.tick,

		Backdrop:      w.waves.Backdrop(),
		HasShipVisual: w.player.HasVisual,
	}
}
