package spaceracer

// resolveCollisions runs the four collision passes in their fixed order:
// bullets against enemies, enemies against the player, the purge of dead
// enemies, and the player against power-ups.
func (w *World) resolveCollisions(now int64) {
	w.resolveBulletHits(now)
	w.resolvePlayerCrashes()
	w.enemies = sweep(w.enemies, func(e *Enemy) bool { return !e.Dead() })
	w.bullets = sweep(w.bullets, func(b *Bullet) bool { return !b.spent })
	w.resolvePickups(now)
}

// resolveBulletHits lets every bullet damage at most one enemy, the first
// overlapping live enemy in collection order.
func (w *World) resolveBulletHits(now int64) {
	oneHitKill := w.player.HasOneHitKill(now)

	for bi := range w.bullets {
		b := &w.bullets[bi]

		for ei := range w.enemies {
			e := &w.enemies[ei]
			if e.Dead() || !b.Bounds.Intersects(e.Bounds) {
				continue
			}

			cx, cy := e.Bounds.Center()
			w.explosions = append(w.explosions, NewExplosion(hitExplosion, float64(cx), float64(cy)))

			if oneHitKill {
				e.Health = 0
			} else {
				e.Health -= b.Damage
			}
			b.spent = true
			w.emit(Event{Kind: EventEnemyHit, X: cx, Y: cy})

			if e.Dead() {
				w.destroyEnemy(e)
			}
			break
		}
	}
}

// destroyEnemy awards the score and spawns the kill effects for an enemy
// that a bullet brought to zero health.
func (w *World) destroyEnemy(e *Enemy) {
	cx, cy := e.Bounds.Center()

	w.score += e.ScoreValue
	w.explosions = append(w.explosions, burstAround(float64(cx), float64(cy))...)
	w.emit(Event{Kind: EventEnemyDestroyed, Score: e.ScoreValue, X: cx, Y: cy})

	if w.rng.Intn(100) >= PowerUpChance {
		return
	}
	kind := PowerUpOneHitKill
	if w.rng.Intn(100) < SpeedBoostShare {
		kind = PowerUpSpeedBoost
	}
	p := NewPowerUp(cx-PowerUpSize/2, e.Bounds.Y, kind)
	w.powerUps = append(w.powerUps, p)
	w.emit(Event{Kind: EventPowerUpDropped, PowerUp: kind, X: p.Bounds.X, Y: p.Bounds.Y})
}

// resolvePlayerCrashes costs one life per live enemy touching the ship.
func (w *World) resolvePlayerCrashes() {
	for i := range w.enemies {
		e := &w.enemies[i]
		if e.Dead() || !e.Bounds.Intersects(w.player.Bounds) {
			continue
		}
		w.loseLife()
		e.Health = 0
		cx, cy := e.Bounds.Center()
		w.emit(Event{Kind: EventPlayerHit, Lives: w.lives, X: cx, Y: cy})
	}
}

// resolvePickups applies every power-up touching the ship.
func (w *World) resolvePickups(now int64) {
	for i := range w.powerUps {
		p := &w.powerUps[i]
		if !p.Bounds.Intersects(w.player.Bounds) {
			continue
		}
		switch p.Kind {
		case PowerUpSpeedBoost:
			w.player.ApplySpeedBoost(now, SpeedBoostDurationMs)
		case PowerUpOneHitKill:
			w.player.ApplyOneHitKill(now, OneHitKillDurationMs)
		}
		p.taken = true
		w.emit(Event{Kind: EventPowerUpCollected, PowerUp: p.Kind, X: p.Bounds.X, Y: p.Bounds.Y})
	}
	w.powerUps = sweep(w.powerUps, func(p *PowerUp) bool { return !p.taken })
}

// sweep compacts s in place, keeping the elements for which keep is true.
func sweep[T any](s []T, keep func(*T) bool) []T {
	kept := s[:0]
	for i := range s {
		if keep(&s[i]) {
			kept = append(kept, s[i])
		}
	}
	clear(s[len(kept):])
	return kept
}
