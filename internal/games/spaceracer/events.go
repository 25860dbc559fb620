package spaceracer

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventBulletFired      EventKind = "bullet_fired"
	EventEnemySpawned     EventKind = "enemy_spawned"
	EventEnemyHit         EventKind = "enemy_hit"
	EventEnemyDestroyed   EventKind = "enemy_destroyed"
	EventEnemyEscaped     EventKind = "enemy_escaped"
	EventPlayerHit        EventKind = "player_hit"
	EventPowerUpDropped   EventKind = "powerup_dropped"
	EventPowerUpCollected EventKind = "powerup_collected"
	EventWaveCleared      EventKind = "wave_cleared"
	EventGameOver         EventKind = "game_over"
)

// Event is one occurrence within a tick. Only the fields relevant to the
// kind are set.
type Event struct {
	Kind    EventKind
	Tick    int
	Wave    int
	Score   int // points awarded (destroyed) or final score (game over)
	Lives   int // lives left after the event
	PowerUp PowerUpKind
	X, Y    int
}

// Fields flattens the event into key/value pairs for logging.
func (e Event) Fields() map[string]any {
	f := map[string]any{
		"tick": e.Tick,
		"wave": e.Wave,
	}
	switch e.Kind {
	case EventEnemyDestroyed:
		f["score"] = e.Score
	case EventGameOver:
		f["score"] = e.Score
		f["lives"] = e.Lives
	case EventEnemyEscaped, EventPlayerHit:
		f["lives"] = e.Lives
	case EventPowerUpDropped, EventPowerUpCollected:
		f["powerup"] = e.PowerUp.String()
	}
	return f
}
