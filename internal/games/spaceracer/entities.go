package spaceracer

import (
	"math"

	"github.com/vovakirdan/space-racer/internal/core"
)

// Playfield and entity constants, in playfield pixels and milliseconds.
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	PlayerWidth      = 40
	PlayerHeight     = 60
	PlayerBaseSpeed  = 6
	PlayerBoostSpeed = 12
	FireCooldownMs   = 100

	BulletWidth  = 10
	BulletHeight = 16
	BulletSpeed  = -12 // per tick, upward
	BulletDamage = 1
	BulletSlack  = 100 // bullets may drift this far past the right edge

	EnemySize       = 40
	ExitMargin      = 50 // enemies and power-ups are gone once their top passes height+ExitMargin
	PowerUpSize     = 32
	PowerUpSpeed    = 2
	PowerUpChance   = 25 // percent chance of a drop per kill
	SpeedBoostShare = 80 // percent of drops that are speed boosts

	SpeedBoostDurationMs = 45000
	OneHitKillDurationMs = 30000

	StartLives = 3
)

// Player is the ship controlled by the user.
type Player struct {
	Bounds core.Rect

	baseSpeed      int
	currentSpeed   int
	lastFire       int64
	fireCooldownMs int64
	speedBoostEnd  int64
	oneHitKillEnd  int64

	// HasVisual reports whether a ship image is available to the renderer.
	HasVisual bool
}

// NewPlayer creates a player at (x, y) that may fire immediately at time now.
func NewPlayer(x, y int, now int64) *Player {
	return &Player{
		Bounds:         core.NewRect(x, y, PlayerWidth, PlayerHeight),
		baseSpeed:      PlayerBaseSpeed,
		currentSpeed:   PlayerBaseSpeed,
		lastFire:       now - FireCooldownMs,
		fireCooldownMs: FireCooldownMs,
		speedBoostEnd:  now,
		oneHitKillEnd:  now,
	}
}

// Speed returns the speed used by the most recent movement.
func (p *Player) Speed() int {
	return p.currentSpeed
}

// Move shifts the ship by (dx, dy) steps of its current speed and clamps it
// inside a maxW x maxH playfield. dx and dy are -1, 0 or 1.
func (p *Player) Move(dx, dy, maxW, maxH int, now int64) {
	if now < p.speedBoostEnd {
		p.currentSpeed = PlayerBoostSpeed
	} else {
		p.currentSpeed = p.baseSpeed
	}

	nx := p.Bounds.X + dx*p.currentSpeed
	ny := p.Bounds.Y + dy*p.currentSpeed
	p.Bounds.X = core.Clamp(nx, 0, maxW-p.Bounds.W)
	p.Bounds.Y = core.Clamp(ny, 0, maxH-p.Bounds.H)
}

// TryFire returns a new bullet unless the fire cooldown is still running.
func (p *Player) TryFire(now int64) (Bullet, bool) {
	if now-p.lastFire < p.fireCooldownMs {
		return Bullet{}, false
	}
	p.lastFire = now

	bx := p.Bounds.X + p.Bounds.W/2 - BulletWidth/2
	by := p.Bounds.Y - 10
	return Bullet{
		Bounds: core.NewRect(bx, by, BulletWidth, BulletHeight),
		VY:     BulletSpeed,
		Damage: BulletDamage,
	}, true
}

// ApplySpeedBoost (re)starts the speed boost for durationMs.
// Reapplying resets the remaining time, it never adds to it.
func (p *Player) ApplySpeedBoost(now, durationMs int64) {
	p.speedBoostEnd = now + durationMs
	p.currentSpeed = PlayerBoostSpeed
}

// ApplyOneHitKill (re)starts the one-hit-kill effect for durationMs.
func (p *Player) ApplyOneHitKill(now, durationMs int64) {
	p.oneHitKillEnd = now + durationMs
}

// SpeedBoostRemaining returns the milliseconds left on the speed boost.
func (p *Player) SpeedBoostRemaining(now int64) int64 {
	return max(0, p.speedBoostEnd-now)
}

// OneHitKillRemaining returns the milliseconds left on one-hit-kill.
func (p *Player) OneHitKillRemaining(now int64) int64 {
	return max(0, p.oneHitKillEnd-now)
}

// HasOneHitKill reports whether bullets currently destroy enemies outright.
func (p *Player) HasOneHitKill(now int64) bool {
	return p.OneHitKillRemaining(now) > 0
}

// Bullet is a projectile fired by the player.
type Bullet struct {
	Bounds core.Rect
	VY     int
	Damage int

	spent bool
}

// Update moves the bullet one tick.
func (b *Bullet) Update() {
	b.Bounds.Y += b.VY
}

// Alive reports whether the bullet is still inside the play area.
func (b *Bullet) Alive(width, height int) bool {
	return b.Bounds.Bottom() >= 0 &&
		b.Bounds.Y <= height &&
		b.Bounds.X >= 0 &&
		b.Bounds.Right() <= width+BulletSlack
}

// Enemy is a descending alien.
type Enemy struct {
	Bounds     core.Rect
	Health     int
	Speed      int
	ScoreValue int
}

// Update moves the enemy one tick down.
func (e *Enemy) Update() {
	e.Bounds.Y += e.Speed
}

// Escaped reports whether the enemy has left through the bottom edge.
func (e *Enemy) Escaped(height int) bool {
	return e.Bounds.Y > height+ExitMargin
}

// Dead reports whether the enemy is pending removal.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// Explosion is a purely cosmetic expanding flash.
type Explosion struct {
	Pos        core.Vec2
	AgeMs      float64
	LifetimeMs float64
	MaxRadius  float64
}

// Explosion presets.
var (
	hitExplosion   = Explosion{LifetimeMs: 400, MaxRadius: 34}
	burstExplosion = Explosion{LifetimeMs: 300, MaxRadius: 20}
	coreExplosion  = Explosion{LifetimeMs: 350, MaxRadius: 25}
)

const (
	burstCount  = 4
	burstOffset = 15.0
)

// NewExplosion places a copy of preset at (x, y).
func NewExplosion(preset Explosion, x, y float64) Explosion {
	preset.Pos = core.Vec2{X: x, Y: y}
	preset.AgeMs = 0
	return preset
}

// Update ages the explosion by deltaMs.
func (e *Explosion) Update(deltaMs float64) {
	e.AgeMs += deltaMs
}

// Alive reports whether the explosion is still visible.
func (e *Explosion) Alive() bool {
	return e.AgeMs < e.LifetimeMs
}

// Progress returns age/lifetime clamped to [0, 1].
func (e *Explosion) Progress() float64 {
	if e.LifetimeMs <= 0 {
		return 1
	}
	return core.ClampF(e.AgeMs/e.LifetimeMs, 0, 1)
}

// Radius grows linearly from 0 to MaxRadius.
func (e *Explosion) Radius() float64 {
	return e.MaxRadius * e.Progress()
}

// Alpha fades linearly from 255 to 0.
func (e *Explosion) Alpha() int {
	return max(0, int(255*(1-e.Progress())))
}

// burstAround returns the kill effect: four small explosions at 90 degree
// steps around (cx, cy) plus a larger one at the centre.
func burstAround(cx, cy float64) []Explosion {
	out := make([]Explosion, 0, burstCount+1)
	for i := range burstCount {
		angle := float64(i) * 2 * math.Pi / burstCount
		x := cx + burstOffset*math.Cos(angle)
		y := cy + burstOffset*math.Sin(angle)
		out = append(out, NewExplosion(burstExplosion, x, y))
	}
	return append(out, NewExplosion(coreExplosion, cx, cy))
}

// PowerUpKind identifies the effect granted by a power-up.
type PowerUpKind int

const (
	PowerUpSpeedBoost PowerUpKind = iota
	PowerUpOneHitKill
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeedBoost:
		return "SpeedBoost"
	case PowerUpOneHitKill:
		return "OneHitKill"
	default:
		return "Unknown"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Bounds core.Rect
	Speed  int
	Kind   PowerUpKind

	taken bool
}

// NewPowerUp creates a pickup with its top-left corner at (x, y).
func NewPowerUp(x, y int, kind PowerUpKind) PowerUp {
	return PowerUp{
		Bounds: core.NewRect(x, y, PowerUpSize, PowerUpSize),
		Speed:  PowerUpSpeed,
		Kind:   kind,
	}
}

// Update moves the pickup one tick down.
func (p *PowerUp) Update() {
	p.Bounds.Y += p.Speed
}

// Alive reports whether the pickup is still above the exit line.
func (p *PowerUp) Alive(height int) bool {
	return p.Bounds.Y < height+ExitMargin
}
