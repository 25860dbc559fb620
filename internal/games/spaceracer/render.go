package spaceracer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/space-racer/internal/core"
)

// Visual characters for rendering
const (
	StarChar       = '.'
	BigStarChar    = '*'
	PlanetChar     = '▓'
	CraterChar     = '░'
	BulletChar     = '|'
	EnemyChar      = '▼'
	SpeedBoostChar = 'S'
	OneHitKillChar = 'K'
	BorderHoriz    = '─'
)

// Ship drawn when a ship image is available.
var shipSprite = []string{
	" ▲ ",
	"◢█◣",
	"▀▀▀",
}

// Ship drawn procedurally when no image is available.
var shipFallback = []string{
	" ^ ",
	"/#\\",
	"^^^",
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// projection maps world pixels onto the screen rows below the HUD.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, worldW, worldH int) projection {
	return projection{
		sx: float64(dst.Width()) / float64(worldW),
		sy: float64(dst.Height()-hudRows) / float64(worldH),
	}
}

func (p projection) point(x, y float64) (int, int) {
	return int(math.Floor(x * p.sx)), hudRows + int(math.Floor(y*p.sy))
}

// rect projects a world rectangle, keeping at least one cell per axis.
func (p projection) rect(r core.Rect) core.Rect {
	x0, y0 := p.point(float64(r.X), float64(r.Y))
	x1, y1 := p.point(float64(r.Right()), float64(r.Bottom()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state into the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	RenderSnapshot(dst, g.world.Snapshot())
}

// RenderSnapshot draws snap into dst. The world is scaled to fill the
// screen below a two-row HUD.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	proj := newProjection(dst, snap.Width, snap.Height)

	dst.Clear()
	dst.FillBackground(snap.Backdrop.Background)
	renderBackdrop(dst, proj, snap.Backdrop)
	renderPowerUps(dst, proj, snap.PowerUps)
	renderEnemies(dst, proj, snap.Enemies)
	renderBullets(dst, proj, snap.Bullets)
	renderShip(dst, proj, snap.Player, snap.HasShipVisual)
	renderExplosions(dst, proj, snap.Explosions)
	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

func renderBackdrop(dst *core.Screen, proj projection, b Backdrop) {
	for _, s := range b.Stars {
		x, y := proj.point(float64(s.X), float64(s.Y))
		ch := StarChar
		if s.Size > 1 {
			ch = BigStarChar
		}
		dst.SetColored(x, y, ch, core.ColorWhite)
	}

	fillCircle(dst, proj, float64(b.PlanetX), float64(b.PlanetY), float64(b.PlanetR), PlanetChar, b.Planet)
	for _, c := range b.Craters {
		fillCircle(dst, proj, float64(c.X), float64(c.Y), float64(c.R), CraterChar, core.ColorGray)
	}
}

// fillCircle fills every cell whose centre lies inside the world circle.
func fillCircle(dst *core.Screen, proj projection, cx, cy, r float64, ch rune, c core.Color) {
	if proj.sx <= 0 || proj.sy <= 0 {
		return
	}
	x0, y0 := proj.point(cx-r, cy-r)
	x1, y1 := proj.point(cx+r, cy+r)
	for y := y0; y <= y1; y++ {
		wy := (float64(y-hudRows) + 0.5) / proj.sy
		for x := x0; x <= x1; x++ {
			wx := (float64(x) + 0.5) / proj.sx
			if math.Hypot(wx-cx, wy-cy) <= r {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

func renderPowerUps(dst *core.Screen, proj projection, powerUps []PowerUp) {
	for _, p := range powerUps {
		ch, c := SpeedBoostChar, core.ColorBrightCyan
		if p.Kind == PowerUpOneHitKill {
			ch, c = OneHitKillChar, core.ColorBrightMagenta
		}
		dst.DrawRect(proj.rect(p.Bounds), ch, c)
	}
}

// enemyColor shades enemies by remaining health.
func enemyColor(health int) core.Color {
	switch {
	case health <= 1:
		return core.ColorGreen
	case health == 2:
		return core.ColorYellow
	case health == 3:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

func renderEnemies(dst *core.Screen, proj projection, enemies []Enemy) {
	for _, e := range enemies {
		dst.DrawRect(proj.rect(e.Bounds), EnemyChar, enemyColor(e.Health))
	}
}

func renderBullets(dst *core.Screen, proj projection, bullets []Bullet) {
	for _, b := range bullets {
		dst.DrawRect(proj.rect(b.Bounds), BulletChar, core.ColorBrightYellow)
	}
}

// renderShip draws the sprite when a ship image exists, otherwise the
// procedural outline.
func renderShip(dst *core.Screen, proj projection, p Player, hasVisual bool) {
	art, c := shipFallback, core.ColorCyan
	if hasVisual {
		art, c = shipSprite, core.ColorBrightWhite
	}

	r := proj.rect(p.Bounds)
	for dy := range r.H {
		row := []rune(art[dy*len(art)/r.H])
		for dx := range r.W {
			ch := row[dx*len(row)/r.W]
			if ch != ' ' {
				dst.SetColored(r.X+dx, r.Y+dy, ch, c)
			}
		}
	}
}

// explosionStyle picks a glyph that fades with alpha.
func explosionStyle(alpha int) (rune, core.Color) {
	switch {
	case alpha > 170:
		return '*', core.ColorBrightYellow
	case alpha > 85:
		return '+', core.ColorOrange
	default:
		return '.', core.ColorRed
	}
}

func renderExplosions(dst *core.Screen, proj projection, explosions []Explosion) {
	for _, e := range explosions {
		ch, c := explosionStyle(e.Alpha())
		x, y := proj.point(e.Pos.X, e.Pos.Y)
		dst.SetColored(x, y, ch, c)
		if r := e.Radius(); r > 0 {
			fillRing(dst, proj, e.Pos.X, e.Pos.Y, r, ch, c)
		}
	}
}

// fillRing marks the four compass points of a circle.
func fillRing(dst *core.Screen, proj projection, cx, cy, r float64, ch rune, c core.Color) {
	for _, d := range [][2]float64{{r, 0}, {-r, 0}, {0, r}, {0, -r}} {
		x, y := proj.point(cx+d[0], cy+d[1])
		dst.SetColored(x, y, ch, c)
	}
}

// secondsLeft rounds remaining milliseconds up to whole seconds.
func secondsLeft(ms int64) int64 {
	return (ms + 999) / 1000
}

// EffectsLine formats the active timed effects, or "" when none are active.
func EffectsLine(snap Snapshot) string {
	var parts []string
	if snap.BoostRemainingMs > 0 {
		parts = append(parts, fmt.Sprintf("SPEED BOOST: %ds", secondsLeft(snap.BoostRemainingMs)))
	}
	if snap.OneHitKillRemainingMs > 0 {
		parts = append(parts, fmt.Sprintf("ONE-HIT KILL: %ds", secondsLeft(snap.OneHitKillRemainingMs)))
	}
	return strings.Join(parts, "  ")
}

// renderHUD draws score, lives and wave on row 0 and active effects on row 1.
func renderHUD(dst *core.Screen, snap Snapshot) {
	for x := range dst.Width() {
		dst.SetColored(x, 0, ' ', core.ColorDefault)
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", snap.Lives), core.ColorBrightRed)
	waveText := fmt.Sprintf("Wave: %d", snap.Wave)
	dst.DrawTextColored(dst.Width()-len(waveText)-1, 0, waveText, core.ColorBrightWhite)

	if effects := EffectsLine(snap); effects != "" {
		dst.DrawTextColored(1, 1, " "+effects+" ", core.ColorGold)
	}
}

// renderOverlay draws the pause and game-over boxes.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	var lines []string
	var c core.Color
	switch {
	case snap.GameOver:
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"",
			"Press R to Restart or Esc to Exit",
		}
		c = core.ColorBrightRed
	case snap.Paused:
		lines = []string{"PAUSED", "", "Press P to Resume"}
		c = core.ColorBrightYellow
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := min(dst.Width(), width+4)
	boxH := min(dst.Height(), len(lines)+2)
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
