package spaceracer

import (
	"math/rand"

	"github.com/vovakirdan/space-racer/internal/core"
)

var backgroundPalette = []core.Color{
	core.ColorDefault, // black
	core.ColorNavy,
	core.ColorSlate,
	core.ColorBlue,
	core.ColorMaroon,
	core.ColorPurple,
}

var planetPalette = []core.Color{
	core.ColorOrange,
	core.ColorBrightBlue,
	core.ColorBrightGreen,
	core.ColorYellow,
	core.ColorBrown,
	core.ColorMagenta,
}

const (
	planetRadius   = 100
	planetOffsetX  = 150
	planetOffsetY  = 200
	craterCount    = 5
	craterMinR     = 8
	craterMaxR     = 20
	starCount      = 12
	starSeedFactor = 7
)

// Crater is a dark disc drawn on the planet.
type Crater struct {
	X, Y, R int
}

// Star is a small square in the upper half of the sky.
type Star struct {
	X, Y, Size int
}

// Backdrop is the decorative scenery for one wave.
type Backdrop struct {
	Background core.Color
	Planet     core.Color
	PlanetX    int
	PlanetY    int
	PlanetR    int
	Craters    []Crater
	Stars      []Star
}

// Palette returns the background and planet colors for wave.
func Palette(wave int) (background, planet core.Color) {
	i := (max(wave, 1) - 1)
	return backgroundPalette[i%len(backgroundPalette)], planetPalette[i%len(planetPalette)]
}

// Backdrop builds the scenery for the current wave. Its generators are
// seeded from the wave number, so a wave always looks the same and the
// simulation's generator is never touched.
func (m *WaveManager) Backdrop() Backdrop {
	return BackdropFor(m.wave, m.width, m.height)
}

// BackdropFor builds the scenery for wave on a width x height playfield.
func BackdropFor(wave, width, height int) Backdrop {
	bg, planet := Palette(wave)
	b := Backdrop{
		Background: bg,
		Planet:     planet,
		PlanetX:    width - planetOffsetX,
		PlanetY:    height - planetOffsetY,
		PlanetR:    planetRadius,
		Craters:    make([]Crater, 0, craterCount),
		Stars:      make([]Star, 0, starCount),
	}

	craterRNG := rand.New(rand.NewSource(int64(wave)))
	spread := 2 * (planetRadius - 20)
	for range craterCount {
		b.Craters = append(b.Craters, Crater{
			X: b.PlanetX - (planetRadius - 20) + craterRNG.Intn(spread),
			Y: b.PlanetY - (planetRadius - 20) + craterRNG.Intn(spread),
			R: craterMinR + craterRNG.Intn(craterMaxR-craterMinR),
		})
	}

	starRNG := rand.New(rand.NewSource(int64(wave) * starSeedFactor))
	for range starCount {
		b.Stars = append(b.Stars, Star{
			X:    starRNG.Intn(max(1, width)),
			Y:    starRNG.Intn(max(1, height/2)),
			Size: 1 + starRNG.Intn(2),
		})
	}

	return b
}
