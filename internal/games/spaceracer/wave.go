package spaceracer

import (
	"math/rand"

	"github.com/vovakirdan/space-racer/internal/core"
)

// Wave tuning.
const (
	minSpawnIntervalMs  = 220
	baseSpawnIntervalMs = 900
	spawnIntervalStepMs = 80

	spawnMarginLeft  = 20
	spawnMarginRight = 60
	spawnMinAbove    = 40
	spawnMaxAbove    = 120
)

// WaveState is the phase of the current wave.
type WaveState int

const (
	WaveSpawning WaveState = iota // still producing enemies
	WaveCleared                   // spawn target reached, waiting for the field to empty
)

// String returns the name of the wave state.
func (s WaveState) String() string {
	if s == WaveCleared {
		return "cleared"
	}
	return "spawning"
}

// SpawnTarget returns how many enemies wave produces in total.
func SpawnTarget(wave int) int {
	return 4 + wave*3
}

// SpawnIntervalMs returns the delay between bursts for wave.
func SpawnIntervalMs(wave int) int64 {
	return int64(max(minSpawnIntervalMs, baseSpawnIntervalMs-(wave-1)*spawnIntervalStepMs))
}

// EnemyScore returns the score value of enemies spawned in wave.
func EnemyScore(wave int) int {
	return 10 + wave*2
}

// EnemyHealthRange returns the inclusive health bounds for wave.
func EnemyHealthRange(wave int) (lo, hi int) {
	lo = 1 + wave/3
	return lo, lo + 1
}

// EnemySpeedRange returns the inclusive speed bounds for wave.
func EnemySpeedRange(wave int) (lo, hi int) {
	lo = 1 + wave/4
	return lo, lo + 1
}

// WaveManager schedules enemy bursts for the current wave.
type WaveManager struct {
	width  int
	height int

	wave            int
	spawnTarget     int
	spawnedCount    int
	spawnIntervalMs int64
	lastSpawnMs     int64
	spawnComplete   bool
}

// NewWaveManager starts at wave 1 in the spawning state.
func NewWaveManager(width, height int, now int64) *WaveManager {
	m := &WaveManager{
		width:  width,
		height: height,
		wave:   1,
	}
	m.setupWave(now)
	return m
}

func (m *WaveManager) setupWave(now int64) {
	m.spawnTarget = SpawnTarget(m.wave)
	m.spawnedCount = 0
	m.spawnIntervalMs = SpawnIntervalMs(m.wave)
	m.lastSpawnMs = now
	m.spawnComplete = false
}

// Wave returns the current wave number (starting at 1).
func (m *WaveManager) Wave() int {
	return m.wave
}

// SpawnTarget returns the total number of enemies for the current wave.
func (m *WaveManager) SpawnTarget() int {
	return m.spawnTarget
}

// Spawned returns how many enemies the current wave has produced so far.
func (m *WaveManager) Spawned() int {
	return m.spawnedCount
}

// SpawnInterval returns the current delay between bursts.
func (m *WaveManager) SpawnInterval() int64 {
	return m.spawnIntervalMs
}

// IsWaveCleared reports whether every enemy of the wave has been spawned.
func (m *WaveManager) IsWaveCleared() bool {
	return m.spawnComplete
}

// State returns the current wave phase.
func (m *WaveManager) State() WaveState {
	if m.spawnComplete {
		return WaveCleared
	}
	return WaveSpawning
}

// Update spawns a burst of one or two enemies once the spawn interval has
// elapsed. It never produces more than the wave's spawn target.
func (m *WaveManager) Update(now int64, rng *rand.Rand) []Enemy {
	var spawned []Enemy

	if !m.spawnComplete && m.spawnedCount < m.spawnTarget && now-m.lastSpawnMs >= m.spawnIntervalMs {
		m.lastSpawnMs = now

		burst := 1 + rng.Intn(2)
		for i := 0; i < burst && m.spawnedCount < m.spawnTarget; i++ {
			spawned = append(spawned, m.newEnemy(rng))
			m.spawnedCount++
		}
	}

	if m.spawnedCount >= m.spawnTarget {
		m.spawnComplete = true
	}

	return spawned
}

func (m *WaveManager) newEnemy(rng *rand.Rand) Enemy {
	span := max(1, m.width-spawnMarginRight-spawnMarginLeft)
	x := spawnMarginLeft + rng.Intn(span)
	y := -(spawnMinAbove + rng.Intn(spawnMaxAbove-spawnMinAbove))

	healthLo, _ := EnemyHealthRange(m.wave)
	speedLo, _ := EnemySpeedRange(m.wave)
	health := healthLo + rng.Intn(2)
	speed := speedLo + rng.Intn(2)

	return Enemy{
		Bounds:     core.NewRect(x, y, EnemySize, EnemySize),
		Health:     health,
		Speed:      speed,
		ScoreValue: EnemyScore(m.wave),
	}
}

// NextWave advances to the next wave. It is a no-op returning false unless
// spawning is complete and no enemies remain on the field.
func (m *WaveManager) NextWave(now int64, enemiesRemaining int) bool {
	if !m.spawnComplete || enemiesRemaining > 0 {
		return false
	}
	m.wave++
	m.setupWave(now)
	return true
}
