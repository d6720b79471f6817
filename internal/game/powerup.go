package game

import (
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// PowerUpType identifies one of the six timed abilities.
type PowerUpType int

const (
	PowerSpeedBoost PowerUpType = iota
	PowerSlowMotion
	PowerGhost
	PowerDoublePoints
	PowerMagnet
	PowerSizeDown
	powerUpCount // Sentinel for counting types
)

// powerUpSpec holds the effect parameters for one power-up type.
// A closed lookup table instead of per-type dispatch: the manager's
// queries just read the active row.
type powerUpSpec struct {
	name          string
	glyph         rune
	color         core.Color
	durationTicks int // At 60 fps
	speedMult     float64
	scoreMult     int
	ghost         bool
	magnet        bool
	weight        int // Relative spawn weight
}

// Durations are the classic tuning (5/5/4/7/6/8 seconds) at 60 fps.
var powerUpTable = [powerUpCount]powerUpSpec{
	PowerSpeedBoost:   {name: "Speed Boost", glyph: '»', color: core.ColorBrightYellow, durationTicks: 300, speedMult: 1.5, scoreMult: 1, weight: 20},
	PowerSlowMotion:   {name: "Slow Motion", glyph: '«', color: core.ColorBrightBlue, durationTicks: 300, speedMult: 0.5, scoreMult: 1, weight: 15},
	PowerGhost:        {name: "Ghost", glyph: '☉', color: core.ColorBrightWhite, durationTicks: 240, speedMult: 1.0, scoreMult: 1, ghost: true, weight: 10},
	PowerDoublePoints: {name: "Double Points", glyph: '$', color: core.ColorYellow, durationTicks: 420, speedMult: 1.0, scoreMult: 2, weight: 20},
	PowerMagnet:       {name: "Magnet", glyph: 'U', color: core.ColorBrightMagenta, durationTicks: 360, speedMult: 1.0, scoreMult: 1, magnet: true, weight: 15},
	PowerSizeDown:     {name: "Size Down", glyph: '▼', color: core.ColorBrightGreen, durationTicks: 480, speedMult: 1.0, scoreMult: 1, weight: 10},
}

// Name returns the display name of the power-up.
func (t PowerUpType) Name() string {
	if t < 0 || t >= powerUpCount {
		return "?"
	}
	return powerUpTable[t].name
}

// Glyph returns the board character for power-up food of this type.
func (t PowerUpType) Glyph() rune {
	if t < 0 || t >= powerUpCount {
		return '?'
	}
	return powerUpTable[t].glyph
}

// Color returns the display color for this type.
func (t PowerUpType) Color() core.Color {
	if t < 0 || t >= powerUpCount {
		return core.ColorDefault
	}
	return powerUpTable[t].color
}

// RollPowerUpType selects a random type using the table's spawn weights.
func RollPowerUpType(rng *rand.Rand) PowerUpType {
	total := 0
	for _, spec := range powerUpTable {
		total += spec.weight
	}
	roll := rng.Intn(total)
	cumulative := 0
	for t, spec := range powerUpTable {
		cumulative += spec.weight
		if roll < cumulative {
			return PowerUpType(t)
		}
	}
	return PowerSpeedBoost
}

// PowerUpManager tracks the single active power-up and its remaining
// duration. At most one power-up is active at a time; activating a new
// one fully replaces the old.
type PowerUpManager struct {
	active    PowerUpType
	hasActive bool
	remaining int
}

// NewPowerUpManager creates a manager with no active power-up.
func NewPowerUpManager() *PowerUpManager {
	return &PowerUpManager{}
}

// Activate starts the given power-up, replacing any active one.
func (m *PowerUpManager) Activate(t PowerUpType) {
	if t < 0 || t >= powerUpCount {
		return
	}
	m.active = t
	m.hasActive = true
	m.remaining = powerUpTable[t].durationTicks
}

// Tick decrements the remaining duration; at zero the active effect and
// all its modifiers are cleared. The counter never goes negative.
func (m *PowerUpManager) Tick() {
	if !m.hasActive {
		return
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining == 0 {
		m.Clear()
	}
}

// Clear removes the active power-up and its modifiers.
func (m *PowerUpManager) Clear() {
	m.hasActive = false
	m.remaining = 0
}

// Active returns the active type, if any.
func (m *PowerUpManager) Active() (PowerUpType, bool) {
	return m.active, m.hasActive
}

// Remaining returns the ticks left on the active power-up.
func (m *PowerUpManager) Remaining() int {
	if !m.hasActive {
		return 0
	}
	return m.remaining
}

// RemainingFraction returns remaining/total for the active power-up,
// in [0, 1]. Used by the HUD status bar.
func (m *PowerUpManager) RemainingFraction() float64 {
	if !m.hasActive {
		return 0
	}
	total := powerUpTable[m.active].durationTicks
	if total == 0 {
		return 0
	}
	return float64(m.remaining) / float64(total)
}

// SpeedMultiplier returns the active speed factor (1.0 when none).
func (m *PowerUpManager) SpeedMultiplier() float64 {
	if !m.hasActive {
		return 1.0
	}
	return powerUpTable[m.active].speedMult
}

// ScoreMultiplier returns the active scoring factor (1 when none).
func (m *PowerUpManager) ScoreMultiplier() int {
	if !m.hasActive {
		return 1
	}
	return powerUpTable[m.active].scoreMult
}

// Ghost reports whether Ghost mode is active: collisions with walls,
// body and obstacles are suspended and the board wraps.
func (m *PowerUpManager) Ghost() bool {
	return m.hasActive && powerUpTable[m.active].ghost
}

// MagnetActive reports whether the Magnet pull is active.
func (m *PowerUpManager) MagnetActive() bool {
	return m.hasActive && powerUpTable[m.active].magnet
}
