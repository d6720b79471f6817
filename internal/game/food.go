package game

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// FoodKind classifies a food item.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodPowerUp
)

// Food is a consumable item on the grid.
type Food struct {
	Pos   core.Point
	Kind  FoodKind
	Value int         // Points before the score multiplier
	Grant PowerUpType // Only meaningful when Kind == FoodPowerUp
}

// Glyph returns the board character for the food.
func (f Food) Glyph() rune {
	switch f.Kind {
	case FoodBonus:
		return '◆'
	case FoodPowerUp:
		return f.Grant.Glyph()
	default:
		return '●'
	}
}

// Color returns the display color for the food.
func (f Food) Color() core.Color {
	switch f.Kind {
	case FoodBonus:
		return core.ColorBrightYellow
	case FoodPowerUp:
		return f.Grant.Color()
	default:
		return core.ColorBrightRed
	}
}

// ErrNoSpace is returned when no empty cell remains for a spawn.
// Practically unreachable on any playable board.
var ErrNoSpace = errors.New("game: no empty cell available")

// spawnMaxTries bounds rejection sampling before the spawner falls back
// to scanning all empty cells.
const spawnMaxTries = 64

// Spawner places food and obstacles on empty cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner using the session RNG.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// PickEmpty selects a uniformly random spawn-free cell. Rejection
// sampling with bounded retries, then a full scan so progress is
// guaranteed whenever any empty cell exists.
func (sp *Spawner) PickEmpty(g *Grid) (core.Point, error) {
	for i := 0; i < spawnMaxTries; i++ {
		p := core.Point{X: sp.rng.Intn(g.Width), Y: sp.rng.Intn(g.Height)}
		if g.SpawnFree(p) {
			return p, nil
		}
	}
	cells := g.EmptyCells()
	if len(cells) == 0 {
		return core.Point{}, ErrNoSpace
	}
	return cells[sp.rng.Intn(len(cells))], nil
}

// PlaceFood spawns a food item of the given kind on a random empty cell
// and records its occupancy in the grid.
func (sp *Spawner) PlaceFood(g *Grid, kind FoodKind, value int, grant PowerUpType) (Food, error) {
	p, err := sp.PickEmpty(g)
	if err != nil {
		return Food{}, err
	}
	f := Food{Pos: p, Kind: kind, Value: value, Grant: grant}
	g.SyncFood(p)
	return f, nil
}

// PlaceObstacles scatters count obstacle cells at session start, keeping
// a clearance radius around the snake's starting position so the first
// moves are always survivable. Matches the classic layout: positions are
// drawn from the inner board, skipping the center area.
func (sp *Spawner) PlaceObstacles(g *Grid, count int, start core.Point, clearRadius int) {
	if g.Width < 6 || g.Height < 6 {
		return
	}
	placed := 0
	for tries := 0; placed < count && tries < count*spawnMaxTries; tries++ {
		p := core.Point{
			X: 2 + sp.rng.Intn(g.Width-4),
			Y: 2 + sp.rng.Intn(g.Height-4),
		}
		if p.ChebyshevDist(start) < clearRadius {
			continue
		}
		if !g.SpawnFree(p) {
			continue
		}
		g.SetObstacle(p)
		placed++
	}
}
