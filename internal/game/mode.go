package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Mode identifies one of the five game modes.
type Mode int

const (
	ModeClassic Mode = iota
	ModeTimeTrial
	ModeObstacle
	ModeMaze
	ModeZen
	modeCount
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeTimeTrial, ModeObstacle, ModeMaze, ModeZen}
}

// ID returns the stable identifier used for CLI arguments and score storage.
func (m Mode) ID() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeTimeTrial:
		return "time_trial"
	case ModeObstacle:
		return "obstacle"
	case ModeMaze:
		return "maze"
	case ModeZen:
		return "zen"
	default:
		return "unknown"
	}
}

// Title returns the display name.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeTimeTrial:
		return "Time Trial"
	case ModeObstacle:
		return "Obstacle"
	case ModeMaze:
		return "Maze"
	case ModeZen:
		return "Zen"
	default:
		return "Unknown"
	}
}

// Description returns the one-line menu description.
func (m Mode) Description() string {
	switch m {
	case ModeClassic:
		return "Eat food, grow longer, don't hit walls or yourself"
	case ModeTimeTrial:
		return "Score as many points as possible before time runs out"
	case ModeObstacle:
		return "Navigate around obstacles while collecting food"
	case ModeMaze:
		return "Find your way through the maze to the exit"
	case ModeZen:
		return "Relaxed gameplay with no death, just enjoy growing"
	default:
		return ""
	}
}

func (m Mode) String() string { return m.ID() }

// ParseMode validates a mode name. Empty input maps to classic.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "classic":
		return ModeClassic, nil
	case "time_trial", "timetrial":
		return ModeTimeTrial, nil
	case "obstacle":
		return ModeObstacle, nil
	case "maze":
		return ModeMaze, nil
	case "zen":
		return ModeZen, nil
	default:
		return 0, fmt.Errorf("game: unknown mode %q (want classic, time_trial, obstacle, maze or zen)", s)
	}
}

// ModeConfig is the resolved rule bundle for one session: the chosen
// mode and difficulty flattened into plain parameters the engine reads
// uniformly. Mode differences are data; the only mode-conditional code
// paths are the maze exit check and the time-limit check.
type ModeConfig struct {
	Mode       Mode
	Difficulty config.DifficultyPreset

	BoardW        int
	BoardH        int
	InitialLength int

	MoveEveryTicks  int     // Base ticks between snake moves
	FoodValue       int     // Base points per normal food (scored x10)
	BonusChance     float64 // Probability a spawn is bonus food
	BonusMultiplier int
	PowerUpSeconds  int // Seconds between power-up food grants

	DeathOnCollision bool // False only in Zen
	WallDeath        bool // False = border wraps (Easy difficulty)

	TimeLimitSeconds int // Time Trial only, 0 = unbounded
	ObstacleCount    int // Obstacle mode only
	Maze             config.MazeConfig
}

// NewModeConfig resolves a mode and difficulty selection against the
// loaded configuration. Invalid selections fail here, before any tick.
func NewModeConfig(mode Mode, diff config.DifficultyPreset, cfg config.GameConfig) (ModeConfig, error) {
	if mode < 0 || mode >= modeCount {
		return ModeConfig{}, fmt.Errorf("game: invalid mode %d", int(mode))
	}
	params, err := cfg.Params(diff)
	if err != nil {
		return ModeConfig{}, err
	}

	mc := ModeConfig{
		Mode:             mode,
		Difficulty:       diff,
		BoardW:           cfg.Board.Width,
		BoardH:           cfg.Board.Height,
		InitialLength:    cfg.Gameplay.InitialLength,
		MoveEveryTicks:   params.MoveEveryTicks,
		FoodValue:        params.FoodValue,
		BonusChance:      cfg.Gameplay.BonusChance,
		BonusMultiplier:  cfg.Gameplay.BonusMultiplier,
		PowerUpSeconds:   params.PowerUpSeconds,
		DeathOnCollision: mode != ModeZen,
		WallDeath:        params.WallDeath,
	}

	switch mode {
	case ModeTimeTrial:
		mc.TimeLimitSeconds = cfg.TimeTrial.LimitSeconds
	case ModeObstacle:
		mc.ObstacleCount = cfg.Obstacle.Count
	case ModeMaze:
		mc.Maze = cfg.Maze
	}
	return mc, nil
}

// buildMaze fills the grid with the maze layout: border walls, internal
// walls with gaps, an exit carved into the border opposite the snake
// start, and portal pairs. Runs once at session start.
func buildMaze(g *Grid, rng *rand.Rand, cfg config.MazeConfig, start core.Point) {
	// Border walls
	for x := 0; x < g.Width; x++ {
		g.SetWall(core.Point{X: x, Y: 0})
		g.SetWall(core.Point{X: x, Y: g.Height - 1})
	}
	for y := 0; y < g.Height; y++ {
		g.SetWall(core.Point{X: 0, Y: y})
		g.SetWall(core.Point{X: g.Width - 1, Y: y})
	}

	spacing := cfg.WallSpacing
	if spacing < 3 {
		spacing = 5
	}
	gap := cfg.GapWidth
	if gap < 1 {
		gap = 4
	}

	// Horizontal internal walls with gaps
	for y := spacing; y < g.Height-spacing; y += spacing {
		gapPos := 1 + rng.Intn(core.Max(1, g.Width-gap-2))
		for x := 1; x < g.Width-1; x++ {
			if x < gapPos || x > gapPos+gap {
				g.SetWall(core.Point{X: x, Y: y})
			}
		}
	}

	// Vertical internal walls with gaps
	for x := spacing; x < g.Width-spacing; x += spacing {
		gapPos := 1 + rng.Intn(core.Max(1, g.Height-gap-2))
		for y := 1; y < g.Height-1; y++ {
			if y < gapPos || y > gapPos+gap {
				g.SetWall(core.Point{X: x, Y: y})
			}
		}
	}

	// Keep a clearing around the snake start
	for dy := -1; dy <= 1; dy++ {
		for dx := -cfg.GapWidth; dx <= 1; dx++ {
			p := start.Add(core.Point{X: dx, Y: dy})
			if p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1 {
				g.ClearWall(p)
			}
		}
	}

	// Carve the exit into the border on the side opposite the start
	exitX := g.Width - 1
	if start.X > g.Width/2 {
		exitX = 0
	}
	exit := core.Point{X: exitX, Y: start.Y}
	g.ClearWall(exit)
	g.SetExit(exit)

	// Portal pairs on non-wall cells
	for i := 0; i < cfg.PortalPairs; i++ {
		a, okA := randomOpenCell(g, rng, start)
		b, okB := randomOpenCell(g, rng, start)
		if !okA || !okB || a == b {
			continue
		}
		g.AddPortal(PortalPair{A: a, B: b})
	}
}

// randomOpenCell draws an interior cell free of walls, portals, the exit
// and the start clearing. Bounded retries; failure just skips the portal.
func randomOpenCell(g *Grid, rng *rand.Rand, start core.Point) (core.Point, bool) {
	for i := 0; i < spawnMaxTries; i++ {
		p := core.Point{
			X: 2 + rng.Intn(core.Max(1, g.Width-4)),
			Y: 2 + rng.Intn(core.Max(1, g.Height-4)),
		}
		if g.Blocked(p) || g.PortalAt(p) != nil {
			continue
		}
		if ex, ok := g.Exit(); ok && p == ex {
			continue
		}
		if p.ChebyshevDist(start) < 4 {
			continue
		}
		return p, true
	}
	return core.Point{}, false
}
