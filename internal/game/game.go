package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// EndReason explains why a session reached game over.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWall
	ReasonSelfCollision
	ReasonObstacle
	ReasonTimeUp
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "hit a wall"
	case ReasonSelfCollision:
		return "ran into yourself"
	case ReasonObstacle:
		return "hit an obstacle"
	case ReasonTimeUp:
		return "time's up"
	default:
		return ""
	}
}

// Game is one snake session: the rule engine plus the state it drives.
// The platform calls Step once per simulation tick; everything inside a
// step is synchronous and completes before it returns.
type Game struct {
	cfg      ModeConfig
	rng      *rand.Rand
	tickRate int

	grid     *Grid
	snake    *Snake
	spawner  *Spawner
	powerups *PowerUpManager
	food     Food

	nextDir      Direction
	tick         uint64
	elapsed      int // Ticks since session start, drives the time limit
	moveTicker   int // Ticks until the next snake move
	powerUpTimer int // Ticks until the next power-up food grant

	score     int
	highScore int

	over      bool
	reason    EndReason
	completed bool
	paused    bool
	tooSmall  bool

	// Layout for rendering
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	events []core.GameEvent
}

// New creates a session for the resolved mode configuration.
// Call Reset before the first Step.
func New(cfg ModeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return g.cfg.Mode.ID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake — " + g.cfg.Mode.Title()
}

// Config returns the session's mode configuration.
func (g *Game) Config() ModeConfig {
	return g.cfg
}

// SetHighScore supplies the stored high score for HUD display.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.elapsed = 0
	g.moveTicker = 0
	g.score = 0
	g.over = false
	g.reason = ReasonNone
	g.completed = false
	g.paused = false
	g.events = g.events[:0]

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2

	requiredW := g.cfg.BoardW + 2
	requiredH := g.cfg.BoardH + g.hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW - g.cfg.BoardW) / 2
	g.mapOffsetY = g.hudHeight

	g.grid = NewGrid(g.cfg.BoardW, g.cfg.BoardH)
	g.spawner = NewSpawner(g.rng)
	g.powerups = NewPowerUpManager()
	g.powerUpTimer = g.cfg.PowerUpSeconds * g.tickRate

	start := core.Point{X: g.cfg.BoardW / 4, Y: g.cfg.BoardH / 2}
	g.snake = NewSnake(start, g.cfg.InitialLength, DirRight)
	g.nextDir = DirRight

	switch g.cfg.Mode {
	case ModeObstacle:
		g.spawner.PlaceObstacles(g.grid, g.cfg.ObstacleCount, start, 3)
	case ModeMaze:
		buildMaze(g.grid, g.rng, g.cfg.Maze, start)
	}

	g.grid.SyncSnake(g.snake.Segments())
	g.spawnFood()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && (g.over || g.completed) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.over || g.completed || g.paused || g.tooSmall {
		return g.result()
	}

	g.elapsed++
	g.processInput(in)
	g.maybeGrantPowerUp()

	g.moveTicker++
	if g.moveTicker >= g.effectiveMoveInterval() {
		g.moveTicker = 0
		g.moveSnake()
	}

	// Power-up countdown runs after food effects so a power-up collected
	// on its predecessor's expiry tick replaces it before expiry fires.
	_, hadActive := g.powerups.Active()
	g.powerups.Tick()
	if _, active := g.powerups.Active(); hadActive && !active {
		g.emit(core.EventPowerUpExpired)
	}

	if !g.over && g.cfg.TimeLimitSeconds > 0 && g.elapsed >= g.cfg.TimeLimitSeconds*g.tickRate {
		g.endGame(ReasonTimeUp)
	}

	return g.result()
}

// processInput buffers a direction change, rejecting direct reversals.
func (g *Game) processInput(in core.InputFrame) {
	newDir := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		newDir = DirUp
	case in.Has(core.ActionDown):
		newDir = DirDown
	case in.Has(core.ActionLeft):
		newDir = DirLeft
	case in.Has(core.ActionRight):
		newDir = DirRight
	}
	if !newDir.IsOpposite(g.snake.Heading()) {
		g.nextDir = newDir
	}
}

// effectiveMoveInterval derives the tick interval from the base interval
// and the active speed multiplier, floored at one tick.
func (g *Game) effectiveMoveInterval() int {
	interval := int(math.Round(float64(g.cfg.MoveEveryTicks) / g.powerups.SpeedMultiplier()))
	return core.Max(1, interval)
}

// maybeGrantPowerUp upgrades the current food to a power-up grant once
// the difficulty's interval elapses, so a grant is always reachable.
func (g *Game) maybeGrantPowerUp() {
	if g.food.Kind == FoodPowerUp {
		return
	}
	g.powerUpTimer--
	if g.powerUpTimer > 0 {
		return
	}
	g.food.Kind = FoodPowerUp
	g.food.Grant = RollPowerUpType(g.rng)
	g.powerUpTimer = g.cfg.PowerUpSeconds * g.tickRate
}

// moveSnake executes one rule-engine move: heading, collisions, food,
// commit, exit check, magnet pull.
func (g *Game) moveSnake() {
	dir := g.nextDir
	g.snake.SetHeading(dir)
	newHead := g.snake.Advance(dir)
	ghost := g.powerups.Ghost()

	// Bounds check. Ghost and wrap-around borders fold the coordinate
	// back onto the board; Zen reflects the heading instead of dying.
	if !g.grid.InBounds(newHead) {
		switch {
		case ghost || !g.cfg.WallDeath:
			newHead = g.grid.Wrap(newHead)
		case !g.cfg.DeathOnCollision:
			dir = g.reflect(dir)
			g.snake.SetHeading(dir)
			g.nextDir = dir
			newHead = g.snake.Advance(dir)
			if !g.grid.InBounds(newHead) {
				return // Boxed in; skip the move
			}
		default:
			g.endGame(ReasonWall)
			return
		}
	}

	// Portal teleport before any occupancy checks on the entered cell
	if out := g.grid.PortalAt(newHead); out != nil {
		newHead = *out
		g.emit(core.EventTeleport)
	}

	// Maze walls, border included
	if g.grid.Walls()[newHead] && !ghost {
		g.endGame(ReasonWall)
		return
	}

	if g.snake.HitsBody(newHead) && !ghost && g.cfg.DeathOnCollision {
		g.endGame(ReasonSelfCollision)
		return
	}

	if g.grid.Obstacles()[newHead] && !ghost {
		g.endGame(ReasonObstacle)
		return
	}

	ate := newHead == g.food.Pos
	if ate {
		g.eatFood()
	}

	g.snake.CommitMove(newHead)
	g.grid.SyncSnake(g.snake.Segments())

	if ate {
		g.spawnFood()
	}

	if exit, ok := g.grid.Exit(); ok && newHead == exit {
		g.completed = true
		g.emit(core.EventLevelComplete)
		return
	}

	g.applyMagnet()
}

// eatFood applies score, growth and power-up activation for the food
// under the head. Runs before CommitMove; the physical replacement spawn
// happens after the move so the new food can never land on the incoming
// head cell.
func (g *Game) eatFood() {
	value := g.food.Value * 10 * g.powerups.ScoreMultiplier()
	g.score += value
	if g.score > g.highScore {
		g.highScore = g.score
	}

	switch g.food.Kind {
	case FoodPowerUp:
		g.powerups.Activate(g.food.Grant)
		if g.food.Grant == PowerSizeDown {
			// Immediate effect: halve the body, floor at length 1
			g.snake.Grow(-(g.snake.Len() / 2))
		}
		g.emit(core.EventPowerUpCollected)
	case FoodBonus:
		g.emit(core.EventBonus)
	default:
		g.emit(core.EventEat)
	}

	g.snake.Grow(1)
}

// spawnFood places the next food item. Kind is rolled here: bonus food
// by chance, normal otherwise. Power-up grants arrive via the timer
// upgrade in maybeGrantPowerUp.
func (g *Game) spawnFood() {
	kind := FoodNormal
	value := g.cfg.FoodValue
	if g.rng.Float64() < g.cfg.BonusChance {
		kind = FoodBonus
		value *= g.cfg.BonusMultiplier
	}
	f, err := g.spawner.PlaceFood(g.grid, kind, value, 0)
	if err != nil {
		// Grid exhausted; park the food off-board. Practically unreachable.
		g.food = Food{Pos: core.Point{X: -1, Y: -1}}
		return
	}
	g.food = f
}

// reflect picks a survivable heading for Zen mode wall contact:
// clockwise turn first, then counter-clockwise, then reverse.
func (g *Game) reflect(d Direction) Direction {
	for _, cand := range []Direction{d.Clockwise(), d.CounterClockwise(), d.Opposite()} {
		next := g.snake.Head().Add(cand.Delta())
		if g.grid.InBounds(next) && !g.grid.Blocked(next) {
			return cand
		}
	}
	return d
}

// applyMagnet pulls the food one cell toward the head along the dominant
// axis while the Magnet is active. Only food inside the attraction band
// moves, and never onto the snake, terrain or out of bounds.
func (g *Game) applyMagnet() {
	if !g.powerups.MagnetActive() {
		return
	}
	head := g.snake.Head()
	dist := head.ChebyshevDist(g.food.Pos)
	if dist <= magnetMinDist || dist >= magnetMaxDist {
		return
	}

	dx := g.food.Pos.X - head.X
	dy := g.food.Pos.Y - head.Y
	step := core.Point{}
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			step.X = -1
		} else {
			step.X = 1
		}
	} else {
		if dy > 0 {
			step.Y = -1
		} else {
			step.Y = 1
		}
	}

	dst := g.food.Pos.Add(step)
	if !g.grid.InBounds(dst) || g.grid.Blocked(dst) || g.grid.OccupiedBySnake(dst) {
		return
	}
	if g.grid.PortalAt(dst) != nil {
		return
	}
	if ex, ok := g.grid.Exit(); ok && dst == ex {
		return
	}
	g.food.Pos = dst
	g.grid.SyncFood(dst)
}

// Magnet attraction band, in cells from the head.
const (
	magnetMinDist = 2
	magnetMaxDist = 8
)

func (g *Game) endGame(reason EndReason) {
	g.over = true
	g.reason = reason
	g.emit(core.EventGameOver)
}

func (g *Game) emit(ev core.GameEvent) {
	g.events = append(g.events, ev)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.GameEvent(nil), g.events...)
	}
	return res
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Done:      g.over || g.completed,
		Completed: g.completed,
		Paused:    g.paused,
	}
}

// EndReason returns why the session ended (ReasonNone while running).
func (g *Game) EndReason() EndReason {
	return g.reason
}

// Clockwise returns the direction rotated 90° clockwise.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return DirRight
	}
}

// CounterClockwise returns the direction rotated 90° counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	return d.Clockwise().Opposite()
}
