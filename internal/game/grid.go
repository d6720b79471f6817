package game

import "github.com/vovakirdan/snake-arcade/internal/core"

// CellKind classifies what occupies a grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSnake
	CellFood
	CellObstacle
	CellWall
	CellExit
	CellPortal
)

// PortalPair is two linked cells; entering one moves the head to the other.
type PortalPair struct {
	A, B core.Point
}

// Grid is the fixed-size playfield. Static terrain (walls, obstacles,
// portals, the maze exit) is set once at session start and never changes.
// Snake occupancy is written back by the engine after each committed move;
// food occupancy after each spawn. All queries are side effect free.
type Grid struct {
	Width  int
	Height int

	walls     map[core.Point]bool
	obstacles map[core.Point]bool
	snake     map[core.Point]int // occupancy count; transient overlaps possible in Zen
	food      map[core.Point]bool
	portals   []PortalPair

	exit    core.Point
	hasExit bool
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		walls:     make(map[core.Point]bool),
		obstacles: make(map[core.Point]bool),
		snake:     make(map[core.Point]int),
		food:      make(map[core.Point]bool),
	}
}

// InBounds reports whether the coordinate lies on the board.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps a coordinate onto the board modulo its dimensions.
// Used when Ghost mode or wrap-around borders are active.
func (g *Grid) Wrap(p core.Point) core.Point {
	x := ((p.X % g.Width) + g.Width) % g.Width
	y := ((p.Y % g.Height) + g.Height) % g.Height
	return core.Point{X: x, Y: y}
}

// CellAt classifies the occupant of a cell. Snake segments shadow food
// (a transient state right before the engine resolves the bite).
func (g *Grid) CellAt(p core.Point) CellKind {
	if !g.InBounds(p) {
		return CellWall
	}
	switch {
	case g.hasExit && p == g.exit:
		return CellExit
	case g.walls[p]:
		return CellWall
	case g.obstacles[p]:
		return CellObstacle
	case g.snake[p] > 0:
		return CellSnake
	case g.food[p]:
		return CellFood
	case g.PortalAt(p) != nil:
		return CellPortal
	default:
		return CellEmpty
	}
}

// OccupiedBySnake reports whether a snake segment occupies the cell.
func (g *Grid) OccupiedBySnake(p core.Point) bool {
	return g.snake[p] > 0
}

// Blocked reports whether the cell is impassable terrain (wall or obstacle).
func (g *Grid) Blocked(p core.Point) bool {
	return g.walls[p] || g.obstacles[p]
}

// SetWall marks a cell as a maze wall.
func (g *Grid) SetWall(p core.Point) {
	g.walls[p] = true
}

// ClearWall removes a maze wall, used to carve the exit and wall gaps.
func (g *Grid) ClearWall(p core.Point) {
	delete(g.walls, p)
}

// SetObstacle marks a cell as an obstacle.
func (g *Grid) SetObstacle(p core.Point) {
	g.obstacles[p] = true
}

// Walls returns the wall cells (iteration order is unspecified).
func (g *Grid) Walls() map[core.Point]bool {
	return g.walls
}

// Obstacles returns the obstacle cells (iteration order is unspecified).
func (g *Grid) Obstacles() map[core.Point]bool {
	return g.obstacles
}

// SetExit designates the maze exit cell.
func (g *Grid) SetExit(p core.Point) {
	g.exit = p
	g.hasExit = true
}

// Exit returns the maze exit cell, if one is designated.
func (g *Grid) Exit() (core.Point, bool) {
	return g.exit, g.hasExit
}

// AddPortal registers a linked portal pair.
func (g *Grid) AddPortal(pair PortalPair) {
	g.portals = append(g.portals, pair)
}

// Portals returns all portal pairs.
func (g *Grid) Portals() []PortalPair {
	return g.portals
}

// PortalAt returns the exit point for a portal cell, or nil.
func (g *Grid) PortalAt(p core.Point) *core.Point {
	for _, pair := range g.portals {
		if p == pair.A {
			out := pair.B
			return &out
		}
		if p == pair.B {
			out := pair.A
			return &out
		}
	}
	return nil
}

// SyncSnake writes the snake's occupancy back into the grid.
// Called by the engine after every committed move.
func (g *Grid) SyncSnake(segments []core.Point) {
	for p := range g.snake {
		delete(g.snake, p)
	}
	for _, p := range segments {
		g.snake[p]++
	}
}

// SyncFood writes food occupancy back into the grid.
func (g *Grid) SyncFood(positions ...core.Point) {
	for p := range g.food {
		delete(g.food, p)
	}
	for _, p := range positions {
		g.food[p] = true
	}
}

// SpawnFree reports whether a cell may receive a spawned item: in bounds,
// not terrain, not snake, not food, not a portal endpoint, not the exit.
func (g *Grid) SpawnFree(p core.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	if g.Blocked(p) || g.snake[p] > 0 || g.food[p] {
		return false
	}
	if g.hasExit && p == g.exit {
		return false
	}
	return g.PortalAt(p) == nil
}

// EmptyCells collects every spawn-free cell, scanning row-major.
// The spawner's fallback when rejection sampling fails.
func (g *Grid) EmptyCells() []core.Point {
	var cells []core.Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			if g.SpawnFree(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
