package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestWrapFoldsCoordinates(t *testing.T) {
	g := NewGrid(20, 10)
	cases := []struct {
		in, want core.Point
	}{
		{core.Point{X: 20, Y: 5}, core.Point{X: 0, Y: 5}},
		{core.Point{X: -1, Y: 5}, core.Point{X: 19, Y: 5}},
		{core.Point{X: 5, Y: 10}, core.Point{X: 5, Y: 0}},
		{core.Point{X: 5, Y: -1}, core.Point{X: 5, Y: 9}},
		{core.Point{X: 3, Y: 3}, core.Point{X: 3, Y: 3}},
	}
	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCellClassification(t *testing.T) {
	g := NewGrid(20, 10)
	g.SetWall(core.Point{X: 1, Y: 1})
	g.SetObstacle(core.Point{X: 2, Y: 2})
	g.SyncSnake([]core.Point{{X: 3, Y: 3}})
	g.SyncFood(core.Point{X: 4, Y: 4})
	g.AddPortal(PortalPair{A: core.Point{X: 5, Y: 5}, B: core.Point{X: 6, Y: 6}})
	g.SetExit(core.Point{X: 19, Y: 5})

	cases := []struct {
		p    core.Point
		want CellKind
	}{
		{core.Point{X: 0, Y: 0}, CellEmpty},
		{core.Point{X: 1, Y: 1}, CellWall},
		{core.Point{X: 2, Y: 2}, CellObstacle},
		{core.Point{X: 3, Y: 3}, CellSnake},
		{core.Point{X: 4, Y: 4}, CellFood},
		{core.Point{X: 5, Y: 5}, CellPortal},
		{core.Point{X: 19, Y: 5}, CellExit},
		{core.Point{X: -1, Y: 0}, CellWall},
	}
	for _, c := range cases {
		if got := g.CellAt(c.p); got != c.want {
			t.Errorf("CellAt(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestSpawnFreeExclusions(t *testing.T) {
	g := NewGrid(20, 10)
	g.SetWall(core.Point{X: 1, Y: 1})
	g.SyncSnake([]core.Point{{X: 3, Y: 3}})
	g.SyncFood(core.Point{X: 4, Y: 4})
	g.AddPortal(PortalPair{A: core.Point{X: 5, Y: 5}, B: core.Point{X: 6, Y: 6}})
	g.SetExit(core.Point{X: 19, Y: 5})

	blocked := []core.Point{
		{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 4, Y: 4},
		{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 19, Y: 5},
		{X: -1, Y: 0}, {X: 20, Y: 0},
	}
	for _, p := range blocked {
		if g.SpawnFree(p) {
			t.Errorf("SpawnFree(%v) = true, want false", p)
		}
	}
	if !g.SpawnFree(core.Point{X: 10, Y: 5}) {
		t.Error("open cell reported as not spawn-free")
	}
}

func TestPortalAtIsSymmetric(t *testing.T) {
	g := NewGrid(20, 10)
	a := core.Point{X: 2, Y: 2}
	b := core.Point{X: 15, Y: 7}
	g.AddPortal(PortalPair{A: a, B: b})

	if out := g.PortalAt(a); out == nil || *out != b {
		t.Errorf("PortalAt(A) = %v, want %v", out, b)
	}
	if out := g.PortalAt(b); out == nil || *out != a {
		t.Errorf("PortalAt(B) = %v, want %v", out, a)
	}
	if g.PortalAt(core.Point{X: 0, Y: 0}) != nil {
		t.Error("PortalAt on a plain cell should be nil")
	}
}

func TestSyncSnakeReplacesOccupancy(t *testing.T) {
	g := NewGrid(20, 10)
	g.SyncSnake([]core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}})
	g.SyncSnake([]core.Point{{X: 4, Y: 3}, {X: 3, Y: 3}})

	if g.OccupiedBySnake(core.Point{X: 2, Y: 3}) {
		t.Error("stale occupancy survived SyncSnake")
	}
	if !g.OccupiedBySnake(core.Point{X: 4, Y: 3}) {
		t.Error("new head cell not occupied after SyncSnake")
	}
}

func TestEmptyCellsExcludesEverything(t *testing.T) {
	g := NewGrid(6, 4)
	g.SetWall(core.Point{X: 0, Y: 0})
	g.SyncSnake([]core.Point{{X: 1, Y: 1}})
	g.SyncFood(core.Point{X: 2, Y: 2})

	cells := g.EmptyCells()
	if want := 6*4 - 3; len(cells) != want {
		t.Errorf("len(EmptyCells) = %d, want %d", len(cells), want)
	}
	for _, p := range cells {
		if !g.SpawnFree(p) {
			t.Errorf("EmptyCells returned non-free cell %v", p)
		}
	}
}

func TestPickEmptyOnCrowdedGrid(t *testing.T) {
	// Leave exactly one free cell; the spawner must find it
	g := NewGrid(4, 4)
	free := core.Point{X: 3, Y: 3}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := core.Point{X: x, Y: y}
			if p != free {
				g.SetWall(p)
			}
		}
	}

	sp := NewSpawner(rand.New(rand.NewSource(1)))
	p, err := sp.PickEmpty(g)
	if err != nil {
		t.Fatalf("PickEmpty: %v", err)
	}
	if p != free {
		t.Errorf("PickEmpty = %v, want %v", p, free)
	}

	g.SetWall(free)
	if _, err := sp.PickEmpty(g); err != ErrNoSpace {
		t.Errorf("err = %v on a full grid, want ErrNoSpace", err)
	}
}

func TestPlaceObstaclesKeepsClearance(t *testing.T) {
	g := NewGrid(30, 20)
	start := core.Point{X: 15, Y: 10}
	sp := NewSpawner(rand.New(rand.NewSource(9)))
	sp.PlaceObstacles(g, 15, start, 3)

	if len(g.Obstacles()) != 15 {
		t.Errorf("placed %d obstacles, want 15", len(g.Obstacles()))
	}
	for p := range g.Obstacles() {
		if p.ChebyshevDist(start) < 3 {
			t.Errorf("obstacle %v inside the start clearance", p)
		}
		if p.X < 2 || p.X >= g.Width-2 || p.Y < 2 || p.Y >= g.Height-2 {
			t.Errorf("obstacle %v outside the inner board", p)
		}
	}
}
