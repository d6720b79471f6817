package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", ModeClassic, false},
		{"classic", ModeClassic, false},
		{"time_trial", ModeTimeTrial, false},
		{"timetrial", ModeTimeTrial, false},
		{"obstacle", ModeObstacle, false},
		{"maze", ModeMaze, false},
		{"zen", ModeZen, false},
		{"speedrun", 0, true},
	}
	for _, c := range cases {
		got, err := ParseMode(c.in)
		if c.err {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMode(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewModeConfigFlattensDifficulty(t *testing.T) {
	cfg := config.DefaultGameConfig()

	mc, err := NewModeConfig(ModeClassic, "hard", cfg)
	if err != nil {
		t.Fatalf("NewModeConfig: %v", err)
	}
	hard := cfg.Difficulties["hard"]
	if mc.MoveEveryTicks != hard.MoveEveryTicks {
		t.Errorf("MoveEveryTicks = %d, want %d", mc.MoveEveryTicks, hard.MoveEveryTicks)
	}
	if mc.FoodValue != hard.FoodValue {
		t.Errorf("FoodValue = %d, want %d", mc.FoodValue, hard.FoodValue)
	}
	if !mc.WallDeath {
		t.Error("hard difficulty should have lethal walls")
	}
	if !mc.DeathOnCollision {
		t.Error("classic mode should die on collision")
	}
	if mc.TimeLimitSeconds != 0 {
		t.Errorf("classic should have no time limit, got %d", mc.TimeLimitSeconds)
	}
}

func TestNewModeConfigPerMode(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tt, err := NewModeConfig(ModeTimeTrial, "medium", cfg)
	if err != nil {
		t.Fatalf("time trial: %v", err)
	}
	if tt.TimeLimitSeconds != cfg.TimeTrial.LimitSeconds {
		t.Errorf("TimeLimitSeconds = %d, want %d", tt.TimeLimitSeconds, cfg.TimeTrial.LimitSeconds)
	}

	ob, err := NewModeConfig(ModeObstacle, "medium", cfg)
	if err != nil {
		t.Fatalf("obstacle: %v", err)
	}
	if ob.ObstacleCount != cfg.Obstacle.Count {
		t.Errorf("ObstacleCount = %d, want %d", ob.ObstacleCount, cfg.Obstacle.Count)
	}

	zen, err := NewModeConfig(ModeZen, "medium", cfg)
	if err != nil {
		t.Fatalf("zen: %v", err)
	}
	if zen.DeathOnCollision {
		t.Error("zen mode should never die on collision")
	}

	if _, err := NewModeConfig(ModeClassic, "nightmare", cfg); err == nil {
		t.Error("unknown difficulty should be rejected")
	}
}

func TestEasyDifficultyWraps(t *testing.T) {
	cfg := config.DefaultGameConfig()
	mc, err := NewModeConfig(ModeClassic, "easy", cfg)
	if err != nil {
		t.Fatalf("NewModeConfig: %v", err)
	}
	if mc.WallDeath {
		t.Error("easy difficulty should wrap at borders, not kill")
	}
}

func TestBuildMazeLayout(t *testing.T) {
	g := NewGrid(40, 20)
	rng := rand.New(rand.NewSource(3))
	start := core.Point{X: 10, Y: 10}
	buildMaze(g, rng, config.MazeConfig{WallSpacing: 5, GapWidth: 4, PortalPairs: 2}, start)

	exit, ok := g.Exit()
	if !ok {
		t.Fatal("maze has no exit")
	}
	if g.Walls()[exit] {
		t.Error("exit cell still walled")
	}
	if exit.X != g.Width-1 {
		t.Errorf("exit.X = %d, want far border opposite the start", exit.X)
	}

	// Border is walled except the exit
	for x := 0; x < g.Width; x++ {
		for _, y := range []int{0, g.Height - 1} {
			p := core.Point{X: x, Y: y}
			if p != exit && !g.Walls()[p] {
				t.Errorf("border cell %v not walled", p)
			}
		}
	}

	// Start cell and the cell ahead are clear
	if g.Blocked(start) || g.Blocked(start.Add(core.Point{X: 1, Y: 0})) {
		t.Error("start clearing is blocked")
	}

	// Portals land on open interior cells away from the start
	for _, pair := range g.Portals() {
		for _, p := range []core.Point{pair.A, pair.B} {
			if g.Walls()[p] {
				t.Errorf("portal %v on a wall", p)
			}
			if p.ChebyshevDist(start) < 4 {
				t.Errorf("portal %v too close to the start", p)
			}
		}
	}
}

func TestModeIdentifiers(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Modes() {
		id := m.ID()
		if id == "" || id == "unknown" {
			t.Errorf("mode %d has no identifier", int(m))
		}
		if seen[id] {
			t.Errorf("duplicate mode ID %q", id)
		}
		seen[id] = true
		if m.Title() == "" || m.Description() == "" {
			t.Errorf("mode %s missing title or description", id)
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 modes, got %d", len(seen))
	}
}
