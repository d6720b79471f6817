package game

import "github.com/vovakirdan/snake-arcade/internal/core"

// Snapshot captures the observable session state at one tick. Two
// sessions with the same configuration and seed produce identical
// snapshot sequences for the same input sequence.
type Snapshot struct {
	Tick          uint64
	Score         int
	Segments      []core.Point
	Heading       Direction
	Food          Food
	PowerUp       PowerUpType
	PowerUpActive bool
	PowerUpTicks  int
	Over          bool
	Reason        EndReason
	Completed     bool
}

// Snapshot returns a copy of the current observable state.
func (g *Game) Snapshot() Snapshot {
	active, has := g.powerups.Active()
	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		Segments:      append([]core.Point(nil), g.snake.Segments()...),
		Heading:       g.snake.Heading(),
		Food:          g.food,
		PowerUp:       active,
		PowerUpActive: has,
		PowerUpTicks:  g.powerups.Remaining(),
		Over:          g.over,
		Reason:        g.reason,
		Completed:     g.completed,
	}
}

// Equal compares two snapshots field by field.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Score != o.Score || s.Heading != o.Heading ||
		s.Food != o.Food || s.PowerUp != o.PowerUp || s.PowerUpActive != o.PowerUpActive ||
		s.PowerUpTicks != o.PowerUpTicks || s.Over != o.Over || s.Reason != o.Reason ||
		s.Completed != o.Completed {
		return false
	}
	if len(s.Segments) != len(o.Segments) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != o.Segments[i] {
			return false
		}
	}
	return true
}
