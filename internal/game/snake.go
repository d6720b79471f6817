package game

import "github.com/vovakirdan/snake-arcade/internal/core"

// Snake is the player entity: an ordered segment list with the head at
// index 0, the current heading, and a pending-growth counter. Body
// segments are always contiguous; length never drops below 1.
type Snake struct {
	segments      []core.Point
	heading       Direction
	pendingGrowth int
}

// NewSnake creates a snake of the given length with its head at start,
// body trailing opposite the heading.
func NewSnake(start core.Point, length int, heading Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite().Delta()
	segments := make([]core.Point, length)
	p := start
	for i := range segments {
		segments[i] = p
		p = p.Add(back)
	}
	return &Snake{
		segments: segments,
		heading:  heading,
	}
}

// Head returns the head coordinate.
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// Tail returns the last body segment.
func (s *Snake) Tail() core.Point {
	return s.segments[len(s.segments)-1]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns the body from head to tail. Callers must not mutate it.
func (s *Snake) Segments() []core.Point {
	return s.segments
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetHeading updates the heading. The engine has already filtered out
// direct reversals by this point.
func (s *Snake) SetHeading(d Direction) {
	s.heading = d
}

// Advance computes the head coordinate one move in the given direction.
// Pure query; no state changes.
func (s *Snake) Advance(d Direction) core.Point {
	return s.Head().Add(d.Delta())
}

// Contains reports whether the point is occupied by any body segment.
func (s *Snake) Contains(p core.Point) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsBody reports whether moving the head to p collides with the body.
// The tail cell is exempt when no growth is pending, because the tail
// vacates it in the same move.
func (s *Snake) HitsBody(p core.Point) bool {
	limit := len(s.segments)
	if s.pendingGrowth == 0 && limit > 0 {
		limit--
	}
	for i := 0; i < limit; i++ {
		if s.segments[i] == p {
			return true
		}
	}
	return false
}

// Grow adjusts the pending-growth counter. Positive values defer tail
// removal for that many moves. Negative values trim tail segments
// immediately (the Size-Down effect), never below length 1.
func (s *Snake) Grow(by int) {
	if by >= 0 {
		s.pendingGrowth += by
		return
	}
	trim := -by
	if max := len(s.segments) - 1; trim > max {
		trim = max
	}
	if trim > 0 {
		s.segments = s.segments[:len(s.segments)-trim]
	}
}

// PendingGrowth returns the number of deferred tail removals.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// CommitMove inserts newHead at the front and removes the tail unless
// growth is pending, in which case the counter is decremented instead.
func (s *Snake) CommitMove(newHead core.Point) {
	s.segments = append([]core.Point{newHead}, s.segments...)
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	if len(s.segments) > 1 {
		s.segments = s.segments[:len(s.segments)-1]
	}
}
