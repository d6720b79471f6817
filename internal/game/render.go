package game

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Render draws the full frame: HUD, board border, terrain, food, snake
// and any overlay. The screen is cleared by the caller each tick.
func (g *Game) Render(s *core.Screen) {
	if g.tooSmall {
		g.renderTooSmall(s)
		return
	}

	g.renderHUD(s)
	g.renderBoard(s)

	switch {
	case g.paused:
		g.renderOverlay(s, "PAUSED", "press p to resume", core.ColorBrightYellow)
	case g.completed:
		g.renderOverlay(s, "MAZE COMPLETE!", fmt.Sprintf("score %d — r to restart, q to quit", g.score), core.ColorBrightGreen)
	case g.over:
		g.renderOverlay(s, "GAME OVER", fmt.Sprintf("%s — r to restart, q to quit", g.reason), core.ColorBrightRed)
	}
}

func (g *Game) renderTooSmall(s *core.Screen) {
	s.DrawTextCentered(s.Height()/2, "Terminal too small")
	s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("need at least %dx%d", g.cfg.BoardW+2, g.cfg.BoardH+g.hudHeight+1))
}

func (g *Game) renderHUD(s *core.Screen) {
	left := fmt.Sprintf(" Score: %d   High: %d", g.score, g.highScore)
	s.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%s · %s ", g.cfg.Mode.Title(), g.cfg.Difficulty)
	s.DrawTextColor(s.Width()-len(right)-1, 0, right, core.ColorCyan)

	if g.cfg.TimeLimitSeconds > 0 {
		remaining := g.cfg.TimeLimitSeconds - g.elapsed/g.tickRate
		if remaining < 0 {
			remaining = 0
		}
		clock := fmt.Sprintf("Time: %02d:%02d", remaining/60, remaining%60)
		color := core.ColorBrightWhite
		if remaining <= 10 {
			color = core.ColorBrightRed
		}
		s.DrawTextColor((s.Width()-len(clock))/2, 0, clock, color)
	}

	if t, ok := g.powerups.Active(); ok {
		g.renderPowerUpBar(s, t)
	}
}

// renderPowerUpBar draws the active power-up name and a depleting
// duration bar on the second HUD row.
func (g *Game) renderPowerUpBar(s *core.Screen, t PowerUpType) {
	label := fmt.Sprintf(" %c %s ", t.Glyph(), t.Name())
	s.DrawTextColor(0, 1, label, t.Color())

	barWidth := 20
	filled := int(g.powerups.RemainingFraction() * float64(barWidth))
	x := len(label)
	s.DrawHLine(x, 1, filled, '█', t.Color())
	s.DrawHLine(x+filled, 1, barWidth-filled, '░', core.ColorGray)
}

func (g *Game) renderBoard(s *core.Screen) {
	ox, oy := g.mapOffsetX, g.mapOffsetY

	border := core.NewRect(ox-1, oy-1, g.cfg.BoardW+2, g.cfg.BoardH+2)
	s.DrawBox(border, core.ColorGray)

	for p := range g.grid.Walls() {
		s.SetCell(ox+p.X, oy+p.Y, '█', core.ColorBlue)
	}
	for p := range g.grid.Obstacles() {
		s.SetCell(ox+p.X, oy+p.Y, '▒', core.ColorOrange)
	}
	for _, pair := range g.grid.Portals() {
		s.SetCell(ox+pair.A.X, oy+pair.A.Y, '◎', core.ColorBrightCyan)
		s.SetCell(ox+pair.B.X, oy+pair.B.Y, '◎', core.ColorBrightCyan)
	}
	if exit, ok := g.grid.Exit(); ok {
		s.SetCell(ox+exit.X, oy+exit.Y, '⚑', core.ColorBrightGreen)
	}

	if g.grid.InBounds(g.food.Pos) {
		s.SetCell(ox+g.food.Pos.X, oy+g.food.Pos.Y, g.food.Glyph(), g.food.Color())
	}

	bodyColor := core.ColorGreen
	headColor := core.ColorBrightGreen
	if g.powerups.Ghost() {
		bodyColor = core.ColorGray
		headColor = core.ColorBrightWhite
	}
	for i := g.snake.Len() - 1; i >= 1; i-- {
		p := g.snake.Segments()[i]
		s.SetCell(ox+p.X, oy+p.Y, '▪', bodyColor)
	}
	head := g.snake.Head()
	s.SetCell(ox+head.X, oy+head.Y, headGlyph(g.snake.Heading()), headColor)
}

func headGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

func (g *Game) renderOverlay(s *core.Screen, title, subtitle string, c core.Color) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, c)
	s.DrawTextColor(r.X+(w-len(title))/2, r.Y+1, title, c)
	s.DrawTextColor(r.X+(w-len(subtitle))/2, r.Y+3, subtitle, core.ColorWhite)
}
