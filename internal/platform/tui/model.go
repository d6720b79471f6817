package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/game"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	sounds     *audio.SoundManager
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(g *game.Game, store *storage.Store, sounds *audio.SoundManager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sounds:     sounds,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScore()
	return tickCmd(m.config.TickRate)
}

// loadHighScore feeds the stored best into the HUD.
func (m Model) loadHighScore() {
	if m.store == nil {
		return
	}
	mc := m.game.Config()
	if hs, err := m.store.HighScore(mc.Mode.ID(), string(mc.Difficulty)); err == nil {
		m.game.SetHighScore(hs)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "m" && m.sounds != nil {
		m.sounds.ToggleMute()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back returns to the menu once the session has ended or is paused.
	// Only meaningful when embedded in a session flow (SSH serving).
	if action := m.keys.MapKeyToMenuAction(msg); action == MenuActionBack {
		if m.gameState.Done || m.gameState.Paused {
			m.backToMenu = true
		}
	}
	return m, nil
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize with new dimensions; mid-session resizes restart
	if !m.gameState.Done {
		m.game.Reset(m.config)
		m.loadHighScore()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasDone := m.gameState.Done

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sounds != nil {
		for _, ev := range result.Events {
			m.sounds.PlayEvent(ev)
		}
	}

	// Save score on session end (once)
	if m.gameState.Done && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			mc := m.game.Config()
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(mc.Mode.ID(), string(mc.Difficulty), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	// A restart inside Step clears Done; allow the next save
	if wasDone && !m.gameState.Done {
		m.scoreSaved = false
		m.loadHighScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one session.
func Run(g *game.Game, store *storage.Store, sounds *audio.SoundManager, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, sounds, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
