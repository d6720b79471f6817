package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/game"
)

// Selection holds the user's choice from the start menu.
type Selection struct {
	Mode       game.Mode
	Difficulty config.DifficultyPreset
}

// MenuModel lets users choose a mode and difficulty before a session.
// Two-stage: mode list first, then the difficulty list.
type MenuModel struct {
	cursor       int
	diffCursor   int
	inDiffSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    Selection
	choosing     bool
	quitting     bool
}

// NewMenuModel creates a new mode selection model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
		diffCursor: 1, // Default to medium
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	modes := game.Modes()

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Mode = modes[m.cursor]
		m.inDiffSelect = true
	}
	return m, nil
}

func (m MenuModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	presets := config.PresetNames()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(presets)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = config.DifficultyPreset(presets[m.diffCursor])
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}
	return m, nil
}

// View renders the mode/difficulty selection.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range game.Modes() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-11s %s", cursor, mode.Title(), mode.Description()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))
	return b.String()
}

func (m MenuModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.selection.Mode.Title()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, name := range config.PresetNames() {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs the mode/difficulty selection and returns the selection,
// or nil if the user quit.
func RunMenu(width, height int) (*Selection, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}

// centerText pads a line so its visible content is horizontally centered.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
