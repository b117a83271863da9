// Package tui provides the terminal user interface for local play.
//
// The model owns one game value and turns key presses into game transitions.
// It is meant for the single-threaded bubbletea event loop; do not share a
// Model between goroutines.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tictactoe/internal/game"
)

type focus int

const (
	focusBoard focus = iota
	focusMoves
)

// Model is the bubbletea model of the game screen.
type Model struct {
	game game.Game
	keys KeyMap
	help help.Model

	focus      focus
	cursor     int // board cell
	listCursor int // index into the displayed move list

	quitting bool
}

// New returns a model at a fresh game with the cursor on the center cell.
func New() Model {
	return Model{
		game:   game.New(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		cursor: 4,
	}
}

// Game returns the current game value.
func (m Model) Game() game.Game {
	return m.game
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusBoard {
			m.focus = focusMoves
			m.listCursor = m.selectedIndex()
		} else {
			m.focus = focusBoard
		}

	case key.Matches(msg, m.keys.Cell):
		m.game = m.game.Play(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Back):
		m.game = m.game.JumpTo(m.game.Step() - 1)

	case key.Matches(msg, m.keys.Forward):
		m.game = m.game.JumpTo(m.game.Step() + 1)

	case key.Matches(msg, m.keys.Order):
		m.game = m.game.ToggleOrder()
		// Keep the list cursor on the same entry.
		m.listCursor = m.game.Len() - 1 - min(m.listCursor, m.game.Len()-1)

	case key.Matches(msg, m.keys.New):
		m.game = game.New()
		m.listCursor = 0

	case m.focus == focusBoard:
		m.handleBoardKey(msg)

	default:
		m.handleMovesKey(msg)
	}

	// A branch can shorten the move list under the cursor.
	m.listCursor = min(m.listCursor, m.game.Len()-1)
	return m, nil
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) {
	row, col := m.cursor/game.BoardSide, m.cursor%game.BoardSide

	switch {
	case key.Matches(msg, m.keys.Up):
		row = max(row-1, 0)
	case key.Matches(msg, m.keys.Down):
		row = min(row+1, game.BoardSide-1)
	case key.Matches(msg, m.keys.Left):
		col = max(col-1, 0)
	case key.Matches(msg, m.keys.Right):
		col = min(col+1, game.BoardSide-1)
	case key.Matches(msg, m.keys.Select):
		m.game = m.game.Play(m.cursor)
		return
	}

	m.cursor = row*game.BoardSide + col
}

func (m *Model) handleMovesKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.listCursor = max(m.listCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.listCursor = min(m.listCursor+1, m.game.Len()-1)
	case key.Matches(msg, m.keys.Select):
		moves := m.game.Moves()
		if m.listCursor < len(moves) {
			m.game = m.game.JumpTo(moves[m.listCursor].Step)
		}
	}
}

// selectedIndex returns the display index of the current step in the move list
func (m Model) selectedIndex() int {
	if m.game.Ascending() {
		return m.game.Step()
	}
	return m.game.Len() - 1 - m.game.Step()
}
