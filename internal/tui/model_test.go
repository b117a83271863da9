package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/game"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys to the model and returns the result
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, 0, m.Game().Step())
	assert.Equal(t, 4, m.cursor)
	assert.Equal(t, focusBoard, m.focus)
	assert.Nil(t, m.Init())
}

func TestModel_PlayWithDigits(t *testing.T) {
	m := press(t, New(), "1", "5")

	b := m.Game().Board()
	assert.Equal(t, game.MarkX, b[0])
	assert.Equal(t, game.MarkO, b[4])
	assert.Equal(t, 2, m.Game().Step())
}

func TestModel_CursorMovement(t *testing.T) {
	m := press(t, New(), "up", "left", "enter")
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, game.MarkX, m.Game().Board()[0])

	// Cursor stays on the board edge.
	m = press(t, m, "up", "left")
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "j", "l", "l", "l", " ")
	assert.Equal(t, 5, m.cursor)
	assert.Equal(t, game.MarkO, m.Game().Board()[5])
}

func TestModel_OccupiedCellIgnored(t *testing.T) {
	m := press(t, New(), "enter", "enter")

	assert.Equal(t, 1, m.Game().Step())
	assert.Equal(t, game.MarkO, m.Game().Next())
}

func TestModel_StepBackAndForward(t *testing.T) {
	m := press(t, New(), "1", "2", "3")

	m = press(t, m, "[", "[")
	assert.Equal(t, 1, m.Game().Step())
	assert.Equal(t, game.MarkO, m.Game().Next())

	m = press(t, m, "]")
	assert.Equal(t, 2, m.Game().Step())

	// Past either end nothing happens.
	m = press(t, m, "]", "]", "]")
	assert.Equal(t, 3, m.Game().Step())
	m = press(t, m, "[", "[", "[", "[", "[")
	assert.Equal(t, 0, m.Game().Step())
}

func TestModel_JumpFromMoveList(t *testing.T) {
	m := press(t, New(), "1", "2", "3")

	m = press(t, m, "tab")
	assert.Equal(t, focusMoves, m.focus)
	assert.Equal(t, 3, m.listCursor)

	m = press(t, m, "up", "up", "enter")
	assert.Equal(t, 1, m.Game().Step())
	assert.Equal(t, 4, m.Game().Len())

	// Branching from step 1 discards the later moves.
	m = press(t, m, "9")
	assert.Equal(t, 3, m.Game().Len())
	assert.LessOrEqual(t, m.listCursor, 2)

	m = press(t, m, "tab")
	assert.Equal(t, focusBoard, m.focus)
}

func TestModel_ToggleOrder(t *testing.T) {
	m := press(t, New(), "1", "2", "tab")
	require.Equal(t, 2, m.listCursor)

	m = press(t, m, "o")
	assert.False(t, m.Game().Ascending())
	assert.Equal(t, 0, m.listCursor, "cursor follows the entry")

	m = press(t, m, "down", "enter")
	assert.Equal(t, 1, m.Game().Step())
}

func TestModel_NewGame(t *testing.T) {
	m := press(t, New(), "1", "2", "n")

	assert.Equal(t, 1, m.Game().Len())
	assert.Equal(t, game.MarkX, m.Game().Next())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		updated, cmd := New().Update(keyMsg(k))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, updated.View())
	}
}

func TestModel_WindowSize(t *testing.T) {
	updated, cmd := New().Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, updated.(Model).help.Width)
}

func TestModel_View(t *testing.T) {
	out := New().View()
	assert.Contains(t, out, "Tic-Tac-Toe")
	assert.Contains(t, out, "Next player: X")
	assert.Contains(t, out, "Order: ascending")
	assert.Contains(t, out, "Go to game start")

	// X X X
	// O O .
	// . . .
	m := press(t, New(), "1", "4", "2", "5", "3")
	out = m.View()
	assert.Contains(t, out, "Winner: X")
	assert.Contains(t, out, "Go to move #5 ( 3, 1 )")

	out = press(t, m, "o").View()
	assert.Contains(t, out, "Order: descending")
}
