package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tictactoe/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4500")).
			MarginBottom(1)

	gridStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	markXStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	markOStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true)

	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("#FFD700"))

	statusStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const gridRule = "───┼───┼───"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := view.Build(m.game)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderBoard(v),
		"    ",
		m.renderInfo(v),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Tic-Tac-Toe"),
		body,
		"",
		m.help.View(m.keys),
	) + "\n"
}

func (m Model) renderBoard(v view.Game) string {
	rows := make([]string, 0, 2*len(v.Board)-1)
	for r, row := range v.Board {
		cells := make([]string, len(row))
		for c, sq := range row {
			cells[c] = m.renderSquare(sq)
		}
		rows = append(rows, strings.Join(cells, gridStyle.Render("│")))
		if r < len(v.Board)-1 {
			rows = append(rows, gridStyle.Render(gridRule))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSquare(sq view.Square) string {
	text := " "
	style := lipgloss.NewStyle()
	switch sq.Value {
	case "X":
		text, style = "X", markXStyle
	case "O":
		text, style = "O", markOStyle
	}

	if sq.Highlight {
		style = style.Inherit(highlightStyle)
	}
	if m.focus == focusBoard && sq.Cell == m.cursor {
		style = style.Reverse(true)
	}
	return style.Render(" " + text + " ")
}

func (m Model) renderInfo(v view.Game) string {
	var b strings.Builder

	b.WriteString(statusStyle.Render(v.Status))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Order: " + v.Order))
	b.WriteString("\n\n")

	for i, mv := range v.Moves {
		prefix := "  "
		if m.focus == focusMoves && i == m.listCursor {
			prefix = "> "
		}

		line := mv.Label
		if mv.Selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	return b.String()
}
