// Package view turns a game state into plain data for any UI to render.
package view

import "tictactoe/internal/game"

const (
	classSquare    = "square"
	classHighlight = "square highlight"
	classSelected  = "selected"

	orderAscending  = "ascending"
	orderDescending = "descending"
)

// Square is one rendered cell
type Square struct {
	Cell      int    `json:"cell"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight"`
	Class     string `json:"class"`
}

// Move is one rendered entry of the move list
type Move struct {
	Step     int    `json:"step"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	Class    string `json:"class"`
}

// Game is the complete view model of a game
type Game struct {
	Board   [game.BoardSide][game.BoardSide]Square `json:"board"`
	Status  string                                 `json:"status"`
	Outcome string                                 `json:"outcome"`
	Winner  string                                 `json:"winner,omitempty"`
	Line    []int                                  `json:"line,omitempty"`
	Next    string                                 `json:"next,omitempty"`
	Step    int                                    `json:"step"`
	Order   string                                 `json:"order"`
	Moves   []Move                                 `json:"moves"`
}

// Build renders g into a view model
func Build(g game.Game) Game {
	st := g.Status()
	board := g.Board()

	v := Game{
		Status:  st.String(),
		Outcome: st.Outcome.String(),
		Step:    g.Step(),
		Order:   Order(g.Ascending()),
	}

	for i, mark := range board {
		highlight := st.Outcome == game.OutcomeWon && st.Line.Contains(i)
		v.Board[i/game.BoardSide][i%game.BoardSide] = Square{
			Cell:      i,
			Value:     mark.String(),
			Highlight: highlight,
			Class:     SquareClass(highlight),
		}
	}

	switch st.Outcome {
	case game.OutcomeWon:
		v.Winner = st.Winner.String()
		v.Line = st.Line[:]
	case game.OutcomeInProgress:
		v.Next = st.Next.String()
	}

	entries := g.Moves()
	v.Moves = make([]Move, len(entries))
	for i, entry := range entries {
		v.Moves[i] = Move{
			Step:     entry.Step,
			Label:    entry.Label,
			Selected: entry.Selected,
		}
		if entry.Selected {
			v.Moves[i].Class = classSelected
		}
	}

	return v
}

// SquareClass returns the style class of a square
func SquareClass(highlight bool) string {
	if highlight {
		return classHighlight
	}
	return classSquare
}

// Order returns the label of the order toggle
func Order(ascending bool) string {
	if ascending {
		return orderAscending
	}
	return orderDescending
}
