package game

import "fmt"

// Move is one history record: the board after a move and where it was played.
// The first record of every history has the empty board and a zero Location.
type Move struct {
	Board    Board
	Location Location
}

// Outcome classifies the board at the current step.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "IN_PROGRESS"
	case OutcomeWon:
		return "WON"
	case OutcomeDraw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Status describes the board at the current step.
type Status struct {
	Outcome Outcome
	// Winner and Line are set when Outcome is OutcomeWon.
	Winner Mark
	Line   Line
	// Next is set when Outcome is OutcomeInProgress.
	Next Mark
}

func (s Status) String() string {
	switch s.Outcome {
	case OutcomeWon:
		return "Winner: " + s.Winner.String()
	case OutcomeDraw:
		return "No one wins. The result is a draw!"
	default:
		return "Next player: " + s.Next.String()
	}
}

// MoveEntry is one item of the move list.
type MoveEntry struct {
	Step     int
	Label    string
	Selected bool
}

// Game is an immutable tic-tac-toe state with recorded history.
// Every transition returns a new Game and leaves the receiver untouched.
// The zero value is not usable; start from New.
type Game struct {
	history   []Move
	step      int
	next      Mark
	ascending bool
}

// New returns a game at the empty board with X to move.
func New() Game {
	return Game{
		history:   []Move{{}},
		step:      0,
		next:      MarkX, // X always goes first
		ascending: true,
	}
}

// Play places the next mark at cell i. Any future recorded after the current
// step is discarded first. Playing on an occupied cell, on a won board, or
// outside 0..8 returns g unchanged.
func (g Game) Play(i int) Game {
	if i < 0 || i >= BoardCells {
		return g
	}

	current := g.history[g.step].Board
	if _, won := CalculateWinner(current); won || current[i] != MarkEmpty {
		return g
	}

	// Copy instead of reslicing: other values may share the backing array.
	history := make([]Move, g.step+1, g.step+2)
	copy(history, g.history[:g.step+1])

	current[i] = g.next
	history = append(history, Move{Board: current, Location: LocationOf(i)})

	return Game{
		history:   history,
		step:      len(history) - 1,
		next:      g.next.Opponent(),
		ascending: g.ascending,
	}
}

// JumpTo moves the step pointer without discarding history. The next mark is
// derived from parity: X on even steps, O on odd. Out of range returns g.
func (g Game) JumpTo(step int) Game {
	if step < 0 || step >= len(g.history) {
		return g
	}
	g.step = step
	g.next = markForStep(step)
	return g
}

// ToggleOrder flips the display order of the move list.
func (g Game) ToggleOrder() Game {
	g.ascending = !g.ascending
	return g
}

// Board returns the board at the current step.
func (g Game) Board() Board {
	return g.history[g.step].Board
}

// Step returns the current step pointer.
func (g Game) Step() int {
	return g.step
}

// Next returns the mark that plays next.
func (g Game) Next() Mark {
	return g.next
}

// Ascending reports whether the move list is shown oldest first.
func (g Game) Ascending() bool {
	return g.ascending
}

// Len returns the number of history records, including the initial board.
func (g Game) Len() int {
	return len(g.history)
}

// History returns a copy of the recorded history.
func (g Game) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

// Status evaluates the board at the current step.
func (g Game) Status() Status {
	if win, ok := CalculateWinner(g.Board()); ok {
		return Status{Outcome: OutcomeWon, Winner: win.Player, Line: win.Line}
	}
	if g.step < BoardCells {
		return Status{Outcome: OutcomeInProgress, Next: g.next}
	}
	return Status{Outcome: OutcomeDraw}
}

// Moves returns the move list in display order.
func (g Game) Moves() []MoveEntry {
	entries := make([]MoveEntry, len(g.history))
	for step, move := range g.history {
		entries[step] = MoveEntry{
			Step:     step,
			Label:    moveLabel(step, move.Location),
			Selected: step == g.step,
		}
	}

	if !g.ascending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries
}

// moveLabel returns the move list text for a history record
func moveLabel(step int, loc Location) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d ( %d, %d )", step, loc.Col, loc.Row)
}

func markForStep(step int) Mark {
	if step%2 == 0 {
		return MarkX
	}
	return MarkO
}
