package game

// Mark represents a cell state on the board
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkEmpty:
		return ""
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Opponent returns the opposing mark
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

const (
	// BoardSide is the number of rows and columns.
	BoardSide = 3
	// BoardCells is the number of cells on the board.
	BoardCells = BoardSide * BoardSide
)

// Board holds the marks of all cells in row-major order (index = row*3 + col).
type Board [BoardCells]Mark

// Line is a triple of cell indices.
type Line [3]int

// Lines are scanned in this order by CalculateWinner: rows, columns, diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinResult names the winning mark and the line it completed.
type WinResult struct {
	Player Mark
	Line   Line
}

// CalculateWinner returns the first uniformly occupied line in Lines order.
// The second return value is false when no line is complete.
func CalculateWinner(b Board) (WinResult, bool) {
	for _, line := range Lines {
		a := b[line[0]]
		if a != MarkEmpty && a == b[line[1]] && a == b[line[2]] {
			return WinResult{Player: a, Line: line}, true
		}
	}
	return WinResult{}, false
}

// Contains reports whether cell index i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// IsFull returns true if all cells are occupied
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == MarkEmpty {
			return false
		}
	}
	return true
}

// Location is the 1-based column and row of a move. The zero value means no move.
type Location struct {
	Col int
	Row int
}

// LocationOf returns the location of cell index i.
func LocationOf(i int) Location {
	return Location{Col: i%BoardSide + 1, Row: i/BoardSide + 1}
}

// IsZero reports whether l carries no move.
func (l Location) IsZero() bool {
	return l.Col == 0 && l.Row == 0
}

// String returns a string representation of the board
func (b Board) String() string {
	var result string
	for row := 0; row < BoardSide; row++ {
		for col := 0; col < BoardSide; col++ {
			mark := b[row*BoardSide+col]
			if mark == MarkEmpty {
				result += "[ ]"
				continue
			}
			result += "[" + mark.String() + "]"
		}
		result += "\n"
	}
	return result
}
