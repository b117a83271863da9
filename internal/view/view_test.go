package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/game"
)

func TestBuild_NewGame(t *testing.T) {
	v := Build(game.New())

	assert.Equal(t, "Next player: X", v.Status)
	assert.Equal(t, "IN_PROGRESS", v.Outcome)
	assert.Equal(t, "X", v.Next)
	assert.Empty(t, v.Winner)
	assert.Nil(t, v.Line)
	assert.Equal(t, 0, v.Step)
	assert.Equal(t, "ascending", v.Order)

	for row := range v.Board {
		for col, sq := range v.Board[row] {
			assert.Equal(t, row*3+col, sq.Cell)
			assert.Empty(t, sq.Value)
			assert.False(t, sq.Highlight)
			assert.Equal(t, "square", sq.Class)
		}
	}

	require.Len(t, v.Moves, 1)
	assert.Equal(t, Move{Step: 0, Label: "Go to game start", Selected: true, Class: "selected"}, v.Moves[0])
}

func TestBuild_Winner(t *testing.T) {
	// X X X
	// O O .
	// . . .
	g := game.New().Play(0).Play(3).Play(1).Play(4).Play(2)
	v := Build(g)

	assert.Equal(t, "Winner: X", v.Status)
	assert.Equal(t, "WON", v.Outcome)
	assert.Equal(t, "X", v.Winner)
	assert.Equal(t, []int{0, 1, 2}, v.Line)
	assert.Empty(t, v.Next)

	for _, sq := range v.Board[0] {
		assert.True(t, sq.Highlight)
		assert.Equal(t, "square highlight", sq.Class)
		assert.Equal(t, "X", sq.Value)
	}
	for _, sq := range v.Board[1] {
		assert.False(t, sq.Highlight)
	}
	assert.Equal(t, "O", v.Board[1][0].Value)
}

func TestBuild_Draw(t *testing.T) {
	g := game.New()
	for _, c := range []int{0, 1, 2, 5, 3, 6, 4, 8, 7} {
		g = g.Play(c)
	}
	v := Build(g)

	assert.Equal(t, "No one wins. The result is a draw!", v.Status)
	assert.Equal(t, "DRAW", v.Outcome)
	assert.Empty(t, v.Next)
	assert.Empty(t, v.Winner)
}

func TestBuild_MovesDescending(t *testing.T) {
	g := game.New().Play(4).Play(0).ToggleOrder().JumpTo(1)
	v := Build(g)

	assert.Equal(t, "descending", v.Order)
	require.Len(t, v.Moves, 3)
	assert.Equal(t, "Go to move #2 ( 1, 1 )", v.Moves[0].Label)
	assert.Equal(t, Move{Step: 1, Label: "Go to move #1 ( 2, 2 )", Selected: true, Class: "selected"}, v.Moves[1])
	assert.Equal(t, "Go to game start", v.Moves[2].Label)
	assert.Empty(t, v.Moves[2].Class)
}

func TestBuild_JSON(t *testing.T) {
	data, err := json.Marshal(Build(game.New().Play(4)))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "O", decoded["next"])
	assert.Equal(t, float64(1), decoded["step"])
	assert.NotContains(t, decoded, "winner")
	assert.NotContains(t, decoded, "line")
}

func TestSquareClass(t *testing.T) {
	assert.Equal(t, "square highlight", SquareClass(true))
	assert.Equal(t, "square", SquareClass(false))
}
