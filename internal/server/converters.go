package server

import (
	"tictactoe/internal/game"
	"tictactoe/internal/store"
	"tictactoe/internal/view"
)

// sessionToMessage converts a session and its game value to a Session message
func sessionToMessage(sess *store.Session, g game.Game) *Session {
	return &Session{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.IdleSince(),
		Game:      view.Build(g),
	}
}
