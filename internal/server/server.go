package server

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"tictactoe/internal/game"
	"tictactoe/internal/store"
)

// GameServer implements the GameService on top of a session store
type GameServer struct {
	sessions *store.SessionStore
	metrics  *Metrics
	logger   zerolog.Logger
	now      func() time.Time
}

// NewGameServer creates a new server instance
func NewGameServer(sessions *store.SessionStore, metrics *Metrics, logger zerolog.Logger) *GameServer {
	return &GameServer{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession starts a new game
func (s *GameServer) CreateSession(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	sess := store.NewSession(uuid.New().String(), s.now())
	if err := s.sessions.Create(sess); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to store session: %v", err)
	}

	s.metrics.SessionsCreated.Inc()
	s.metrics.ActiveSessions.Inc()
	s.logger.Info().Str("session_id", sess.ID).Msg("session created")

	return sessionToMessage(sess, sess.Game()), nil
}

// GetSession returns the current state of a session
func (s *GameServer) GetSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	sess, err := s.getSession(req.SessionID)
	if err != nil {
		return nil, err
	}
	return sessionToMessage(sess, sess.Game()), nil
}

// Play places the next mark. Moves the game ignores still succeed and return
// the unchanged session.
func (s *GameServer) Play(ctx context.Context, req *PlayRequest) (*Session, error) {
	sess, err := s.getSession(req.SessionID)
	if err != nil {
		return nil, err
	}

	var applied bool
	g := sess.Update(s.now(), func(g game.Game) game.Game {
		next := g.Play(int(req.Cell))
		applied = next.Board() != g.Board()
		return next
	})

	if applied {
		s.metrics.Moves.WithLabelValues(moveApplied).Inc()
	} else {
		s.metrics.Moves.WithLabelValues(moveIgnored).Inc()
		s.logger.Debug().
			Str("session_id", sess.ID).
			Int32("cell", req.Cell).
			Str("status", g.Status().String()).
			Msg("move ignored")
	}

	return sessionToMessage(sess, g), nil
}

// JumpTo moves a session to a recorded step; out-of-range steps are ignored
func (s *GameServer) JumpTo(ctx context.Context, req *JumpToRequest) (*Session, error) {
	sess, err := s.getSession(req.SessionID)
	if err != nil {
		return nil, err
	}

	g := sess.Update(s.now(), func(g game.Game) game.Game {
		return g.JumpTo(int(req.Step))
	})
	s.metrics.Jumps.Inc()

	return sessionToMessage(sess, g), nil
}

// ToggleOrder flips the move list order of a session
func (s *GameServer) ToggleOrder(ctx context.Context, req *SessionRequest) (*Session, error) {
	sess, err := s.getSession(req.SessionID)
	if err != nil {
		return nil, err
	}

	g := sess.Update(s.now(), game.Game.ToggleOrder)
	return sessionToMessage(sess, g), nil
}

// DeleteSession ends a session
func (s *GameServer) DeleteSession(ctx context.Context, req *SessionRequest) (*emptypb.Empty, error) {
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	if err := s.sessions.Delete(req.SessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, status.Error(codes.NotFound, "session not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete session: %v", err)
	}

	s.metrics.ActiveSessions.Dec()
	s.logger.Info().Str("session_id", req.SessionID).Msg("session deleted")

	return &emptypb.Empty{}, nil
}

// ExpireSessions removes sessions idle for longer than ttl
func (s *GameServer) ExpireSessions(ttl time.Duration) int {
	expired := s.sessions.Expire(s.now(), ttl)
	for _, id := range expired {
		s.logger.Info().Str("session_id", id).Msg("session expired")
	}

	s.metrics.SessionsExpired.Add(float64(len(expired)))
	s.metrics.ActiveSessions.Sub(float64(len(expired)))
	return len(expired)
}

// RunJanitor expires idle sessions every interval until ctx is done.
// A non-positive interval disables expiry.
func (s *GameServer) RunJanitor(ctx context.Context, interval, ttl time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.ExpireSessions(ttl)
		case <-ctx.Done():
			return
		}
	}
}

// getSession looks up a session and maps store errors to gRPC status errors
func (s *GameServer) getSession(id string) (*store.Session, error) {
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, status.Error(codes.NotFound, "session not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get session: %v", err)
	}

	return sess, nil
}
