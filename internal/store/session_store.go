package store

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// SessionStore provides thread-safe storage for sessions
// Uses sharding to reduce lock contention for scalability
type SessionStore struct {
	shards    []*sessionShard
	numShards int
}

type sessionShard struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates a new session store with the specified number of shards
func NewSessionStore(numShards int) *SessionStore {
	if numShards < 1 {
		numShards = 64
	}

	shards := make([]*sessionShard, numShards)
	for i := range shards {
		shards[i] = &sessionShard{
			sessions: make(map[string]*Session),
		}
	}

	return &SessionStore{
		shards:    shards,
		numShards: numShards,
	}
}

// getShard returns the shard for a given session ID
func (s *SessionStore) getShard(id string) *sessionShard {
	hash := uint32(0)
	for _, c := range id {
		hash = hash*31 + uint32(c)
	}
	return s.shards[hash%uint32(s.numShards)]
}

// Create stores a new session
func (s *SessionStore) Create(sess *Session) error {
	shard := s.getShard(sess.ID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, exists := shard.sessions[sess.ID]; exists {
		return ErrSessionAlreadyExists
	}

	shard.sessions[sess.ID] = sess
	return nil
}

// Get retrieves a session by ID
func (s *SessionStore) Get(id string) (*Session, error) {
	shard := s.getShard(id)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	sess, exists := shard.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}

	return sess, nil
}

// Delete removes a session by ID
func (s *SessionStore) Delete(id string) error {
	shard := s.getShard(id)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, exists := shard.sessions[id]; !exists {
		return ErrSessionNotFound
	}

	delete(shard.sessions, id)
	return nil
}

// Expire removes sessions not updated within ttl of now and returns their IDs
func (s *SessionStore) Expire(now time.Time, ttl time.Duration) []string {
	var expired []string
	cutoff := now.Add(-ttl)

	for _, shard := range s.shards {
		shard.mu.Lock()
		for id, sess := range shard.sessions {
			if sess.IdleSince().Before(cutoff) {
				delete(shard.sessions, id)
				expired = append(expired, id)
			}
		}
		shard.mu.Unlock()
	}

	return expired
}

// Count returns the total number of sessions
func (s *SessionStore) Count() int {
	count := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		count += len(shard.sessions)
		shard.mu.RUnlock()
	}
	return count
}
