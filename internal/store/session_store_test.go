package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe/internal/game"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSessionStore_CreateGet(t *testing.T) {
	store := NewSessionStore(4)

	sess := NewSession("session-1", epoch)

	// Create
	err := store.Create(sess)
	require.NoError(t, err)

	// Get
	retrieved, err := store.Get("session-1")
	require.NoError(t, err)
	assert.Same(t, sess, retrieved)

	// Create duplicate
	err = store.Create(sess)
	assert.ErrorIs(t, err, ErrSessionAlreadyExists)
}

func TestSessionStore_GetNotFound(t *testing.T) {
	store := NewSessionStore(4)

	_, err := store.Get("nonexistent")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(4)

	store.Create(NewSession("session-1", epoch))

	err := store.Delete("session-1")
	require.NoError(t, err)

	_, err = store.Get("session-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Delete again
	err = store.Delete("session-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_DefaultShards(t *testing.T) {
	store := NewSessionStore(0)
	assert.Len(t, store.shards, 64)
}

func TestSessionStore_Expire(t *testing.T) {
	store := NewSessionStore(4)

	stale := NewSession("stale", epoch)
	fresh := NewSession("fresh", epoch)
	store.Create(stale)
	store.Create(fresh)

	// Touching a session resets its idle clock.
	fresh.Update(epoch.Add(20*time.Minute), func(g game.Game) game.Game { return g.Play(4) })

	expired := store.Expire(epoch.Add(31*time.Minute), 30*time.Minute)
	assert.Equal(t, []string{"stale"}, expired)
	assert.Equal(t, 1, store.Count())

	_, err := store.Get("fresh")
	assert.NoError(t, err)

	assert.Empty(t, store.Expire(epoch.Add(31*time.Minute), 30*time.Minute))
}

func TestSessionStore_Count(t *testing.T) {
	store := NewSessionStore(4)

	assert.Equal(t, 0, store.Count())

	store.Create(NewSession("session-1", epoch))
	store.Create(NewSession("session-2", epoch))

	assert.Equal(t, 2, store.Count())
}

func TestSession_Update(t *testing.T) {
	sess := NewSession("session-1", epoch)
	assert.Equal(t, 0, sess.Game().Step())

	later := epoch.Add(time.Minute)
	g := sess.Update(later, func(g game.Game) game.Game { return g.Play(0) })

	assert.Equal(t, 1, g.Step())
	assert.Equal(t, g.Board(), sess.Game().Board())
	assert.Equal(t, later, sess.IdleSince())
	assert.Equal(t, epoch, sess.CreatedAt)
}

func TestSessionStore_Concurrent(t *testing.T) {
	store := NewSessionStore(4)
	var wg sync.WaitGroup

	// Concurrent creates
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			store.Create(NewSession(fmt.Sprintf("session-%d", id), epoch))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, store.Count())

	// Concurrent moves on one session are serialized
	sess, err := store.Get("session-0")
	require.NoError(t, err)
	for i := 0; i < game.BoardCells; i++ {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			sess.Update(epoch, func(g game.Game) game.Game { return g.Play(cell) })
		}(i)
	}
	wg.Wait()

	// Every move went through unless a line was completed first.
	g := sess.Game()
	assert.Equal(t, g.Len()-1, g.Step())
	if g.Status().Outcome != game.OutcomeWon {
		assert.Equal(t, game.BoardCells, g.Step())
	}
}
