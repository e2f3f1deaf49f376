package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/store"
)

const defaultSessionTTL = 30 * time.Minute

type session struct {
	mu   sync.Mutex
	game *game.Game

	// guarded by sessions.mu
	refs     int
	lastUsed time.Time
	// keep is set under mu by the last request and read once refs drops to
	// zero
	keep bool
}

// sessions keeps the running games of active players in memory so their
// clocks keep running between requests. Every change is written through to
// the store, which is where a game is loaded from when its player is first
// seen. A game that is not running is dropped after each request; running
// games are dropped once unused for ttl.
type sessions struct {
	mu        sync.Mutex
	active    map[string]*session
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time

	store  store.Store
	logger *slog.Logger
	opts   []game.Option
}

func newSessions(s store.Store, logger *slog.Logger, opts ...game.Option) *sessions {
	return &sessions{
		active: make(map[string]*session),
		ttl:    defaultSessionTTL,
		now:    time.Now,
		store:  s,
		logger: logger,
		opts:   opts,
	}
}

func (s *sessions) persister(playerID string) *game.Persister {
	return &game.Persister{
		Store:  s.store,
		Prefix: playerID,
		Logger: s.logger.With(slog.String("player_id", playerID)),
	}
}

// sweep drops unused sessions idle for longer than ttl. Callers hold s.mu.
func (s *sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.ttl/2 {
		return
	}
	s.lastSweep = now
	for id, sess := range s.active {
		if sess.refs == 0 && now.Sub(sess.lastUsed) > s.ttl {
			delete(s.active, id)
		}
	}
}

func (s *sessions) acquire(playerID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(s.now())
	sess, ok := s.active[playerID]
	if !ok {
		sess = &session{}
		s.active[playerID] = sess
	}
	sess.refs++
	return sess
}

func (s *sessions) release(playerID string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.refs--
	sess.lastUsed = s.now()
	if sess.refs == 0 && !sess.keep {
		delete(s.active, playerID)
	}
}

// Len reports the number of sessions held in memory.
func (s *sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// With runs fn with exclusive access to the player's game and saves the game
// afterwards, whether fn succeeded or not.
func (s *sessions) With(
	ctx context.Context, playerID string, fn func(*game.Game, *game.Persister) error,
) error {
	sess := s.acquire(playerID)
	defer s.release(playerID, sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	p := s.persister(playerID)
	if sess.game == nil {
		opts := append([]game.Option{
			game.WithRand(createRand()),
			game.WithLogger(p.Logger),
		}, s.opts...)
		g, err := p.Load(ctx, opts...)
		if err != nil {
			sess.keep = false
			return fmt.Errorf("unable to load game: %w", err)
		}
		sess.game = g
	}

	fnErr := fn(sess.game, p)
	if err := p.Save(ctx, sess.game); err != nil {
		// the store is behind, keep the game in memory until a save succeeds
		sess.keep = true
		return errors.Join(fnErr, fmt.Errorf("unable to save game: %w", err))
	}
	sess.keep = sess.game.Status() == game.StatusRunning
	return fnErr
}
