package trainer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/fadedpez/basicstrategy/internal/randutil"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// GameFactory builds the game for a new session
type GameFactory func() *Game

// GameOptions controls how NewGameFactory builds shoes
type GameOptions struct {
	NumDecks int
	Rules    strategy.Ruleset
	// Seed makes shoes reproducible when HasSeed is set. Each new game
	// uses the next seed so sessions don't share a card sequence.
	Seed    uint64
	HasSeed bool
}

// NewGameFactory returns a factory dealing shuffled shoes per opts
func NewGameFactory(opts GameOptions) GameFactory {
	var games atomic.Uint64
	return func() *Game {
		var shoe *entities.Shoe
		if opts.HasSeed {
			n := games.Add(1) - 1
			shoe = entities.NewShoeWithRand(opts.NumDecks, randutil.New(opts.Seed+n))
		} else {
			shoe = entities.NewShoe(opts.NumDecks)
		}
		shoe.Shuffle()
		return NewGameWithShoe(shoe, opts.Rules)
	}
}

// Manager keeps the live sessions, addressable by id and by a caller key
// such as a Discord channel/user pair
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	keys     map[string]string

	newGame GameFactory
	repo    results.Repository
	clock   quartz.Clock
	logger  *log.Logger
}

// NewManager creates a session manager. repo may be nil.
func NewManager(newGame GameFactory, repo results.Repository, clock quartz.Clock, logger *log.Logger) *Manager {
	if newGame == nil {
		newGame = NewGame
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		keys:     make(map[string]string),
		newGame:  newGame,
		repo:     repo,
		clock:    clock,
		logger:   logger,
	}
}

// Create starts a new session for playerID under key, replacing any
// session the key already had. An empty key registers by id only.
func (m *Manager) Create(key, playerID string) *Session {
	session := NewSession(playerID, m.newGame(), m.repo, m.clock, m.logger.With("player", playerID))

	m.mu.Lock()
	defer m.mu.Unlock()

	if key != "" {
		if old, ok := m.keys[key]; ok {
			delete(m.sessions, old)
		}
		m.keys[key] = session.ID()
	}
	m.sessions[session.ID()] = session

	m.logger.Info("Session started", "session", session.ID(), "player", playerID, "key", key)
	return session
}

// GetOrCreate returns the session under key, creating one when the key is
// unknown or its shoe is finished. The bool reports whether it was created.
func (m *Manager) GetOrCreate(key, playerID string) (*Session, bool) {
	if session, err := m.GetByKey(key); err == nil && session.Snapshot().Mode == ModePlaying {
		return session, false
	}
	return m.Create(key, playerID), true
}

// Get returns a session by id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, types.NewGameError(types.ErrSessionNotFound, fmt.Sprintf("session %s not found", id))
	}
	return session, nil
}

// GetByKey returns the session registered under key
func (m *Manager) GetByKey(key string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.keys[key]
	if !ok {
		return nil, types.NewGameError(types.ErrSessionNotFound, fmt.Sprintf("no session for %s", key))
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, types.NewGameError(types.ErrSessionNotFound, fmt.Sprintf("no session for %s", key))
	}
	return session, nil
}

// Remove forgets a session and any key pointing at it
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	for key, sid := range m.keys {
		if sid == id {
			delete(m.keys, key)
		}
	}
}

// RemoveIdle drops sessions with no activity since before and returns
// how many went
func (m *Manager) RemoveIdle(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.LastActive().Before(before) {
			delete(m.sessions, id)
			removed++
		}
	}
	for key, id := range m.keys {
		if _, ok := m.sessions[id]; !ok {
			delete(m.keys, key)
		}
	}
	return removed
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
