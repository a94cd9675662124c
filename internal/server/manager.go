package server

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Manager owns the live games.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*Session
	maxGames int
}

// NewManager creates a manager holding at most maxGames games; 0 means no
// limit.
func NewManager(maxGames int) *Manager {
	return &Manager{
		games:    make(map[string]*Session),
		maxGames: maxGames,
	}
}

// Create starts a game from start and returns it.
func (m *Manager) Create(start engine.Position) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		return nil, errors.ErrGameLimit
	}
	s := newSession(uuid.NewString(), start)
	m.games[s.ID] = s
	return s, nil
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "%q", id)
	}
	return s, nil
}

// Delete removes a game. It reports whether the game existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.games[id]
	delete(m.games, id)
	return ok
}

// IDs returns the ids of all games in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// Len returns the number of games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
