package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNoSuchGame is returned when a game ID is unknown.
	ErrNoSuchGame = errors.New("no such game")

	// ErrAmbiguousID is returned when an ID prefix matches more than one game.
	ErrAmbiguousID = errors.New("ambiguous game ID")
)

// Manager keeps the sessions of all games hosted by this process.
type Manager struct {
	// sessions maps game IDs to sessions
	sessions map[uuid.UUID]*Session

	// order contains the game IDs in creation order
	order []uuid.UUID

	// mutex protects sessions and order
	mutex sync.Mutex
}

// NewManager creates a manager without any games.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new game and registers it.
func (m *Manager) Create() *Session {
	s := New()
	m.Add(s)
	return s
}

// Add registers an existing session.
func (m *Manager) Add(s *Session) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.sessions[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.sessions[s.ID] = s

	slog.Info("created game", "game", s.ID.String(), "games", len(m.sessions))
}

// Get looks up a session by ID.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchGame, id)
	}
	return s, nil
}

// Find looks up a session by full ID or by a unique prefix of its ID.
func (m *Manager) Find(ref string) (*Session, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return m.Get(id)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	ref = strings.ToLower(ref)

	var found *Session
	for _, id := range m.order {
		if ref == "" || !strings.HasPrefix(id.String(), ref) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
		}
		found = m.sessions[id]
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchGame, ref)
	}
	return found, nil
}

// Delete removes a session. Unknown IDs are ignored.
func (m *Manager) Delete(id uuid.UUID) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return
	}

	delete(m.sessions, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	slog.Info("deleted game", "game", id.String(), "games", len(m.sessions))
}

// List returns the IDs of all games in creation order.
func (m *Manager) List() []uuid.UUID {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return append([]uuid.UUID{}, m.order...)
}

// Len returns the number of games.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.sessions)
}
