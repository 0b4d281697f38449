package storage

import (
	"context"
	"sync"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
)

// Memory is the in-process tier of the two-tier persistence model: every
// write lands here unconditionally, so reads stay consistent even while the
// durable store is unreachable. Entries are partitioned by username, so
// concurrent users touch disjoint keys; the mutex only guards map access.
type Memory struct {
	mu       sync.RWMutex
	users    map[string]models.User
	progress map[string]map[string]models.SubjectProgress // username -> subject -> progress
	decks    map[string]map[string]models.Deck            // username -> deck name -> deck
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		progress: make(map[string]map[string]models.SubjectProgress),
		decks:    make(map[string]map[string]models.Deck),
	}
}

func (m *Memory) GetUser(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[user.Username] = *user
	return nil
}

func (m *Memory) GetProgress(_ context.Context, username, subject string) (*models.SubjectProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.progress[username][subject]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) ListProgress(_ context.Context, username string) (map[string]models.SubjectProgress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]models.SubjectProgress, len(m.progress[username]))
	for subject, p := range m.progress[username] {
		out[subject] = p
	}
	return out, nil
}

func (m *Memory) PutProgress(_ context.Context, progress models.SubjectProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.progress[progress.Username] == nil {
		m.progress[progress.Username] = make(map[string]models.SubjectProgress)
	}
	m.progress[progress.Username][progress.Subject] = progress
	return nil
}

func (m *Memory) ListDecks(_ context.Context, username string) (map[string]models.Deck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]models.Deck, len(m.decks[username]))
	for name, deck := range m.decks[username] {
		out[name] = deck
	}
	return out, nil
}

func (m *Memory) PutDeck(_ context.Context, deck models.Deck) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.decks[deck.Username] == nil {
		m.decks[deck.Username] = make(map[string]models.Deck)
	}
	m.decks[deck.Username][deck.Name] = deck
	return nil
}

func (m *Memory) DeleteDeck(_ context.Context, username, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.decks[username][name]; !ok {
		return false, nil
	}
	delete(m.decks[username], name)
	return true, nil
}
