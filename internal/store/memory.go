package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
)

// MemoryStore is an in-memory implementation of the user and shortener
// repositories. Used by unit tests and the memory storage backend.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]*user.User          // id -> user
	emails map[string]string              // email -> id
	urls   map[string]*shortener.ShortURL // code -> record
	seq    map[string]int64               // code -> insertion order, tie-break for equal timestamps
	nextID int64
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*user.User),
		emails: make(map[string]string),
		urls:   make(map[string]*shortener.ShortURL),
		seq:    make(map[string]int64),
	}
}

func (m *MemoryStore) Create(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[u.Email]; taken {
		return user.ErrEmailTaken
	}

	clone := *u
	m.users[u.ID] = &clone
	m.emails[u.Email] = u.ID

	return nil
}

func (m *MemoryStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[email]
	if !ok {
		return nil, user.ErrNotFound
	}

	clone := *m.users[id]

	return &clone, nil
}

func (m *MemoryStore) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.urls[shortURL.ShortCode]; exists {
		return shortener.ErrConflict
	}

	clone := *shortURL
	m.urls[shortURL.ShortCode] = &clone
	m.nextID++
	m.seq[shortURL.ShortCode] = m.nextID

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code string) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shortURL, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	clone := *shortURL

	return &clone, nil
}

func (m *MemoryStore) CodeExists(_ context.Context, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.urls[code]

	return exists, nil
}

func (m *MemoryStore) ListByCreator(_ context.Context, creatorID string, skip, limit int) ([]*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := make([]*shortener.ShortURL, 0)

	for _, shortURL := range m.urls {
		if shortURL.CreatorID == creatorID {
			clone := *shortURL
			owned = append(owned, &clone)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return m.seq[owned[i].ShortCode] > m.seq[owned[j].ShortCode]
		}

		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if skip >= len(owned) {
		return []*shortener.ShortURL{}, nil
	}

	end := skip + limit
	if end > len(owned) {
		end = len(owned)
	}

	return owned[skip:end], nil
}

func (m *MemoryStore) CountByCreator(_ context.Context, creatorID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64

	for _, shortURL := range m.urls {
		if shortURL.CreatorID == creatorID {
			total++
		}
	}

	return total, nil
}

func (m *MemoryStore) IncrementClicks(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shortURL, ok := m.urls[code]
	if !ok {
		return shortener.ErrNotFound
	}

	shortURL.Clicks++

	return nil
}

func (m *MemoryStore) DeleteByCodeAndCreator(_ context.Context, code, creatorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shortURL, ok := m.urls[code]
	if !ok || shortURL.CreatorID != creatorID {
		return shortener.ErrNotFound
	}

	delete(m.urls, code)
	delete(m.seq, code)

	return nil
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Compile-time checks.
var (
	_ user.Repository      = (*MemoryStore)(nil)
	_ shortener.Repository = (*MemoryStore)(nil)
)
