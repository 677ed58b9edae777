package history

import (
	"context"
	"sync"
)

// Store keeps the answered questions of each chat.
type Store interface {
	// Add records an entry.
	Add(ctx context.Context, entry Entry) error
	// List returns up to limit entries for a chat, newest first. A limit of
	// zero or less returns everything.
	List(ctx context.Context, chatID int64, limit int) ([]Entry, error)
	// Clear removes all entries for a chat.
	Clear(ctx context.Context, chatID int64) error
	// Len returns the number of entries stored for a chat.
	Len(ctx context.Context, chatID int64) (int, error)
}

// chatLog represents the entries of a single chat, oldest first
type chatLog struct {
	entries []Entry
	mu      sync.Mutex
}

// MemoryStore keeps histories in process memory. Nothing survives a restart.
type MemoryStore struct {
	logs       map[int64]*chatLog // Map of chat ID to history
	maxEntries int
	mu         sync.RWMutex
}

// NewMemoryStore creates a store keeping at most maxEntries entries per chat,
// dropping the oldest first. Zero means unbounded.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		logs:       make(map[int64]*chatLog),
		maxEntries: maxEntries,
	}
}

// Add appends an entry to the chat's history
func (s *MemoryStore) Add(_ context.Context, entry Entry) error {
	s.mu.Lock()
	l, exists := s.logs[entry.ChatID]
	if !exists {
		l = &chatLog{}
		s.logs[entry.ChatID] = l
	}
	s.mu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if s.maxEntries > 0 && len(l.entries) > s.maxEntries {
		l.entries = append([]Entry(nil), l.entries[len(l.entries)-s.maxEntries:]...)
	}
	return nil
}

// List returns the most recent entries, newest first
func (s *MemoryStore) List(_ context.Context, chatID int64, limit int) ([]Entry, error) {
	s.mu.RLock()
	l, exists := s.logs[chatID]
	s.mu.RUnlock()
	if !exists {
		return []Entry{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}

// Clear clears the history for a chat
func (s *MemoryStore) Clear(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.logs, chatID)
	return nil
}

// Len returns the number of entries in a chat's history
func (s *MemoryStore) Len(_ context.Context, chatID int64) (int, error) {
	s.mu.RLock()
	l, exists := s.logs[chatID]
	s.mu.RUnlock()
	if !exists {
		return 0, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries), nil
}
