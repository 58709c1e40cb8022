package dataservice

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps a thread-safe snapshot of cache entries in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get retrieves an entry by category key.
func (s *MemoryStore) Get(ctx context.Context, category string) (Entry, bool) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[category]
	return entry, ok
}

// Set replaces the entry for a category.
func (s *MemoryStore) Set(ctx context.Context, category string, entry Entry) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[category] = entry
}

// Clear removes all entries immediately.
func (s *MemoryStore) Clear(ctx context.Context) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
}

// Keys returns the category keys currently present, sorted.
func (s *MemoryStore) Keys(ctx context.Context) []string {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
