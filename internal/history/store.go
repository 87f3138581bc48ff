// Package history provides the in-memory match history store.
package history

import (
	"context"
	"sync"

	"github.com/Reshigan/tradematch/internal/model"
)

// MemoryStore is an append-only, in-memory implementation of
// service.HistoryStore. It is the engine default and is explicitly
// volatile; use the storage package when durability is required.
type MemoryStore struct {
	byCounterparty map[string][]model.MatchHistoryEntry
	size           int
	mu             sync.RWMutex
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCounterparty: make(map[string][]model.MatchHistoryEntry),
	}
}

// Append adds an entry to the log.
func (s *MemoryStore) Append(_ context.Context, entry model.MatchHistoryEntry) error {
	key := model.NormalizeID(entry.CounterpartyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byCounterparty[key] = append(s.byCounterparty[key], entry)
	s.size++
	return nil
}

// ForCounterparty returns all entries recorded for the given counterparty,
// oldest first.
func (s *MemoryStore) ForCounterparty(_ context.Context, counterpartyID string) ([]model.MatchHistoryEntry, error) {
	key := model.NormalizeID(counterpartyID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.byCounterparty[key]
	out := make([]model.MatchHistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Size returns the total number of entries in the log.
func (s *MemoryStore) Size(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size, nil
}
