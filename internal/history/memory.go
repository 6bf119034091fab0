package history

import (
	"context"
	"sync"

	"AuctionBidder/internal/model"
)

// MemoryStore holds histories in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	rounds map[string][]model.RoundResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rounds: make(map[string][]model.RoundResult)}
}

func (m *MemoryStore) Append(_ context.Context, bidderID string, result model.RoundResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[bidderID] = append(m.rounds[bidderID], result)
	return nil
}

// History returns a copy so callers cannot rewrite stored rounds.
func (m *MemoryStore) History(_ context.Context, bidderID string) ([]model.RoundResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.rounds[bidderID]
	out := make([]model.RoundResult, len(src))
	copy(out, src)
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
