package score

import (
	"context"
	"sync"
)

// MemoryStore keeps the high score in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore creates a memory store seeded with an initial score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

func (s *MemoryStore) Load(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

func (s *MemoryStore) Save(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = score
	s.saves++
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var _ Store = (*MemoryStore)(nil)
