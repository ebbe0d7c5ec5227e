package store

import (
	"sync"

	"acctkeep/internal/domain"
)

// MemoryKV keeps values in process memory. Nothing survives the process.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Read returns the value stored under key.
func (s *MemoryKV) Read(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Write stores value under key.
func (s *MemoryKV) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Compile-time assertion that MemoryKV implements domain.KVStore.
var _ domain.KVStore = (*MemoryKV)(nil)
