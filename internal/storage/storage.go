// Package storage holds the single-key string stores workouts are persisted in.
package storage

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("store is closed")

// Store is a string key-value store.
type Store interface {
	// Get reports ok=false when key has never been set.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
