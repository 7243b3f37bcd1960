// Package memory is in-process implementation of storage interface.
package memory

import (
	"context"
	"sync"

	"github.com/socialspark/spark/internal/storage"
)

type mem struct {
	mu sync.RWMutex
	m  map[string]string
}

// New creates new empty in-memory storage. Nothing survives the process.
func New() storage.Storage {
	return &mem{
		m: map[string]string{},
	}
}

func (s *mem) Load(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return "", storage.ErrNotFound
	}

	return v, nil
}

func (s *mem) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()

	return nil
}

func (s *mem) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()

	return nil
}

func (s *mem) Ping(_ context.Context) error {
	return nil
}
