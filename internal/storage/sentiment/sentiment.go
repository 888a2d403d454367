package storage_sentiment

import (
	"sync"

	"github.com/humanbelnik/screenlens/core/internal/model"
)

// Storage is the in-process fallback for the sentiment cache when no
// Redis is configured. Guarded because the HTTP server multiplexes
// the session; entries live until the process exits.
type Storage struct {
	mu      sync.RWMutex
	entries map[string]model.SentimentResult
}

func New() *Storage {
	return &Storage{
		entries: make(map[string]model.SentimentResult),
	}
}

func (s *Storage) Get(genre string) (model.SentimentResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.entries[genre]
	return res, ok, nil
}

func (s *Storage) Set(genre string, res model.SentimentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[genre] = res
	return nil
}
