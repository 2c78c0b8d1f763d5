package history

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/chatbot/core/chat"
)

type memoryStore struct {
	sessions map[string][]chat.Exchange
	mu       sync.RWMutex
}

// NewMemoryStore creates a Store backed by an in-memory map. State lives
// for the process lifetime and is lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string][]chat.Exchange)}
}

func (s *memoryStore) Append(_ context.Context, sessionID string, exchange chat.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], exchange)
	return nil
}

func (s *memoryStore) Get(_ context.Context, sessionID string) ([]chat.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exchanges, exists := s.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	copied := make([]chat.Exchange, len(exchanges))
	copy(copied, exchanges)
	return copied, nil
}

func (s *memoryStore) Sessions(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
