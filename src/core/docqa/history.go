package docqa

import (
	"context"
	"sync"
)

// memoryHistoryStore keeps session history in process memory. History is
// explicit per-session state, so concurrent sessions never share a log,
// and it is not persisted across restarts.
type memoryHistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]ChatMessage
}

func NewMemoryHistoryStore() HistoryStore {
	return &memoryHistoryStore{
		sessions: make(map[string][]ChatMessage),
	}
}

func (s *memoryHistoryStore) Append(ctx context.Context, msg *ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[msg.SessionID] = append(s.sessions[msg.SessionID], *msg)
	return nil
}

func (s *memoryHistoryStore) List(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.sessions[sessionID]
	out := make([]ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}
