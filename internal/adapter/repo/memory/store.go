package memory

import (
	"sync"

	"furrow/internal/domain/farmer"
)

// Store backs every memory repository. Repositories do not lock; callers go
// through TxManager, which holds mu for the whole transaction.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*farmer.Session
	events   map[string][]farmer.DomainEvent
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*farmer.Session),
		events:   make(map[string][]farmer.DomainEvent),
	}
}

func (s *Store) SeedSession(session *farmer.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
}
