package memory

import (
	"context"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
)

type SessionRepo struct {
	store *Store
}

func NewSessionRepo(store *Store) SessionRepo {
	return SessionRepo{store: store}
}

func (r SessionRepo) Get(_ context.Context, sessionID string) (*farmer.Session, error) {
	s, ok := r.store.sessions[sessionID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s.Clone(), nil
}

func (r SessionRepo) SaveWithVersion(_ context.Context, session *farmer.Session, expectedVersion int64) error {
	current, ok := r.store.sessions[session.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.sessions[session.ID] = session.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.sessions[session.ID] = session.Clone()
	return nil
}
