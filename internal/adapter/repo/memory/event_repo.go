package memory

import (
	"context"

	"furrow/internal/domain/farmer"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, sessionID string, events []farmer.DomainEvent) error {
	r.store.events[sessionID] = append(r.store.events[sessionID], events...)
	return nil
}

// ListBySessionID returns the newest limit events, oldest first.
func (r EventRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]farmer.DomainEvent, error) {
	all := r.store.events[sessionID]
	start := 0
	if limit > 0 && limit < len(all) {
		start = len(all) - limit
	}
	out := make([]farmer.DomainEvent, len(all)-start)
	copy(out, all[start:])
	return out, nil
}
