package ports

import (
	"context"

	"furrow/internal/domain/farmer"
)

// SessionRepository stores live sessions. Get returns a private copy; the
// caller saves it back with the version it loaded.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*farmer.Session, error)
	SaveWithVersion(ctx context.Context, session *farmer.Session, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, sessionID string, events []farmer.DomainEvent) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]farmer.DomainEvent, error)
}

// EventPublisher pushes committed events to live subscribers.
type EventPublisher interface {
	Publish(sessionID string, events []farmer.DomainEvent)
}

// DayArchive keeps one record per completed day rollover.
type DayArchive interface {
	RecordDay(ctx context.Context, sessionID string, report farmer.DayReport) error
}
