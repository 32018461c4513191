package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"furrow/internal/adapter/repo/gorm/model"
	"furrow/internal/domain/farmer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepo is the postgres event journal. Rows are ordered by their
// sequence id, not by timestamp, since one action stamps all its events with
// the same time.
type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, sessionID string, events []farmer.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.FarmEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.FarmEvent{
			SessionID:  sessionID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]farmer.DomainEvent, error) {
	rows := []model.FarmEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.FarmEvent{SessionID: sessionID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]farmer.DomainEvent, len(rows))
	for i, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			if err := json.Unmarshal(row.Payload, &payload); err != nil {
				return nil, fmt.Errorf("decode event %d: %w", row.ID, err)
			}
		}
		// newest first from the query, oldest first out
		out[len(rows)-1-i] = farmer.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		}
	}
	return out, nil
}
