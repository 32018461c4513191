package gormrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"furrow/internal/domain/farmer"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("FARM_DB_DSN")
	if dsn == "" {
		t.Skip("FARM_DB_DSN is required for integration test")
	}
	return dsn
}

func TestEventRepo_RoundTripKeepsOrder(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = ApplyMigrations(ctx, db, filepath.Join("..", "..", "..", "..", "db", "migrations"))
	require.NoError(t, err)

	sessionID := "it-events-roundtrip"
	require.NoError(t, db.Exec("DELETE FROM farm_events WHERE session_id = ?", sessionID).Error)

	repo := NewEventRepo(db)
	at := time.Unix(1700000000, 0).UTC()
	require.NoError(t, repo.Append(ctx, sessionID, []farmer.DomainEvent{
		{Type: farmer.EventActionResolved, OccurredAt: at, Payload: map[string]any{"kind": "till"}},
		{Type: farmer.EventTileChanged, OccurredAt: at, Payload: map[string]any{"row": 3, "col": 4}},
		{Type: farmer.EventDayStarted, OccurredAt: at, Payload: map[string]any{"day": 2}},
	}))

	got, err := repo.ListBySessionID(ctx, sessionID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, farmer.EventTileChanged, got[0].Type)
	require.Equal(t, float64(4), got[0].Payload["col"])
	require.Equal(t, farmer.EventDayStarted, got[1].Type)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = ApplyMigrations(ctx, db, filepath.Join("..", "..", "..", "..", "db", "migrations"))
	require.NoError(t, err)

	sessionID := "it-events-rollback"
	require.NoError(t, db.Exec("DELETE FROM farm_events WHERE session_id = ?", sessionID).Error)

	repo := NewEventRepo(db)
	boom := context.Canceled
	err = NewTxManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.Append(txCtx, sessionID, []farmer.DomainEvent{{Type: "x", OccurredAt: time.Now()}}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.ListBySessionID(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}
