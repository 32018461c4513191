package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"furrow/internal/app/ports"
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

func TestSessionRepo_ReturnsPrivateCopies(t *testing.T) {
	store := NewStore()
	store.SeedSession(&farmer.Session{ID: "s1", Grid: world.NewGrid(2, 2, world.TileSoil), Player: farmer.Player{Inventory: map[string]int{}}})
	repo := NewSessionRepo(store)
	ctx := context.Background()

	s, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	s.Player.AddItem("wood", 3)
	s.Grid.SetTile(world.Cell{}, world.TileWater)

	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 0, again.Player.Count("wood"))
	require.Equal(t, world.TileSoil, again.Grid.Tile(world.Cell{}))
}

func TestSessionRepo_OptimisticVersion(t *testing.T) {
	repo := NewSessionRepo(NewStore())
	ctx := context.Background()

	s := &farmer.Session{ID: "s1", Version: 1}
	require.NoError(t, repo.SaveWithVersion(ctx, s, 0))
	require.ErrorIs(t, repo.SaveWithVersion(ctx, &farmer.Session{ID: "s2"}, 4), ports.ErrConflict)

	loaded, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	loaded.Version = 2
	require.NoError(t, repo.SaveWithVersion(ctx, loaded, 1))
	require.ErrorIs(t, repo.SaveWithVersion(ctx, loaded, 1), ports.ErrConflict)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestEventRepo_ListKeepsNewestInOrder(t *testing.T) {
	repo := NewEventRepo(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, "s1", []farmer.DomainEvent{{Type: "a"}, {Type: "b"}, {Type: "c"}}))
	require.NoError(t, repo.Append(ctx, "s2", []farmer.DomainEvent{{Type: "other"}}))

	got, err := repo.ListBySessionID(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Type)
	require.Equal(t, "c", got[1].Type)

	all, err := repo.ListBySessionID(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestTxManager_SerializesCalls(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	ran := false
	require.NoError(t, tx.RunInTx(context.Background(), func(context.Context) error {
		ran = !store.mu.TryLock()
		return nil
	}))
	require.True(t, ran)
}

func TestTxManager_RunsInnerTransaction(t *testing.T) {
	inner := &recordingTx{}
	tx := NewTxManager(NewStore()).Within(inner)
	calls := 0
	require.NoError(t, tx.RunInTx(context.Background(), func(context.Context) error {
		calls++
		return nil
	}))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, inner.calls)
}

type recordingTx struct {
	calls int
}

func (r *recordingTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}
