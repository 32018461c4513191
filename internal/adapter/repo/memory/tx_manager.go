package memory

import (
	"context"

	"furrow/internal/app/ports"
)

type TxManager struct {
	store *Store
	inner ports.TxManager
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// Within runs inner inside the store lock. Session writes are not rolled
// back when inner fails, so callers save the session last.
func (t TxManager) Within(inner ports.TxManager) TxManager {
	t.inner = inner
	return t
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.inner != nil {
		return t.inner.RunInTx(ctx, fn)
	}
	return fn(ctx)
}
