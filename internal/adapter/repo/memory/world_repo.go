package memory

import (
	"context"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

type WorldRepo struct {
	store *Store
}

func NewWorldRepo(store *Store) WorldRepo {
	return WorldRepo{store: store}
}

func (r WorldRepo) Get(ctx context.Context, worldID string) (*survival.WorldState, error) {
	unlock := r.store.lockRead(ctx)
	defer unlock()
	raw, ok := r.store.worlds[worldID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return decodeWorld(raw)
}

func (r WorldRepo) SaveWithVersion(ctx context.Context, state *survival.WorldState, expectedVersion int64) error {
	raw, err := encodeWorld(state)
	if err != nil {
		return err
	}
	unlock := func() {}
	if !inTx(ctx) {
		r.store.mu.Lock()
		unlock = r.store.mu.Unlock
	}
	defer unlock()

	current, exists := r.store.versions[state.ID]
	if !exists {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
	} else if current != expectedVersion {
		return ports.ErrConflict
	}
	r.store.worlds[state.ID] = raw
	r.store.versions[state.ID] = state.Version
	return nil
}
