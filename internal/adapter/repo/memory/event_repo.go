package memory

import (
	"context"

	"emberside/internal/domain/survival"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, worldID string, events []survival.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	unlock := func() {}
	if !inTx(ctx) {
		r.store.mu.Lock()
		unlock = r.store.mu.Unlock
	}
	defer unlock()
	r.store.events[worldID] = append(r.store.events[worldID], events...)
	return nil
}

// ListByWorldID returns events oldest first. A positive limit keeps the
// most recent entries.
func (r EventRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]survival.DomainEvent, error) {
	unlock := r.store.lockRead(ctx)
	defer unlock()
	evts := r.store.events[worldID]
	if limit > 0 && len(evts) > limit {
		evts = evts[len(evts)-limit:]
	}
	out := make([]survival.DomainEvent, len(evts))
	copy(out, evts)
	return out, nil
}
