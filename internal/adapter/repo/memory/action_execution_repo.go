package memory

import (
	"context"

	"emberside/internal/app/ports"
)

type ActionExecutionRepo struct {
	store *Store
}

func NewActionExecutionRepo(store *Store) ActionExecutionRepo {
	return ActionExecutionRepo{store: store}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, worldID, key string) (*ports.ActionExecutionRecord, error) {
	unlock := r.store.lockRead(ctx)
	defer unlock()
	rec, ok := r.store.executions[execKey(worldID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	unlock := func() {}
	if !inTx(ctx) {
		r.store.mu.Lock()
		unlock = r.store.mu.Unlock
	}
	defer unlock()
	k := execKey(execution.WorldID, execution.IdempotencyKey)
	if _, exists := r.store.executions[k]; exists {
		return ports.ErrConflict
	}
	r.store.executions[k] = execution
	return nil
}
