package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"emberside/internal/app/ports"
)

type ActionExecutionRepo struct {
	db *sql.DB
}

func NewActionExecutionRepo(db *sql.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, worldID, key string) (*ports.ActionExecutionRecord, error) {
	q := getQuerier(ctx, r.db)
	var (
		rec ports.ActionExecutionRecord
		raw []byte
	)
	row := q.QueryRowContext(ctx,
		`SELECT world_id, idempotency_key, action_kind, result, applied_at
		 FROM action_executions WHERE world_id = ? AND idempotency_key = ?`,
		worldID, key)
	if err := row.Scan(&rec.WorldID, &rec.IdempotencyKey, &rec.ActionKind, &raw, &rec.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &rec.Result); err != nil {
		return nil, fmt.Errorf("decode execution %s/%s: %w", worldID, key, err)
	}
	return &rec, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	raw, err := json.Marshal(execution.Result)
	if err != nil {
		return fmt.Errorf("encode execution %s/%s: %w", execution.WorldID, execution.IdempotencyKey, err)
	}
	q := getQuerier(ctx, r.db)
	_, err = q.ExecContext(ctx,
		`INSERT INTO action_executions (world_id, idempotency_key, action_kind, result, applied_at)
		 VALUES (?, ?, ?, ?, ?)`,
		execution.WorldID, execution.IdempotencyKey, execution.ActionKind, raw, execution.AppliedAt)
	return err
}
