package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

// WorldRepo keeps the aggregate as one JSON document per world, with the
// version in its own column so the compare-and-swap never parses JSON.
type WorldRepo struct {
	db *sql.DB
}

func NewWorldRepo(db *sql.DB) WorldRepo {
	return WorldRepo{db: db}
}

func (r WorldRepo) Get(ctx context.Context, worldID string) (*survival.WorldState, error) {
	q := getQuerier(ctx, r.db)
	var (
		doc     []byte
		version int64
	)
	row := q.QueryRowContext(ctx,
		`SELECT doc, version FROM world_states WHERE world_id = ?`, worldID)
	if err := row.Scan(&doc, &version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var state survival.WorldState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("decode world %s: %w", worldID, err)
	}
	// The column is authoritative when doc and column disagree.
	state.Version = version
	return &state, nil
}

func (r WorldRepo) SaveWithVersion(ctx context.Context, state *survival.WorldState, expectedVersion int64) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode world %s: %w", state.ID, err)
	}
	q := getQuerier(ctx, r.db)
	if expectedVersion == 0 {
		_, err := q.ExecContext(ctx,
			`INSERT INTO world_states (world_id, doc, version, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			state.ID, doc, state.Version, state.CreatedAt, state.UpdatedAt)
		return err
	}
	res, err := q.ExecContext(ctx,
		`UPDATE world_states SET doc = ?, version = ?, updated_at = ?
		 WHERE world_id = ? AND version = ?`,
		doc, state.Version, state.UpdatedAt, state.ID, expectedVersion)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ports.ErrConflict
	}
	return nil
}
