package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"emberside/internal/domain/survival"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, worldID string, events []survival.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	q := getQuerier(ctx, r.db)
	for _, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", ev.Type, err)
		}
		if _, err := q.ExecContext(ctx,
			`INSERT INTO domain_events (world_id, type, occurred_at, payload)
			 VALUES (?, ?, ?, ?)`,
			worldID, ev.Type, ev.OccurredAt, payload); err != nil {
			return err
		}
	}
	return nil
}

// ListByWorldID returns events oldest first. A positive limit keeps the
// most recent entries; zero or negative returns everything.
func (r EventRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]survival.DomainEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	q := getQuerier(ctx, r.db)
	rows, err := q.QueryContext(ctx,
		`SELECT type, occurred_at, payload FROM domain_events
		 WHERE world_id = ? ORDER BY occurred_at DESC, id DESC LIMIT ?`,
		worldID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []survival.DomainEvent
	for rows.Next() {
		var (
			ev  survival.DomainEvent
			raw []byte
		)
		if err := rows.Scan(&ev.Type, &ev.OccurredAt, &raw); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &ev.Payload); err != nil {
				return nil, fmt.Errorf("decode event %s: %w", ev.Type, err)
			}
		}
		recent = append(recent, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]survival.DomainEvent, len(recent))
	for i, ev := range recent {
		out[len(recent)-1-i] = ev
	}
	return out, nil
}
