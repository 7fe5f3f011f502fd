package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS world_states (
  world_id   TEXT PRIMARY KEY,
  doc        TEXT NOT NULL,
  version    INTEGER NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS action_executions (
  id              INTEGER PRIMARY KEY AUTOINCREMENT,
  world_id        TEXT NOT NULL,
  idempotency_key TEXT NOT NULL,
  action_kind     TEXT NOT NULL,
  result          TEXT NOT NULL,
  applied_at      TIMESTAMP NOT NULL,
  UNIQUE (world_id, idempotency_key)
);

CREATE TABLE IF NOT EXISTS domain_events (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  world_id    TEXT NOT NULL,
  type        TEXT NOT NULL,
  occurred_at TIMESTAMP NOT NULL,
  payload     TEXT
);

CREATE INDEX IF NOT EXISTS idx_domain_events_world
  ON domain_events (world_id, occurred_at);
`

// EnsureSchema creates the tables on first boot. The local database has
// no migration history; the schema is small enough to keep idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return nil
}
