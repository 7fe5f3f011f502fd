package ports

import (
	"context"

	"emberside/internal/domain/survival"
)

// SnapshotStore archives whole worlds outside the database. Write
// returns where the archive landed so operators can find it.
type SnapshotStore interface {
	Write(ctx context.Context, state *survival.WorldState) (string, error)
	Read(ctx context.Context, worldID string) (*survival.WorldState, error)
}
