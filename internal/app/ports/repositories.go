package ports

import (
	"context"
	"time"

	"emberside/internal/domain/survival"
)

// ActionResult is the replayable part of a settled action. It is what
// an idempotent retry gets back without touching the world again.
type ActionResult struct {
	Outcome       survival.Outcome       `json:"outcome"`
	Events        []survival.DomainEvent `json:"events"`
	Messages      []string               `json:"messages,omitempty"`
	TicksAdvanced int                    `json:"ticks_advanced"`
}

// ActionExecutionRecord pins one idempotency key to the result it
// produced. Keys are scoped per world.
type ActionExecutionRecord struct {
	WorldID        string
	IdempotencyKey string
	ActionKind     string
	Result         ActionResult
	AppliedAt      time.Time
}

// WorldRepository stores the world aggregate. SaveWithVersion with
// expectedVersion 0 creates; otherwise it is a compare-and-swap on the
// version column and loses as ErrConflict.
type WorldRepository interface {
	Get(ctx context.Context, worldID string) (*survival.WorldState, error)
	SaveWithVersion(ctx context.Context, state *survival.WorldState, expectedVersion int64) error
}

type ActionExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, worldID, key string) (*ActionExecutionRecord, error)
	SaveExecution(ctx context.Context, execution ActionExecutionRecord) error
}

type EventRepository interface {
	Append(ctx context.Context, worldID string, events []survival.DomainEvent) error
	ListByWorldID(ctx context.Context, worldID string, limit int) ([]survival.DomainEvent, error)
}
