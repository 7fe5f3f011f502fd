package gormrepo

import (
	"context"
	"encoding/json"

	"emberside/internal/domain/survival"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, worldID string, events []survival.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]DomainEventRow, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, DomainEventRow{
			WorldID:    worldID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ListByWorldID returns events oldest first. A positive limit keeps the
// most recent entries, which is what the replay window wants.
func (r EventRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]survival.DomainEvent, error) {
	rows := []DomainEventRow{}
	query := getDBFromCtx(ctx, r.db).
		Where(&DomainEventRow{WorldID: worldID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]survival.DomainEvent, len(rows))
	for i, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		// Reverse back to chronological order.
		out[len(rows)-1-i] = survival.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		}
	}
	return out, nil
}
