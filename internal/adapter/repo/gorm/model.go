package gormrepo

import "time"

// WorldStateRow persists the whole aggregate as one JSONB document.
// The version column mirrors the document's version field so the CAS
// update can run without parsing the doc.
type WorldStateRow struct {
	WorldID   string    `gorm:"column:world_id;primaryKey"`
	Doc       []byte    `gorm:"column:doc;type:jsonb;not null"`
	Version   int64     `gorm:"column:version;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (WorldStateRow) TableName() string { return "world_states" }

type ActionExecutionRow struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WorldID        string    `gorm:"column:world_id;not null"`
	IdempotencyKey string    `gorm:"column:idempotency_key;not null"`
	ActionKind     string    `gorm:"column:action_kind;not null"`
	Result         []byte    `gorm:"column:result;type:jsonb;not null"`
	AppliedAt      time.Time `gorm:"column:applied_at;not null"`
}

func (ActionExecutionRow) TableName() string { return "action_executions" }

type DomainEventRow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WorldID    string    `gorm:"column:world_id;not null"`
	Type       string    `gorm:"column:type;not null"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (DomainEventRow) TableName() string { return "domain_events" }
