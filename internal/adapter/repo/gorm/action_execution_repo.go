package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"emberside/internal/app/ports"

	"gorm.io/gorm"
)

type ActionExecutionRepo struct {
	db *gorm.DB
}

func NewActionExecutionRepo(db *gorm.DB) ActionExecutionRepo {
	return ActionExecutionRepo{db: db}
}

func (r ActionExecutionRepo) GetByIdempotencyKey(ctx context.Context, worldID, key string) (*ports.ActionExecutionRecord, error) {
	var row ActionExecutionRow
	err := getDBFromCtx(ctx, r.db).
		Where(&ActionExecutionRow{WorldID: worldID, IdempotencyKey: key}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var result ports.ActionResult
	if err := json.Unmarshal(row.Result, &result); err != nil {
		return nil, fmt.Errorf("decode execution %s/%s: %w", worldID, key, err)
	}
	return &ports.ActionExecutionRecord{
		WorldID:        row.WorldID,
		IdempotencyKey: row.IdempotencyKey,
		ActionKind:     row.ActionKind,
		Result:         result,
		AppliedAt:      row.AppliedAt,
	}, nil
}

func (r ActionExecutionRepo) SaveExecution(ctx context.Context, execution ports.ActionExecutionRecord) error {
	resultJSON, err := json.Marshal(execution.Result)
	if err != nil {
		return fmt.Errorf("encode execution %s/%s: %w", execution.WorldID, execution.IdempotencyKey, err)
	}
	row := ActionExecutionRow{
		WorldID:        execution.WorldID,
		IdempotencyKey: execution.IdempotencyKey,
		ActionKind:     execution.ActionKind,
		Result:         resultJSON,
		AppliedAt:      execution.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}
