package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"

	"gorm.io/gorm"
)

type WorldRepo struct {
	db *gorm.DB
}

func NewWorldRepo(db *gorm.DB) WorldRepo {
	return WorldRepo{db: db}
}

func (r WorldRepo) Get(ctx context.Context, worldID string) (*survival.WorldState, error) {
	var row WorldStateRow
	if err := getDBFromCtx(ctx, r.db).Where("world_id = ?", worldID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var state survival.WorldState
	if err := json.Unmarshal(row.Doc, &state); err != nil {
		return nil, fmt.Errorf("decode world %s: %w", worldID, err)
	}
	// The column is authoritative when doc and row disagree.
	state.Version = row.Version
	return &state, nil
}

// SaveWithVersion creates the row when expectedVersion is zero and
// otherwise compare-and-swaps on the version column. Zero matched rows
// means somebody else committed first.
func (r WorldRepo) SaveWithVersion(ctx context.Context, state *survival.WorldState, expectedVersion int64) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode world %s: %w", state.ID, err)
	}
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		row := WorldStateRow{
			WorldID:   state.ID,
			Doc:       doc,
			Version:   state.Version,
			CreatedAt: state.CreatedAt,
			UpdatedAt: state.UpdatedAt,
		}
		return db.Create(&row).Error
	}

	res := db.Model(&WorldStateRow{}).
		Where("world_id = ? AND version = ?", state.ID, expectedVersion).
		Updates(map[string]any{
			"doc":        doc,
			"version":    state.Version,
			"updated_at": state.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
