package snapshot

import (
	"context"
	"errors"
	"strings"

	"emberside/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid snapshot request")

// UseCase exports a world to the archive on demand. The cadence-driven
// writes happen on the advance path; this is the operator's button.
type UseCase struct {
	WorldRepo ports.WorldRepository
	Store     ports.SnapshotStore
}

type ExportRequest struct {
	WorldID string
}

type ExportResponse struct {
	WorldID string `json:"world_id"`
	Ref     string `json:"ref"`
	Tick    int64  `json:"tick"`
	Version int64  `json:"version"`
}

func (u UseCase) Export(ctx context.Context, req ExportRequest) (ExportResponse, error) {
	req.WorldID = strings.TrimSpace(req.WorldID)
	if req.WorldID == "" {
		return ExportResponse{}, ErrInvalidRequest
	}
	state, err := u.WorldRepo.Get(ctx, req.WorldID)
	if err != nil {
		return ExportResponse{}, err
	}
	ref, err := u.Store.Write(ctx, state)
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{
		WorldID: state.ID,
		Ref:     ref,
		Tick:    state.Clock.Tick,
		Version: state.Version,
	}, nil
}
