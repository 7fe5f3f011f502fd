package status

import (
	"context"
	"errors"
	"strings"

	"emberside/internal/app/ports"
	"emberside/internal/app/stateview"
)

var ErrInvalidRequest = errors.New("invalid status request")

// UseCase reads one world and derives the player-facing view. It never
// mutates state, so it runs outside the transaction manager.
type UseCase struct {
	WorldRepo ports.WorldRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.WorldRepo.Get(ctx, req.WorldID)
	if err != nil {
		return Response{}, err
	}
	view := stateview.Derive(state)
	return Response{
		State:       view,
		WarmthDrift: stateview.EstimateWarmthDrift(state.Player.Vitals, state.AmbientTemperature()),
	}, nil
}
