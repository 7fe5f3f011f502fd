package advance

import (
	"context"
	"errors"
	"strings"
	"time"

	"emberside/internal/app/ports"
	"emberside/internal/app/stateview"
	"emberside/internal/domain/survival"
	"emberside/internal/domain/world"
)

// MaxTicksPerAdvance caps one request at a full day so a stray client
// cannot fast-forward a world into the ground in a single call.
const MaxTicksPerAdvance = 144

var ErrInvalidRequest = errors.New("invalid advance request")

// UseCase moves a world forward by whole ticks without settling any
// intent. The loop stops early when the player dies, so the response
// reports the ticks actually consumed.
type UseCase struct {
	TxManager ports.TxManager
	WorldRepo ports.WorldRepository
	EventRepo ports.EventRepository
	Publisher ports.StatePublisher
	Snapshots ports.SnapshotStore
	// SnapshotEveryTicks archives the world whenever the clock crosses
	// a multiple of the cadence. Zero disables the archive.
	SnapshotEveryTicks int64
	Ticker             survival.TickService
	Dice               world.Dice
	Now                func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.WorldID = strings.TrimSpace(req.WorldID)
	if req.WorldID == "" || req.Ticks < 1 || req.Ticks > MaxTicksPerAdvance {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	dice := u.Dice
	if dice == nil {
		dice = world.SeededDice(uint64(nowFn().UnixNano()))
	}

	var out Response
	var state *survival.WorldState
	var tickBefore int64
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		state, err = u.WorldRepo.Get(txCtx, req.WorldID)
		if err != nil {
			return err
		}
		expected := state.Version
		tickBefore = state.Clock.Tick

		now := nowFn()
		res := u.Ticker.AdvanceBy(state, req.Ticks, dice, now)
		for i := range res.Events {
			if res.Events[i].Payload == nil {
				res.Events[i].Payload = map[string]any{}
			}
			res.Events[i].Payload["world_id"] = req.WorldID
		}

		state.Version++
		state.Touch(now)
		if err := u.WorldRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.WorldID, res.Events); err != nil {
			return err
		}

		out = Response{
			WorldID:        req.WorldID,
			TicksRequested: req.Ticks,
			TicksAdvanced:  int(state.Clock.Tick - tickBefore),
			Events:         res.Events,
			Messages:       res.Messages,
			State:          stateview.Derive(state),
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Publisher != nil {
		u.Publisher.Publish(req.WorldID, stateview.FrameOf(out.State))
	}
	if u.Snapshots != nil && u.SnapshotEveryTicks > 0 &&
		tickBefore/u.SnapshotEveryTicks != state.Clock.Tick/u.SnapshotEveryTicks {
		// Best effort. The manual export endpoint surfaces archive errors.
		if ref, err := u.Snapshots.Write(ctx, state); err == nil {
			out.SnapshotRef = ref
		}
	}
	return out, nil
}
