package action

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

var ErrInvalidRequest = errors.New("invalid action request")

// UseCase settles exactly one intent against one world. Resolution and
// the ticks a timed action consumes commit in a single transaction, so
// a version conflict rolls everything back including the clock.
type UseCase struct {
	TxManager  ports.TxManager
	WorldRepo  ports.WorldRepository
	ActionRepo ports.ActionExecutionRepository
	EventRepo  ports.EventRepository
	Metrics    ports.ActionMetrics
	Publisher  ports.StatePublisher
	Resolver   survival.ResolverService
	Ticker     survival.TickService
	Dice       world.Dice
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.WorldID = strings.TrimSpace(req.WorldID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Intent.Kind = survival.ActionKind(strings.TrimSpace(string(req.Intent.Kind)))
	if req.WorldID == "" || req.IdempotencyKey == "" || req.Intent.Kind == "" {
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
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.ActionRepo.GetByIdempotencyKey(txCtx, req.WorldID, req.IdempotencyKey)
		if err == nil && exec != nil {
			state, err := u.WorldRepo.Get(txCtx, req.WorldID)
			if err != nil {
				return err
			}
			out = Response{
				WorldID:       req.WorldID,
				Outcome:       exec.Result.Outcome,
				TicksAdvanced: exec.Result.TicksAdvanced,
				Events:        exec.Result.Events,
				Messages:      exec.Result.Messages,
				State:         stateview.Derive(state),
				Replayed:      true,
			}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.WorldRepo.Get(txCtx, req.WorldID)
		if err != nil {
			return err
		}
		expected := state.Version
		tickBefore := state.Clock.Tick

		now := nowFn()
		res, err := u.Resolver.Resolve(state, req.Intent, dice, now)
		if err != nil {
			return err
		}

		events := res.Events
		var messages []string
		if res.Outcome.Kind == survival.OutcomeTimed {
			tickRes := u.Ticker.AdvanceBy(state, res.Outcome.TickCost, dice, now)
			events = append(events, tickRes.Events...)
			messages = tickRes.Messages
			state.Player.Vitals.AddEnergy(-res.Outcome.EnergyCost)
		}
		ticks := int(state.Clock.Tick - tickBefore)

		events = append(events, survival.DomainEvent{
			Type:       survival.EventActionSettled,
			OccurredAt: now,
			Payload: map[string]any{
				"kind":           string(req.Intent.Kind),
				"outcome":        string(res.Outcome.Kind),
				"text":           res.Outcome.Text,
				"ticks_advanced": ticks,
				"tick_before":    tickBefore,
				"tick_after":     state.Clock.Tick,
				"day":            state.Clock.Day,
			},
		})
		for i := range events {
			if events[i].Payload == nil {
				events[i].Payload = map[string]any{}
			}
			events[i].Payload["world_id"] = req.WorldID
		}

		state.Version++
		state.Touch(now)
		if err := u.WorldRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}

		execution := ports.ActionExecutionRecord{
			WorldID:        req.WorldID,
			IdempotencyKey: req.IdempotencyKey,
			ActionKind:     string(req.Intent.Kind),
			Result: ports.ActionResult{
				Outcome:       res.Outcome,
				Events:        events,
				Messages:      messages,
				TicksAdvanced: ticks,
			},
			AppliedAt: now,
		}
		if err := u.ActionRepo.SaveExecution(txCtx, execution); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.WorldID, events); err != nil {
			return err
		}

		out = Response{
			WorldID:       req.WorldID,
			Outcome:       res.Outcome,
			TicksAdvanced: ticks,
			Events:        events,
			Messages:      messages,
			State:         stateview.Derive(state),
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil && !out.Replayed {
		u.Metrics.RecordSettled(out.Outcome.Kind)
	}
	if u.Publisher != nil && !out.Replayed {
		u.Publisher.Publish(req.WorldID, stateview.FrameOf(out.State))
	}
	return out, nil
}
