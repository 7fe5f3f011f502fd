package replay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByWorldID(ctx, req.WorldID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{
		WorldID: req.WorldID,
		Events:  events,
		Summary: summarize(events),
	}, nil
}

func filterByTimeWindow(events []survival.DomainEvent, from, to int64) []survival.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]survival.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// summarize folds the window into run totals. Payload values may arrive
// as native ints from the memory repo or as float64 after a JSON round
// trip, so everything numeric goes through num.
func summarize(events []survival.DomainEvent) JourneySummary {
	var s JourneySummary
	for _, evt := range events {
		switch evt.Type {
		case survival.EventActionSettled:
			s.ActionsSettled++
			s.TicksAdvanced += int(num(evt.Payload["ticks_advanced"]))
			if day := int(num(evt.Payload["day"])); day > s.LastDay {
				s.LastDay = day
			}
		case survival.EventFireDied:
			s.FiresDied++
		case survival.EventLevelUp:
			s.LevelUps = append(s.LevelUps,
				fmt.Sprintf("%v -> %d", evt.Payload["skill"], int(num(evt.Payload["level"]))))
		case survival.EventBlueprintCompleted:
			s.BlueprintsCompleted = append(s.BlueprintsCompleted, fmt.Sprint(evt.Payload["recipe"]))
		case survival.EventPlayerDied:
			s.Died = true
			s.DeathCause = fmt.Sprint(evt.Payload["cause"])
			if day := int(num(evt.Payload["day"])); day > s.LastDay {
				s.LastDay = day
			}
		}
	}
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
