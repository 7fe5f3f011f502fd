package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

func TestUseCase_SummarizesRun(t *testing.T) {
	repo := fakeRepo{events: []survival.DomainEvent{
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(10, 0), Payload: map[string]any{"kind": "light_fire", "ticks_advanced": 0, "day": 1}},
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(20, 0), Payload: map[string]any{"kind": "chop_wood", "ticks_advanced": 6, "day": 1}},
		{Type: survival.EventLevelUp, OccurredAt: time.Unix(21, 0), Payload: map[string]any{"skill": "woodcutting", "level": 11, "gained": 1}},
		{Type: survival.EventFireDied, OccurredAt: time.Unix(30, 0), Payload: map[string]any{"tick": int64(40)}},
		{Type: survival.EventBlueprintCompleted, OccurredAt: time.Unix(40, 0), Payload: map[string]any{"recipe": "cordage", "output": "cordage"}},
		{Type: survival.EventPlayerDied, OccurredAt: time.Unix(50, 0), Payload: map[string]any{"cause": "exposure", "day": 3, "tick": int64(300)}},
	}}

	uc := UseCase{Events: repo}
	out, err := uc.Execute(context.Background(), Request{WorldID: "w-1", Limit: 100})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Summary.ActionsSettled != 2 {
		t.Fatalf("expected 2 settled actions, got %d", out.Summary.ActionsSettled)
	}
	if out.Summary.TicksAdvanced != 6 {
		t.Fatalf("expected 6 ticks advanced, got %d", out.Summary.TicksAdvanced)
	}
	if out.Summary.FiresDied != 1 {
		t.Fatalf("expected 1 dead fire, got %d", out.Summary.FiresDied)
	}
	if len(out.Summary.LevelUps) != 1 || out.Summary.LevelUps[0] != "woodcutting -> 11" {
		t.Fatalf("unexpected level ups %v", out.Summary.LevelUps)
	}
	if len(out.Summary.BlueprintsCompleted) != 1 || out.Summary.BlueprintsCompleted[0] != "cordage" {
		t.Fatalf("unexpected blueprints %v", out.Summary.BlueprintsCompleted)
	}
	if !out.Summary.Died || out.Summary.DeathCause != "exposure" {
		t.Fatalf("expected death by exposure, got %+v", out.Summary)
	}
	if out.Summary.LastDay != 3 {
		t.Fatalf("expected last day 3, got %d", out.Summary.LastDay)
	}
}

func TestUseCase_SummaryHandlesJSONNumbers(t *testing.T) {
	repo := fakeRepo{events: []survival.DomainEvent{
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(10, 0), Payload: map[string]any{"ticks_advanced": 8.0, "day": 2.0}},
	}}

	uc := UseCase{Events: repo}
	out, err := uc.Execute(context.Background(), Request{WorldID: "w-1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Summary.TicksAdvanced != 8 || out.Summary.LastDay != 2 {
		t.Fatalf("expected float payloads folded, got %+v", out.Summary)
	}
}

func TestUseCase_FiltersByTimeWindow(t *testing.T) {
	repo := fakeRepo{events: []survival.DomainEvent{
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(10, 0), Payload: map[string]any{}},
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(20, 0), Payload: map[string]any{}},
		{Type: survival.EventActionSettled, OccurredAt: time.Unix(30, 0), Payload: map[string]any{}},
	}}

	uc := UseCase{Events: repo}
	out, err := uc.Execute(context.Background(), Request{WorldID: "w-1", OccurredFrom: 15, OccurredTo: 25})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("expected 1 event in window, got %d", len(out.Events))
	}
	if out.Events[0].OccurredAt.Unix() != 20 {
		t.Fatalf("expected the middle event, got %v", out.Events[0].OccurredAt)
	}
}

func TestUseCase_RejectsEmptyWorldID(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{WorldID: " "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("events down")
	uc := UseCase{Events: fakeRepo{err: wantErr}}
	if _, err := uc.Execute(context.Background(), Request{WorldID: "w-1"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

type fakeRepo struct {
	events []survival.DomainEvent
	err    error
}

func (r fakeRepo) Append(_ context.Context, _ string, _ []survival.DomainEvent) error {
	return nil
}

func (r fakeRepo) ListByWorldID(_ context.Context, _ string, _ int) ([]survival.DomainEvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.events, nil
}

var _ ports.EventRepository = fakeRepo{}
