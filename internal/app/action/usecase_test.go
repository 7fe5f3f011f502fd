package action

import (
	"context"
	"errors"
	"testing"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

func TestUseCase_Execute_SettlesInstantAction(t *testing.T) {
	h := newHarness(newTestState("w-1"))

	resp, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionTake, Item: "kindling", Count: 1},
	})
	if err != nil {
		t.Fatalf("expected settle, got %v", err)
	}
	if resp.Outcome.Kind != survival.OutcomeSuccess {
		t.Fatalf("expected success outcome, got %q", resp.Outcome.Kind)
	}
	if resp.Outcome.Text != "You take the kindling from the shelf." {
		t.Fatalf("unexpected outcome text %q", resp.Outcome.Text)
	}
	if resp.TicksAdvanced != 0 {
		t.Fatalf("expected instant action, got %d ticks", resp.TicksAdvanced)
	}
	if h.worlds.saves != 1 {
		t.Fatalf("expected one save, got %d", h.worlds.saves)
	}
	if h.worlds.lastExpected != 1 {
		t.Fatalf("expected CAS against version 1, got %d", h.worlds.lastExpected)
	}
	if got := h.worlds.states["w-1"].Version; got != 2 {
		t.Fatalf("expected version bump to 2, got %d", got)
	}
	if len(h.metrics.settled) != 1 || h.metrics.settled[0] != survival.OutcomeSuccess {
		t.Fatalf("expected settled metric, got %v", h.metrics.settled)
	}
	if len(h.pub.worlds) != 1 || h.pub.worlds[0] != "w-1" {
		t.Fatalf("expected one published frame for w-1, got %v", h.pub.worlds)
	}
	if resp.State.WorldID != "w-1" {
		t.Fatalf("expected view for w-1, got %q", resp.State.WorldID)
	}
}

func TestUseCase_Execute_AppendsSettledEvent(t *testing.T) {
	h := newHarness(newTestState("w-1"))

	_, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionTake, Item: "kindling", Count: 1},
	})
	if err != nil {
		t.Fatalf("expected settle, got %v", err)
	}
	evts := h.events.byWorld["w-1"]
	if len(evts) != 1 {
		t.Fatalf("expected one appended event, got %d", len(evts))
	}
	if evts[0].Type != survival.EventActionSettled {
		t.Fatalf("expected action_settled, got %q", evts[0].Type)
	}
	if evts[0].Payload["world_id"] != "w-1" {
		t.Fatalf("expected world_id stamp, got %v", evts[0].Payload["world_id"])
	}
	if evts[0].Payload["kind"] != "take" {
		t.Fatalf("expected kind take, got %v", evts[0].Payload["kind"])
	}
	rec, err := h.actions.GetByIdempotencyKey(context.Background(), "w-1", "key-1")
	if err != nil {
		t.Fatalf("expected recorded execution, got %v", err)
	}
	if rec.ActionKind != "take" {
		t.Fatalf("expected recorded kind take, got %q", rec.ActionKind)
	}
}

func TestUseCase_Execute_TimedActionAdvancesClock(t *testing.T) {
	h := newHarness(newTestState("w-1"))
	energyBefore := h.worlds.states["w-1"].Player.Vitals.Energy

	resp, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionWait, Ticks: 3},
	})
	if err != nil {
		t.Fatalf("expected settle, got %v", err)
	}
	if resp.Outcome.Kind != survival.OutcomeTimed {
		t.Fatalf("expected timed outcome, got %q", resp.Outcome.Kind)
	}
	if resp.TicksAdvanced != 3 {
		t.Fatalf("expected 3 ticks, got %d", resp.TicksAdvanced)
	}
	state := h.worlds.states["w-1"]
	if state.Clock.Tick != 3 {
		t.Fatalf("expected clock at tick 3, got %d", state.Clock.Tick)
	}
	if state.Player.Vitals.Energy >= energyBefore {
		t.Fatalf("expected energy drain, got %.1f -> %.1f", energyBefore, state.Player.Vitals.Energy)
	}
	if resp.State.Tick != 3 {
		t.Fatalf("expected view at tick 3, got %d", resp.State.Tick)
	}
}

func TestUseCase_Execute_ReplayReturnsRecordedResult(t *testing.T) {
	h := newHarness(newTestState("w-1"))
	record := ports.ActionExecutionRecord{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		ActionKind:     "wait",
		Result: ports.ActionResult{
			Outcome:       survival.Timed("Time passes quietly.", 5, 0),
			TicksAdvanced: 5,
		},
		AppliedAt: fixedNow(),
	}
	if err := h.actions.SaveExecution(context.Background(), record); err != nil {
		t.Fatalf("seed execution: %v", err)
	}

	resp, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionWait, Ticks: 5},
	})
	if err != nil {
		t.Fatalf("expected replay, got %v", err)
	}
	if !resp.Replayed {
		t.Fatalf("expected replayed response")
	}
	if resp.TicksAdvanced != 5 {
		t.Fatalf("expected recorded 5 ticks, got %d", resp.TicksAdvanced)
	}
	if resp.Outcome.Text != "Time passes quietly." {
		t.Fatalf("unexpected replayed text %q", resp.Outcome.Text)
	}
	if h.worlds.saves != 0 {
		t.Fatalf("expected no save on replay, got %d", h.worlds.saves)
	}
	if got := h.worlds.states["w-1"].Clock.Tick; got != 0 {
		t.Fatalf("expected clock untouched on replay, got tick %d", got)
	}
	if len(h.pub.worlds) != 0 {
		t.Fatalf("expected no frame on replay, got %v", h.pub.worlds)
	}
	if len(h.metrics.settled) != 0 {
		t.Fatalf("a replay must not count as a settle, got %v", h.metrics.settled)
	}
}

func TestUseCase_Execute_VersionConflict(t *testing.T) {
	h := newHarness(newTestState("w-1"))
	h.worlds.saveErr = ports.ErrConflict

	_, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionWait},
	})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if h.metrics.conflicts != 1 {
		t.Fatalf("expected one conflict metric, got %d", h.metrics.conflicts)
	}
	if len(h.metrics.settled) != 0 {
		t.Fatalf("expected no settled metric, got %v", h.metrics.settled)
	}
	if len(h.pub.worlds) != 0 {
		t.Fatalf("expected no frame on conflict, got %v", h.pub.worlds)
	}
}

func TestUseCase_Execute_RejectsInvalidRequest(t *testing.T) {
	h := newHarness(newTestState("w-1"))
	cases := []Request{
		{WorldID: "", IdempotencyKey: "k", Intent: survival.ActionIntent{Kind: survival.ActionWait}},
		{WorldID: "w-1", IdempotencyKey: "  ", Intent: survival.ActionIntent{Kind: survival.ActionWait}},
		{WorldID: "w-1", IdempotencyKey: "k", Intent: survival.ActionIntent{Kind: " "}},
	}
	for i, req := range cases {
		if _, err := h.uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("case %d: expected ErrInvalidRequest, got %v", i, err)
		}
	}
	if h.worlds.saves != 0 {
		t.Fatalf("expected no saves, got %d", h.worlds.saves)
	}
}

func TestUseCase_Execute_UnknownWorld(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-missing",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: survival.ActionWait},
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if h.metrics.failures != 1 {
		t.Fatalf("expected one failure metric, got %d", h.metrics.failures)
	}
}

func TestUseCase_Execute_FailedOutcomeStillSettles(t *testing.T) {
	h := newHarness(newTestState("w-1"))

	resp, err := h.uc.Execute(context.Background(), Request{
		WorldID:        "w-1",
		IdempotencyKey: "key-1",
		Intent:         survival.ActionIntent{Kind: "dance"},
	})
	if err != nil {
		t.Fatalf("expected failure to settle, got %v", err)
	}
	if resp.Outcome.Kind != survival.OutcomeFailure {
		t.Fatalf("expected failure outcome, got %q", resp.Outcome.Kind)
	}
	if resp.Outcome.Text != "You don't know how to dance." {
		t.Fatalf("unexpected text %q", resp.Outcome.Text)
	}
	if h.worlds.saves != 1 {
		t.Fatalf("expected failure to persist, got %d saves", h.worlds.saves)
	}
	if len(h.metrics.settled) != 1 || h.metrics.settled[0] != survival.OutcomeFailure {
		t.Fatalf("expected failure settled metric, got %v", h.metrics.settled)
	}
}

func TestUseCase_Execute_VersionChainsAcrossActions(t *testing.T) {
	h := newHarness(newTestState("w-1"))

	for i, key := range []string{"key-1", "key-2"} {
		_, err := h.uc.Execute(context.Background(), Request{
			WorldID:        "w-1",
			IdempotencyKey: key,
			Intent:         survival.ActionIntent{Kind: survival.ActionWait},
		})
		if err != nil {
			t.Fatalf("action %d: %v", i, err)
		}
	}
	if h.worlds.lastExpected != 2 {
		t.Fatalf("expected second CAS against version 2, got %d", h.worlds.lastExpected)
	}
	if got := h.worlds.states["w-1"].Version; got != 3 {
		t.Fatalf("expected version 3 after two actions, got %d", got)
	}
}
