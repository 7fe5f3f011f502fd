package action

import (
	"context"
	"time"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

type stubTx struct{}

func (stubTx) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type memWorldRepo struct {
	states       map[string]*survival.WorldState
	saveErr      error
	saves        int
	lastExpected int64
}

func newMemWorldRepo(states ...*survival.WorldState) *memWorldRepo {
	m := &memWorldRepo{states: map[string]*survival.WorldState{}}
	for _, s := range states {
		m.states[s.ID] = s
	}
	return m
}

func (m *memWorldRepo) Get(ctx context.Context, worldID string) (*survival.WorldState, error) {
	s, ok := m.states[worldID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return s, nil
}

func (m *memWorldRepo) SaveWithVersion(ctx context.Context, state *survival.WorldState, expectedVersion int64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.lastExpected = expectedVersion
	m.states[state.ID] = state
	return nil
}

type memActionRepo struct {
	records map[string]ports.ActionExecutionRecord
	saveErr error
}

func newMemActionRepo() *memActionRepo {
	return &memActionRepo{records: map[string]ports.ActionExecutionRecord{}}
}

func (m *memActionRepo) GetByIdempotencyKey(ctx context.Context, worldID, key string) (*ports.ActionExecutionRecord, error) {
	rec, ok := m.records[worldID+"/"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &rec, nil
}

func (m *memActionRepo) SaveExecution(ctx context.Context, record ports.ActionExecutionRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[record.WorldID+"/"+record.IdempotencyKey] = record
	return nil
}

type memEventRepo struct {
	byWorld map[string][]survival.DomainEvent
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{byWorld: map[string][]survival.DomainEvent{}}
}

func (m *memEventRepo) Append(ctx context.Context, worldID string, events []survival.DomainEvent) error {
	m.byWorld[worldID] = append(m.byWorld[worldID], events...)
	return nil
}

func (m *memEventRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]survival.DomainEvent, error) {
	evts := m.byWorld[worldID]
	if limit > 0 && len(evts) > limit {
		evts = evts[len(evts)-limit:]
	}
	return evts, nil
}

type spyMetrics struct {
	settled   []survival.OutcomeKind
	conflicts int
	failures  int
}

func (m *spyMetrics) RecordSettled(kind survival.OutcomeKind) {
	m.settled = append(m.settled, kind)
}

func (m *spyMetrics) RecordConflict() { m.conflicts++ }
func (m *spyMetrics) RecordFailure()  { m.failures++ }

type spyPublisher struct {
	worlds []string
	frames []any
}

func (p *spyPublisher) Publish(worldID string, frame any) {
	p.worlds = append(p.worlds, worldID)
	p.frames = append(p.frames, frame)
}

// quietDice keeps the weather calm and the wildlife still so tests can
// pin exact outcomes.
type quietDice struct{}

func (quietDice) Float64() float64 { return 0.99 }
func (quietDice) IntN(n int) int   { return 0 }

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestState(id string) *survival.WorldState {
	s := survival.NewWorldState(id, 7, quietDice{}, fixedNow())
	s.Version = 1
	return s
}

type harness struct {
	worlds  *memWorldRepo
	actions *memActionRepo
	events  *memEventRepo
	metrics *spyMetrics
	pub     *spyPublisher
	uc      UseCase
}

func newHarness(states ...*survival.WorldState) *harness {
	h := &harness{
		worlds:  newMemWorldRepo(states...),
		actions: newMemActionRepo(),
		events:  newMemEventRepo(),
		metrics: &spyMetrics{},
		pub:     &spyPublisher{},
	}
	h.uc = UseCase{
		TxManager:  stubTx{},
		WorldRepo:  h.worlds,
		ActionRepo: h.actions,
		EventRepo:  h.events,
		Metrics:    h.metrics,
		Publisher:  h.pub,
		Dice:       quietDice{},
		Now:        fixedNow,
	}
	return h
}
