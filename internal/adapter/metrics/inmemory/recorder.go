package inmemory

import (
	"sync"

	"emberside/internal/domain/survival"
)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSettled  uint64            `json:"action_settled"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
}

// Recorder counts settled actions by outcome kind plus the two ways an
// action can fail to settle at all.
type Recorder struct {
	mu        sync.Mutex
	settled   uint64
	conflict  uint64
	failure   uint64
	byOutcome map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordSettled(kind survival.OutcomeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settled++
	r.byOutcome[string(kind)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSettled:  r.settled,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.settled + r.conflict + r.failure,
		ByOutcome:      make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
