package memory

import (
	"context"
	"encoding/json"
	"sync"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

// Store backs the local and test wiring. Worlds are held as encoded
// JSON so every Get hands out a private copy; sharing the live pointer
// with callers would let a rolled-back action leak half-applied state.
type Store struct {
	mu         sync.RWMutex
	worlds     map[string][]byte
	versions   map[string]int64
	executions map[string]ports.ActionExecutionRecord
	events     map[string][]survival.DomainEvent
}

func NewStore() *Store {
	return &Store{
		worlds:     make(map[string][]byte),
		versions:   make(map[string]int64),
		executions: make(map[string]ports.ActionExecutionRecord),
		events:     make(map[string][]survival.DomainEvent),
	}
}

func execKey(worldID, key string) string {
	return worldID + "::" + key
}

// SeedWorld stores a world directly, bypassing version checks. Boot
// code uses it to plant the demo world.
func (s *Store) SeedWorld(state *survival.WorldState) error {
	raw, err := encodeWorld(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worlds[state.ID] = raw
	s.versions[state.ID] = state.Version
	return nil
}

func encodeWorld(state *survival.WorldState) ([]byte, error) {
	return json.Marshal(state)
}

func decodeWorld(raw []byte) (*survival.WorldState, error) {
	var state survival.WorldState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

type txKey struct{}

func markTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// lockRead takes the read lock unless the caller already holds the
// write lock through RunInTx. The returned func is the unlock.
func (s *Store) lockRead(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
