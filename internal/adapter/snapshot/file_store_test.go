package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
)

var _ ports.SnapshotStore = (*FileStore)(nil)

type calmDice struct{}

func (calmDice) Float64() float64 { return 0.99 }
func (calmDice) IntN(n int) int   { return 0 }

func newArchivedWorld(id string) *survival.WorldState {
	return survival.NewWorldState(id, 11, calmDice{}, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestFileStore_RoundTripPreservesWorld(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state := newArchivedWorld("w-1")
	state.Version = 3
	state.Clock.Tick = 42
	state.Fireplace.State = survival.FireBurning
	state.Fireplace.Fuel = 5
	state.Player.Inventory.Add(survival.ItemFirewood, 4)
	state.Player.Skills.Improve("woodcutting", 150)

	if _, err := store.Write(ctx, state); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := store.Read(ctx, "w-1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ID != "w-1" || got.Version != 3 || got.Clock.Tick != 42 {
		t.Fatalf("expected w-1 v3 tick 42, got id=%s v=%d tick=%d", got.ID, got.Version, got.Clock.Tick)
	}
	if got.Fireplace.State != survival.FireBurning || got.Fireplace.Fuel != 5 {
		t.Fatalf("expected burning fire with fuel 5, got %+v", got.Fireplace)
	}
	if n := got.Player.Inventory.Count(survival.ItemFirewood); n != 4 {
		t.Fatalf("expected 4 firewood, got %d", n)
	}
	want := state.Player.Skills.Get("woodcutting")
	have := got.Player.Skills.Get("woodcutting")
	if have.Level != want.Level || have.XP != want.XP {
		t.Fatalf("expected skill %+v to survive archiving, got %+v", want, have)
	}
	if len(got.Wildlife) != len(state.Wildlife) {
		t.Fatalf("expected %d animals, got %d", len(state.Wildlife), len(got.Wildlife))
	}
}

func TestFileStore_ReadPicksNewestArchive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state := newArchivedWorld("w-1")
	state.Version = 1
	if _, err := store.Write(ctx, state); err != nil {
		t.Fatalf("write first: %v", err)
	}
	state.Version = 4
	state.Clock.Tick = 50
	if _, err := store.Write(ctx, state); err != nil {
		t.Fatalf("write second: %v", err)
	}

	got, err := store.Read(ctx, "w-1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Clock.Tick != 50 || got.Version != 4 {
		t.Fatalf("expected the tick-50 archive, got tick=%d v=%d", got.Clock.Tick, got.Version)
	}
}

func TestFileStore_ReadUnknownWorldIsNotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Read(context.Background(), "never-archived"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_WriteReturnsPathUnderRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ref, err := store.Write(context.Background(), newArchivedWorld("w-1"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if ref != filepath.Join("w-1", "000000000000.snap") {
		t.Fatalf("expected tick-named ref, got %q", ref)
	}
	if _, err := os.Stat(filepath.Join(root, ref)); err != nil {
		t.Fatalf("expected archive on disk at ref: %v", err)
	}
}
