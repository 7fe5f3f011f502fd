package stateview

import (
	"testing"
	"time"

	"emberside/internal/domain/survival"
)

// quietDice fails every chance roll and picks the first option, which
// keeps a freshly seeded world deterministic.
type quietDice struct{}

func (quietDice) Float64() float64 { return 0.99 }
func (quietDice) IntN(int) int     { return 0 }

func newTestWorld(t *testing.T) *survival.WorldState {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return survival.NewWorldState("w-view", 7, quietDice{}, now)
}

func TestDerive_FreshWorld(t *testing.T) {
	s := newTestWorld(t)

	view := Derive(s)

	if view.WorldID != "w-view" || view.Day != 1 || view.Phase != "morning" {
		t.Fatalf("unexpected header: %+v", view)
	}
	if view.Clock != "Day 1 08:00" {
		t.Fatalf("unexpected clock label %q", view.Clock)
	}
	if view.Location.Place != "the cabin's main room" {
		t.Fatalf("unexpected place %q", view.Location.Place)
	}
	if view.Fire.Lit || view.Fire.Label != "cold and empty" {
		t.Fatalf("expected a cold hearth, got %+v", view.Fire)
	}
	if len(view.Pack.Items) != 0 || view.Pack.MaxWeight != survival.MaxCarryWeight {
		t.Fatalf("expected an empty pack, got %+v", view.Pack)
	}
	if len(view.Skills) != len(survival.KnownSkills) {
		t.Fatalf("expected %d skill lines, got %d", len(survival.KnownSkills), len(view.Skills))
	}
	for _, line := range view.Skills {
		if line.Level != survival.SkillSeedLevel || line.ToNext != survival.XPToNext(survival.SkillSeedLevel) {
			t.Fatalf("unexpected skill line %+v", line)
		}
	}
	if len(view.Effects) != 0 {
		t.Fatalf("a fresh morning has no status effects, got %v", view.Effects)
	}
	if view.Dead || view.Project != nil {
		t.Fatalf("fresh world should be alive with no project")
	}
}

func TestDerive_StatusEffects(t *testing.T) {
	s := newTestWorld(t)
	s.Player.Vitals.Warmth = 12
	s.Player.Vitals.Fullness = 8
	s.Player.Vitals.Hydration = 5
	s.Player.Vitals.Energy = 15
	s.Player.Vitals.Health = 10
	s.Clock.Hour = 23

	view := Derive(s)

	want := []string{"FREEZING", "STARVING", "PARCHED", "EXHAUSTED", "CRITICAL", "IN_DARK"}
	if len(view.Effects) != len(want) {
		t.Fatalf("expected %v, got %v", want, view.Effects)
	}
	for i := range want {
		if view.Effects[i] != want[i] {
			t.Fatalf("effect %d: expected %s, got %s", i, want[i], view.Effects[i])
		}
	}
}

func TestDerive_ProjectAndDeath(t *testing.T) {
	s := newTestWorld(t)
	bp, ok := survival.StartBlueprint(survival.RecipeCordage)
	if !ok {
		t.Fatalf("start blueprint failed")
	}
	bp.AddMaterial(survival.ItemPlantFiber, 1)
	s.Player.Project = bp
	s.MarkDead(survival.DeathCauseInjury)

	view := Derive(s)

	if view.Project == nil || view.Project.Recipe != "cordage" {
		t.Fatalf("expected an open cordage project, got %+v", view.Project)
	}
	if len(view.Project.Missing) != 1 || view.Project.Missing[0] != "plant fiber x2" {
		t.Fatalf("unexpected missing list %v", view.Project.Missing)
	}
	if !view.Dead || view.DeathCause != "injury" {
		t.Fatalf("expected a dead view, got %+v", view)
	}
}
