package survival

import (
	"testing"
	"time"

	"emberside/internal/domain/world"
)

func TestTickService_AdvanceMovesClockAndBody(t *testing.T) {
	s := testState()
	later := testNow.Add(time.Minute)

	res := TickService{}.Advance(s, &scriptDice{}, later)

	if s.Clock.Tick != 1 || s.Clock.Minute != 10 {
		t.Fatalf("expected one ten-minute tick, got %v", s.Clock)
	}
	// A cold cabin eases warmth toward the indoor target.
	if !almost(s.Player.Vitals.Warmth, 48.6) {
		t.Fatalf("expected warmth 48.6, got %v", s.Player.Vitals.Warmth)
	}
	if s.Player.Vitals.Mood != 70.5 {
		t.Fatalf("expected comfortable mood drift to 70.5, got %v", s.Player.Vitals.Mood)
	}
	if !s.UpdatedAt.Equal(later) {
		t.Fatalf("expected the aggregate touched, got %v", s.UpdatedAt)
	}
	if len(res.Events) != 0 || len(res.Messages) != 0 {
		t.Fatalf("expected a quiet tick, got %+v", res)
	}
}

func TestTickService_AdvanceReportsFireDeath(t *testing.T) {
	s := testState()
	s.Fireplace = Fireplace{State: FireSmoldering, Fuel: 1}

	res := TickService{}.Advance(s, &scriptDice{}, testNow)

	if s.Fireplace.State != FireCold {
		t.Fatalf("expected the fire dead, got %s", s.Fireplace.State)
	}
	if len(res.Events) != 1 || res.Events[0].Type != EventFireDied {
		t.Fatalf("expected a fire_died event, got %+v", res.Events)
	}
	if len(res.Messages) != 1 || res.Messages[0] != FireDiedMessage {
		t.Fatalf("expected the fire death message, got %v", res.Messages)
	}
	// The fire burns down before the body adjusts, so this tick's easing
	// already pulls toward the fireless room.
	if !almost(s.Player.Vitals.Warmth, 48.6) {
		t.Fatalf("expected warmth eased toward the cold room, got %v", s.Player.Vitals.Warmth)
	}
}

func TestTickService_NoPassiveStarvation(t *testing.T) {
	s := testState()
	TickService{}.AdvanceBy(s, 10, &scriptDice{}, testNow)

	if s.Clock.Tick != 10 {
		t.Fatalf("expected ten ticks, got %d", s.Clock.Tick)
	}
	v := s.Player.Vitals
	if v.Fullness != StartFullness || v.Hydration != StartHydration || v.Energy != StartEnergy {
		t.Fatalf("idle time must not starve the survivor, got %+v", v)
	}
}

func TestTickService_WeatherResamplesOnSchedule(t *testing.T) {
	s := testState()
	s.Clock.Tick = 9
	d := &scriptDice{floats: []float64{0.1}, ints: []int{2}}

	TickService{}.Advance(s, d, testNow)

	if s.Weather.North != world.ConditionOvercast {
		t.Fatalf("expected the north cell re-rolled to overcast, got %s", s.Weather.North)
	}
	if s.Weather.South != world.ConditionClear || s.Weather.East != world.ConditionClear {
		t.Fatalf("expected the other cells untouched, got %+v", s.Weather)
	}

	fresh := testState()
	TickService{}.Advance(fresh, &scriptDice{floats: []float64{0.1}, ints: []int{2}}, testNow)
	if fresh.Weather.North != world.ConditionClear {
		t.Fatalf("off-schedule ticks must not resample, got %s", fresh.Weather.North)
	}
}

func TestTickService_TreesGrowAndRespawn(t *testing.T) {
	s := testState()
	s.Trees = []world.Tree{world.NewTree(world.Position{Row: 10, Col: 0}, world.TreeApple)}
	d := &scriptDice{floats: []float64{0.1}, ints: []int{5, 20, 0}}

	TickService{}.Advance(s, d, testNow)

	if s.Trees[0].FruitCount != 1 {
		t.Fatalf("expected one apple ripened, got %d", s.Trees[0].FruitCount)
	}
	if len(s.Trees) != 2 {
		t.Fatalf("expected a sparse field to respawn a tree, got %d", len(s.Trees))
	}
	if s.Trees[1].Position != (world.Position{Row: -10, Col: 5}) {
		t.Fatalf("unexpected respawn position %v", s.Trees[1].Position)
	}
}

func TestTickService_CollapseEndsTheRun(t *testing.T) {
	s := testState()
	s.Player.Vitals.Health = 0

	res := TickService{}.AdvanceBy(s, 5, &scriptDice{}, testNow)

	if !s.Player.Dead || s.Player.DeathCause != DeathCauseInjury {
		t.Fatalf("expected death by injury, got %+v", s.Player)
	}
	if s.Clock.Tick != 1 {
		t.Fatalf("ticking should stop at death, got tick %d", s.Clock.Tick)
	}
	died := 0
	for _, e := range res.Events {
		if e.Type == EventPlayerDied {
			died++
			if e.Payload["cause"] != "injury" {
				t.Fatalf("unexpected payload %+v", e.Payload)
			}
		}
	}
	if died != 1 {
		t.Fatalf("expected exactly one player_died event, got %d", died)
	}
}
