package survival

import (
	"testing"

	"emberside/internal/domain/world"
)

func TestNewWorldState_WakesInTheCabin(t *testing.T) {
	s := NewWorldState("w1", 7, &scriptDice{}, testNow)

	if s.ID != "w1" || s.Seed != 7 {
		t.Fatalf("identity not carried: %s seed %d", s.ID, s.Seed)
	}
	if s.Clock.Day != 1 || s.Clock.Phase() != world.PhaseMorning {
		t.Fatalf("expected the morning of day one, got %v", s.Clock)
	}
	if !s.Player.Location.InRoom(RoomCabinMain) {
		t.Fatalf("expected the survivor in the cabin, got %+v", s.Player.Location)
	}
	if !s.Player.Inventory.Empty() || s.Player.Inventory.MaxWeight != MaxCarryWeight {
		t.Fatalf("expected an empty pack with the standard limit")
	}
	if s.Fireplace.Lit() || s.Fireplace.Fuel != 0 {
		t.Fatalf("expected a cold empty fireplace")
	}
	if s.Shed.Logs != StartShedLogs || !s.Shed.AxeOnFloor {
		t.Fatalf("expected %d logs and the axe in the shed, got %+v", StartShedLogs, s.Shed)
	}
	for _, item := range []ItemID{ItemMatchbox, ItemTeaCup, ItemWoolBlanket, ItemKettle, ItemWildHerbs} {
		if !s.CabinShelf.Has(item, 1) {
			t.Fatalf("expected %s on the shelf", item)
		}
	}
	if s.CabinShelf.Count(ItemKindling) != 2 {
		t.Fatalf("expected 2 kindling on the shelf, got %d", s.CabinShelf.Count(ItemKindling))
	}
	if len(s.Wildlife) != 40 {
		t.Fatalf("expected 40 animals, got %d", len(s.Wildlife))
	}
	if s.Weather.North != world.ConditionClear || s.Weather.West != world.ConditionClear {
		t.Fatalf("expected calm starting weather, got %+v", s.Weather)
	}
}

func TestNewWorldState_PlantsTheBambooGroveAndField(t *testing.T) {
	s := NewWorldState("w1", 7, &scriptDice{}, testNow)
	for _, p := range []world.Position{{Row: 0, Col: -2}, {Row: 0, Col: -3}, {Row: 1, Col: -2}} {
		tree := s.TreeAt(p)
		if tree == nil || tree.Kind != world.TreeBamboo {
			t.Fatalf("expected bamboo at %v, got %+v", p, tree)
		}
	}
	if s.LivingTreeCount() <= 3 {
		t.Fatalf("expected the field seeded beyond the grove, got %d trees", s.LivingTreeCount())
	}
}

func TestWorldState_TreeAtIgnoresFelledTrees(t *testing.T) {
	s := testState()
	p := world.Position{Row: 10, Col: 0}
	s.Trees = []world.Tree{
		{Position: p, Kind: world.TreePine, HitsRequired: 5, Felled: true},
	}
	if s.TreeAt(p) != nil {
		t.Fatalf("a felled tree should not be found")
	}
	s.Trees = append(s.Trees, world.NewTree(p, world.TreeBirch))
	tree := s.TreeAt(p)
	if tree == nil || tree.Kind != world.TreeBirch {
		t.Fatalf("expected the standing birch, got %+v", tree)
	}
	if s.LivingTreeCount() != 1 {
		t.Fatalf("expected one living tree, got %d", s.LivingTreeCount())
	}
}

func TestWorldState_SpawnTreeProbesForFreeGround(t *testing.T) {
	s := testState()
	d := &scriptDice{ints: []int{5, 20, 0}}
	if !s.SpawnTree(d) {
		t.Fatalf("expected the probe to land")
	}
	if len(s.Trees) != 1 {
		t.Fatalf("expected one tree, got %d", len(s.Trees))
	}
	tree := s.Trees[0]
	if tree.Position != (world.Position{Row: -10, Col: 5}) || tree.Kind != world.TreePine {
		t.Fatalf("unexpected tree %+v", tree)
	}
}

func TestWorldState_SpawnTreeGivesUpOnBarrenProbes(t *testing.T) {
	s := testState()
	// Exhausted dice probe the desert corner every time.
	if s.SpawnTree(&scriptDice{}) {
		t.Fatalf("expected every probe to miss")
	}
	if len(s.Trees) != 0 {
		t.Fatalf("expected no tree planted, got %d", len(s.Trees))
	}
}

func TestWorldState_AmbientTemperature(t *testing.T) {
	s := testState()
	if got := s.AmbientTemperature(); got != IndoorBaseTemp {
		t.Fatalf("cold cabin should sit at %v, got %v", IndoorBaseTemp, got)
	}

	s.Fireplace = Fireplace{State: FireRoaring, Fuel: 50}
	if got := s.AmbientTemperature(); got != 43 {
		t.Fatalf("roaring cabin should sit at 43, got %v", got)
	}

	s.Player.Location = InsideRoom(RoomCabinTerrace, world.Position{})
	if got := s.AmbientTemperature(); got != IndoorBaseTemp {
		t.Fatalf("the terrace should not feel the fire, got %v", got)
	}

	s.Player.Location = OutdoorsAt(world.Position{Row: 10, Col: 0})
	if got := s.AmbientTemperature(); got != 20 {
		t.Fatalf("clear morning woodland should sit at 20, got %v", got)
	}

	s.Weather.South = world.ConditionBlizzard
	if got := s.AmbientTemperature(); got != 5 {
		t.Fatalf("a blizzard should drag it to 5, got %v", got)
	}
}

func TestWorldState_ForageNodeIsCreatedLazily(t *testing.T) {
	s := outdoorsState(world.Position{Row: 10, Col: 0})
	p := s.Player.Location.Position

	node := s.ForageNodeAt(p, &scriptDice{ints: []int{1}})
	if node.Charges != 5 {
		t.Fatalf("expected 5 rolled charges, got %d", node.Charges)
	}
	node.Charges = 2

	again := s.ForageNodeAt(p, &scriptDice{})
	if again.Charges != 2 {
		t.Fatalf("expected the same node back, got %d charges", again.Charges)
	}
	if len(s.ForageNodes) != 1 {
		t.Fatalf("expected one node, got %d", len(s.ForageNodes))
	}
}

func TestWorldState_HasAxeCountsEitherAxe(t *testing.T) {
	s := testState()
	if s.HasAxe() {
		t.Fatalf("the pack starts without an axe")
	}
	s.Player.Inventory.Add(ItemStoneAxe, 1)
	if !s.HasAxe() {
		t.Fatalf("a stone axe should count")
	}
}

func TestWorldState_MarkDeadKeepsTheFirstCause(t *testing.T) {
	s := testState()
	s.MarkDead(DeathCauseInjury)
	s.MarkDead(DeathCauseUnknown)
	if !s.Player.Dead || s.Player.DeathCause != DeathCauseInjury {
		t.Fatalf("expected the first cause kept, got %+v", s.Player)
	}
}
