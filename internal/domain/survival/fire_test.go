package survival

import "testing"

func TestFireplace_StartsCold(t *testing.T) {
	f := NewFireplace()
	if f.Lit() {
		t.Fatalf("expected a fresh fireplace to be cold")
	}
	if f.State.Heat() != 0 || f.State.Consumption() != 0 {
		t.Fatalf("expected no heat or consumption when cold, got %v and %v",
			f.State.Heat(), f.State.Consumption())
	}
}

func TestFireplace_FuelAloneNeverIgnites(t *testing.T) {
	f := NewFireplace()
	for i := 0; i < 3; i++ {
		if err := f.AddFuel(ItemLog); err != nil {
			t.Fatalf("add fuel: %v", err)
		}
	}
	if f.Fuel != 180 {
		t.Fatalf("expected 180 fuel, got %d", f.Fuel)
	}
	if f.State != FireCold {
		t.Fatalf("expected the hearth to stay cold, got %s", f.State)
	}
}

func TestFireplace_AddFuelRejectsNonFuel(t *testing.T) {
	f := NewFireplace()
	if err := f.AddFuel(ItemStone); err != ErrItemWontBurn {
		t.Fatalf("expected ErrItemWontBurn, got %v", err)
	}
	if f.Fuel != 0 {
		t.Fatalf("expected no fuel, got %d", f.Fuel)
	}
}

func TestFireplace_TinderPrimesTheHearth(t *testing.T) {
	f := NewFireplace()
	if err := f.AddFuel(ItemFirewood); err != nil {
		t.Fatalf("add firewood: %v", err)
	}
	if f.TinderReady {
		t.Fatalf("firewood alone should not prime the tinder")
	}
	if err := f.AddFuel(ItemKindling); err != nil {
		t.Fatalf("add kindling: %v", err)
	}
	if !f.TinderReady {
		t.Fatalf("expected kindling to leave tinder ready")
	}
}

func TestFireplace_IgniteNeedsMinimumFuel(t *testing.T) {
	f := NewFireplace()
	f.Fuel = FireIgniteMinFuel - 1
	if err := f.Ignite(); err != ErrFireNeedsFuel {
		t.Fatalf("expected ErrFireNeedsFuel, got %v", err)
	}
	f.Fuel = FireIgniteMinFuel
	if err := f.Ignite(); err != nil {
		t.Fatalf("ignite: %v", err)
	}
}

func TestFireplace_IgniteAlwaysStartsSmoldering(t *testing.T) {
	f := NewFireplace()
	f.Fuel = 60
	if err := f.Ignite(); err != nil {
		t.Fatalf("ignite: %v", err)
	}
	if f.State != FireSmoldering {
		t.Fatalf("expected a fresh flame to smolder, got %s", f.State)
	}
}

func TestFireplace_IgniteTwiceFails(t *testing.T) {
	f := NewFireplace()
	f.Fuel = 10
	if err := f.Ignite(); err != nil {
		t.Fatalf("ignite: %v", err)
	}
	if err := f.Ignite(); err != ErrFireAlreadyLit {
		t.Fatalf("expected ErrFireAlreadyLit, got %v", err)
	}
}

func TestFireplace_LitFireClimbsWithFuel(t *testing.T) {
	f := NewFireplace()
	f.Fuel = 6
	if err := f.Ignite(); err != nil {
		t.Fatalf("ignite: %v", err)
	}
	if err := f.AddFuel(ItemKindling); err != nil {
		t.Fatalf("add kindling: %v", err)
	}
	if f.State != FireBurning {
		t.Fatalf("expected burning at %d fuel, got %s", f.Fuel, f.State)
	}
	if err := f.AddFuel(ItemLog); err != nil {
		t.Fatalf("add log: %v", err)
	}
	if f.State != FireRoaring {
		t.Fatalf("expected roaring at %d fuel, got %s", f.Fuel, f.State)
	}
}

func TestFireplace_BurnTickSettlesOntoFuel(t *testing.T) {
	f := Fireplace{State: FireSmoldering, Fuel: 28}
	if died := f.BurnTick(); died {
		t.Fatalf("fire should not die with fuel left")
	}
	if f.Fuel != 27 {
		t.Fatalf("expected 27 fuel after a smoldering tick, got %d", f.Fuel)
	}
	if f.State != FireBurning {
		t.Fatalf("expected the fire to settle onto burning, got %s", f.State)
	}
}

func TestFireplace_BurnRatesFollowTheState(t *testing.T) {
	f := Fireplace{State: FireRoaring, Fuel: 50}
	f.BurnTick()
	if f.Fuel != 44 || f.State != FireRoaring {
		t.Fatalf("expected a roaring fire to eat 6 fuel and keep roaring, got %d and %s",
			f.Fuel, f.State)
	}
	f = Fireplace{State: FireBurning, Fuel: 12}
	f.BurnTick()
	if f.Fuel != 9 || f.State != FireSmoldering {
		t.Fatalf("expected 9 fuel and smoldering, got %d and %s", f.Fuel, f.State)
	}
}

func TestFireplace_ColdLoadIgniteBurnDown(t *testing.T) {
	f := NewFireplace()
	if err := f.AddFuel(ItemFirewood); err != nil {
		t.Fatalf("add firewood: %v", err)
	}
	if f.Fuel != 30 || f.State != FireCold {
		t.Fatalf("expected 30 fuel and a cold hearth, got %d and %s", f.Fuel, f.State)
	}
	if err := f.Ignite(); err != nil {
		t.Fatalf("ignite: %v", err)
	}
	if f.State != FireSmoldering {
		t.Fatalf("expected smoldering after ignition, got %s", f.State)
	}

	// First tick burns at the smoldering rate and the recompute lifts
	// the fire into the burning band; later ticks burn at that rate.
	wantFuel := []int{29, 26, 23}
	for i, want := range wantFuel {
		if died := f.BurnTick(); died {
			t.Fatalf("fire died on tick %d", i+1)
		}
		if f.Fuel != want || f.State != FireBurning {
			t.Fatalf("tick %d: expected %d fuel and burning, got %d and %s",
				i+1, want, f.Fuel, f.State)
		}
	}
}

func TestFireplace_BurnsOut(t *testing.T) {
	f := Fireplace{State: FireSmoldering, Fuel: 1}
	if died := f.BurnTick(); !died {
		t.Fatalf("expected the last of the fuel to kill the fire")
	}
	if f.State != FireCold || f.Fuel != 0 {
		t.Fatalf("expected a cold empty hearth, got %s with %d fuel", f.State, f.Fuel)
	}
	if f.BurnTick() {
		t.Fatalf("a cold hearth cannot die again")
	}
}
