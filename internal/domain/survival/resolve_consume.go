package survival

import (
	"fmt"
	"time"
)

func (ResolverService) resolveEat(s *WorldState, intent ActionIntent, now time.Time) ResolveResult {
	item, ok := ResolveItemName(intent.Item)
	if !ok {
		if hint := SuggestItemName(intent.Item); hint != "" {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q. Did you mean %s?", intent.Item, hint))}
		}
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q.", intent.Item))}
	}
	eff, edible := EffectOf(item)
	if !edible {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You can't eat the %s.", DisplayName(item)))}
	}
	if !s.Player.Inventory.Has(item, 1) {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't have any %s.", DisplayName(item)))}
	}

	s.Player.Inventory.Remove(item, 1)
	s.Player.Vitals.Apply(eff)

	verb := eff.Verb
	if verb == "" {
		verb = "eat"
	}
	return ResolveResult{
		Outcome: Timed(fmt.Sprintf("You %s the %s.", verb, DisplayName(item)), 1, 0),
		Events:  collapseEvents(s, now),
	}
}

func (ResolverService) resolveDrink(s *WorldState, intent ActionIntent) ResolveResult {
	switch normalizeName(intent.Item) {
	case "", "water":
		if !s.Player.Location.Outdoors() || !s.Terrain.NearWater(s.Player.Location.Position) {
			return ResolveResult{Outcome: Failure("There is no water within reach here.")}
		}
		s.Player.Vitals.AddHydration(30)
		return ResolveResult{Outcome: Timed("You kneel at the water's edge and drink deeply.", 1, 0)}

	case "tea", "herbal tea":
		if !s.Player.Location.InRoom(RoomCabinMain) {
			return ResolveResult{Outcome: Failure("Brewing tea needs the kettle and the fireplace.")}
		}
		if !s.Fireplace.Lit() {
			return ResolveResult{Outcome: Failure("The fire is out. You can't brew on cold ash.")}
		}
		if !s.Player.Inventory.Has(ItemKettle, 1) {
			return ResolveResult{Outcome: Failure("You need the kettle in hand to brew.")}
		}
		if !s.Player.Inventory.Has(ItemWildHerbs, 1) {
			return ResolveResult{Outcome: Failure("You have no herbs to steep.")}
		}
		s.Player.Inventory.Remove(ItemWildHerbs, 1)
		s.Player.Vitals.AddHydration(15)
		s.Player.Vitals.AddMood(5)
		s.Player.Vitals.AddWarmth(3)
		return ResolveResult{Outcome: Timed("You steep the herbs and sip slowly, warmth spreading through you.", 1, 0)}

	default:
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You can't drink %q.", intent.Item))}
	}
}

func (ResolverService) resolveSleep(s *WorldState) ResolveResult {
	if s.Player.Location.Kind != LocationIndoors {
		return ResolveResult{Outcome: Failure("It is too exposed to sleep out here. Find shelter first.")}
	}
	v := &s.Player.Vitals
	fed := v.Fullness >= SleepFedFullness && v.Hydration >= SleepFedHydration
	v.AddEnergy(SleepEnergyGain)
	v.AddMood(SleepMoodGain)
	v.AddFullness(-SleepFullnessCost)
	v.AddHydration(-SleepHydrationCost)
	if fed {
		v.AddHealth(SleepHealthGainFed)
	} else {
		v.AddHealth(SleepHealthGainPoor)
	}
	return ResolveResult{Outcome: Timed("You pull the blanket close and let sleep take you.", SleepTicks, 0)}
}

func (ResolverService) resolveWait(intent ActionIntent) ResolveResult {
	n := intent.Ticks
	if n < 1 {
		n = 1
	}
	if n > WaitMaxTicks {
		n = WaitMaxTicks
	}
	return ResolveResult{Outcome: Timed("Time passes quietly.", n, 0)}
}
