package survival

import (
	"fmt"
	"time"

	"emberside/internal/domain/world"
)

func (ResolverService) resolveLightFire(s *WorldState, dice world.Dice, now time.Time) ResolveResult {
	if !s.Player.Location.InRoom(RoomCabinMain) {
		return ResolveResult{Outcome: Failure("There is no fireplace here. The hearth is in the cabin's main room.")}
	}
	if s.Fireplace.Lit() {
		return ResolveResult{Outcome: Failure("The fire is already burning.")}
	}
	if s.Fireplace.Fuel < FireIgniteMinFuel {
		return ResolveResult{Outcome: Failure("There is not enough fuel in the fireplace to catch. Add something that burns.")}
	}
	if !s.Fireplace.TinderReady {
		return ResolveResult{Outcome: Failure("The fuel needs fresh tinder worked into it before a spark will take.")}
	}

	base := LightFireSkillBase
	if s.Player.Inventory.Has(ItemMatchbox, 1) {
		base += LightFireMatchBonus
	}
	chance := (float64(base) + float64(s.Player.Skills.Level("fire_making"))*0.5) / 100.0
	if chance > LightFireMaxChance {
		chance = LightFireMaxChance
	}

	if !world.Chance(dice, chance) {
		s.Fireplace.TinderReady = false
		s.Fireplace.Fuel -= LightFireFailFuelTax
		if s.Fireplace.Fuel < 0 {
			s.Fireplace.Fuel = 0
		}
		s.Player.Vitals.AddEnergy(-2)
		return ResolveResult{Outcome: Partial("The tinder flares, gutters and dies. Smoke, but no flame.")}
	}

	if err := s.Fireplace.Ignite(); err != nil {
		return ResolveResult{Outcome: Failure("The fire refuses to catch.")}
	}
	return ResolveResult{
		Outcome: Timed("Flame licks up through the tinder and takes hold in the fireplace.", 1, 2),
		Events:  trickleXP(s, "fire_making", dice, now),
	}
}

func (ResolverService) resolveAddFuel(s *WorldState, intent ActionIntent, now time.Time) ResolveResult {
	if !s.Player.Location.InRoom(RoomCabinMain) {
		return ResolveResult{Outcome: Failure("There is no fireplace here.")}
	}
	item, ok := ResolveItemName(intent.Item)
	if !ok {
		if hint := SuggestItemName(intent.Item); hint != "" {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q. Did you mean %s?", intent.Item, hint))}
		}
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q.", intent.Item))}
	}
	if !s.Player.Inventory.Has(item, 1) {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't have any %s.", DisplayName(item)))}
	}
	if Def(item).FuelValue <= 0 {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("The %s won't burn in any useful way.", DisplayName(item)))}
	}

	s.Player.Inventory.Remove(item, 1)
	if err := s.Fireplace.AddFuel(item); err != nil {
		s.Player.Inventory.Add(item, 1)
		return ResolveResult{Outcome: Failure(fmt.Sprintf("The %s won't burn in any useful way.", DisplayName(item)))}
	}

	text := fmt.Sprintf("You lay the %s in the fireplace.", DisplayName(item))
	if s.Fireplace.Lit() {
		text = fmt.Sprintf("You feed the %s to the flames.", DisplayName(item))
	}
	ticks, energy := 1, 1.0
	if item == ItemLog || item == ItemFirewood {
		ticks, energy = 2, 3.0
	}
	return ResolveResult{
		Outcome: Timed(text, ticks, energy),
		Events:  grantXP(s, "fire_making", 1, now),
	}
}
