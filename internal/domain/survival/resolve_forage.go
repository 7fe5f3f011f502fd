package survival

import (
	"time"

	"emberside/internal/domain/world"
)

func berryChanceBonus(biome world.Biome) float64 {
	switch biome {
	case world.BiomeSpringForest, world.BiomeMixedForest, world.BiomeBambooGrove, world.BiomeOasis:
		return 0.25
	case world.BiomeLake:
		return 0.15
	default:
		return 0
	}
}

func (ResolverService) resolveForage(s *WorldState, dice world.Dice, now time.Time) ResolveResult {
	if !s.Player.Location.Outdoors() {
		return ResolveResult{Outcome: Failure("There is nothing to forage indoors.")}
	}
	if s.Player.Vitals.Energy < 5 {
		return ResolveResult{Outcome: Failure("You are too exhausted to forage.")}
	}

	pos := s.Player.Location.Position
	node := s.ForageNodeAt(pos, dice)
	if node.Depleted() {
		return ResolveResult{Outcome: Failure("This spot has been picked clean. Give it time to recover.")}
	}

	biome := s.Terrain.BiomeAt(pos)
	level := s.Player.Skills.Level("foraging")
	knife := s.Player.Inventory.Has(ItemStoneKnife, 1)

	chance := 0.6 + float64(level)*0.005
	if knife {
		chance += 0.1
	}
	if chance > 0.95 {
		chance = 0.95
	}
	if !world.Chance(dice, chance) {
		return ResolveResult{Outcome: timedWork(s, "You comb the undergrowth but find nothing worth keeping.", 1, 3)}
	}

	node.Consume()

	sticks := 1
	extraStick := 0.3 + float64(level)*0.01
	if extraStick > 0.8 {
		extraStick = 0.8
	}
	if world.Chance(dice, extraStick) {
		sticks++
	}
	loot := []ItemStack{{Item: ItemStick, Count: sticks}}

	fiberChance := 0.35 + float64(level)*0.005
	fiberRolls := 1
	if knife {
		fiberChance += 0.15
		fiberRolls = 2
	}
	if fiberChance > 0.85 {
		fiberChance = 0.85
	}
	fibers := 0
	for i := 0; i < fiberRolls; i++ {
		if world.Chance(dice, fiberChance) {
			fibers++
		}
	}
	if fibers > 0 {
		loot = append(loot, ItemStack{Item: ItemPlantFiber, Count: fibers})
	}

	if world.Chance(dice, 0.25) {
		loot = append(loot, ItemStack{Item: ItemStone, Count: 1})
	}

	berryChance := 0.25 + berryChanceBonus(biome) + float64(level)*0.005
	if berryChance > 0.9 {
		berryChance = 0.9
	}
	berries := 0
	for i := 0; i < 3; i++ {
		if world.Chance(dice, berryChance) {
			berries++
		}
	}
	if berries > 0 {
		loot = append(loot, ItemStack{Item: ItemWildBerry, Count: berries})
	}

	if biome == world.BiomeDesert || biome == world.BiomeOasis {
		if world.Chance(dice, 0.15) {
			loot = append(loot, ItemStack{Item: ItemDate, Count: 1})
		}
	}

	if world.Chance(dice, 0.12) {
		loot = append(loot, ItemStack{Item: ItemWildHerbs, Count: 1})
	}

	events := grantXP(s, "foraging", 1, now)

	if s.Player.Inventory.Has(ItemFishingRod, 1) && s.Terrain.NearWater(pos) {
		fishChance := 0.3 + float64(s.Player.Skills.Level("survival"))*0.004 + float64(s.Player.Skills.Level("observation"))*0.002
		if fishChance > 0.8 {
			fishChance = 0.8
		}
		if world.Chance(dice, fishChance) {
			loot = append(loot, ItemStack{Item: ItemRawFish, Count: 1})
			events = append(events, grantXP(s, "survival", 2, now)...)
			events = append(events, grantXP(s, "observation", 1, now)...)
		}
	}

	var taken []string
	strained := false
	for _, stack := range loot {
		if s.Player.Inventory.Add(stack.Item, stack.Count) {
			taken = append(taken, StackLabel(stack.Item, stack.Count))
		} else {
			strained = true
		}
	}

	text := "You forage through the area and come up with " + joinList(taken) + "."
	if len(taken) == 0 {
		text = "You forage through the area but your pack has no room for any of it."
	}
	if strained && len(taken) > 0 {
		text += " Your pack is too full for the rest."
	}
	return ResolveResult{
		Outcome: timedWork(s, text, 1, 5),
		Events:  events,
	}
}
