package survival

import (
	"fmt"
	"time"

	"emberside/internal/domain/world"
)

func (ResolverService) resolveChopWood(s *WorldState, intent ActionIntent, dice world.Dice, now time.Time) ResolveResult {
	if s.Player.Location.InRoom(RoomWoodShed) {
		return shedChop(s, dice, now)
	}
	if !s.Player.Location.Outdoors() {
		return ResolveResult{Outcome: Failure("There is nothing to chop in here.")}
	}
	if !s.HasAxe() {
		return ResolveResult{Outcome: Failure("You need an axe in hand to chop wood.")}
	}

	if intent.Direction != "" {
		if dir, ok := world.ParseDirection(intent.Direction); ok {
			s.Player.Facing = dir
		}
	}
	tree := s.TreeAt(s.Player.Location.Position)
	if tree == nil {
		tree = s.TreeAt(s.Player.Location.Position.Step(s.Player.Facing))
	}
	if tree == nil {
		return ResolveResult{Outcome: Failure("There is no standing tree within reach.")}
	}

	if !tree.Chop() {
		remaining := tree.HitsRequired - tree.HitsDone
		text := fmt.Sprintf("Your axe bites deep and chips fly. The %s shudders; %d more good swings should bring it down.",
			tree.Kind, remaining)
		return ResolveResult{Outcome: timedWork(s, text, 1, 5)}
	}

	yield := []ItemStack{{Item: ItemLog, Count: 2}, {Item: ItemKindling, Count: 1}, {Item: ItemBark, Count: 1}}
	xp := 5
	if tree.Kind == world.TreeBamboo {
		yield = []ItemStack{{Item: ItemBamboo, Count: 2}}
		xp = 3
	}
	if fruit := tree.TakeAllFruit(); fruit > 0 {
		yield = append(yield, ItemStack{Item: ItemApple, Count: fruit})
	}

	var taken []string
	left := false
	for _, stack := range yield {
		if s.Player.Inventory.Add(stack.Item, stack.Count) {
			taken = append(taken, StackLabel(stack.Item, stack.Count))
		} else {
			left = true
		}
	}

	text := fmt.Sprintf("The %s groans and crashes down.", tree.Kind)
	if len(taken) > 0 {
		text += " You gather " + joinList(taken) + "."
	}
	if left {
		text += " Some of the wood is more than you can carry and stays where it fell."
	}
	return ResolveResult{
		Outcome: timedWork(s, text, 1, 5),
		Events:  grantXP(s, "woodcutting", xp, now),
	}
}

// shedChop splits one log from the shed pile into firewood at the
// chopping block. A bad swing draws blood instead.
func shedChop(s *WorldState, dice world.Dice, now time.Time) ResolveResult {
	if !s.HasAxe() && !s.Shed.AxeOnFloor {
		return ResolveResult{Outcome: Failure("The axe is not here. Nothing else will split a log.")}
	}
	if s.Shed.Logs < 1 {
		return ResolveResult{Outcome: Failure("The log pile is empty. Haul another log in from the forest.")}
	}

	if !skillCheck(s, "woodcutting", ChopSkillBase, dice) {
		hurt := float64(world.RangeInt(dice, 1, 5))
		s.Player.Vitals.AddHealth(-hurt)
		s.Player.Vitals.AddEnergy(-5)
		return ResolveResult{
			Outcome: Partial("The axe glances off the grain and catches your shin. You are bleeding."),
			Events:  collapseEvents(s, now),
		}
	}

	s.Shed.Logs--
	split := world.RangeInt(dice, 2, 4)
	s.Shed.Firewood += split
	text := fmt.Sprintf("You split the log into %d pieces of firewood and stack them by the wall.", split)
	return ResolveResult{
		Outcome: Timed(text, 1, 5),
		Events:  trickleXP(s, "woodcutting", dice, now),
	}
}

func (ResolverService) resolveSplitFirewood(s *WorldState, dice world.Dice, now time.Time) ResolveResult {
	if !s.Player.Location.InRoom(RoomWoodShed) {
		return ResolveResult{Outcome: Failure("The chopping block is in the wood shed.")}
	}
	if !s.HasAxe() && !s.Shed.AxeOnFloor {
		return ResolveResult{Outcome: Failure("The axe is not here. Nothing else will shave kindling.")}
	}

	fromPack := s.Player.Inventory.Has(ItemFirewood, 1)
	if !fromPack && s.Shed.Firewood < 1 {
		return ResolveResult{Outcome: Failure("There is no firewood here to split down.")}
	}
	if fromPack {
		s.Player.Inventory.Remove(ItemFirewood, 1)
	} else {
		s.Shed.Firewood--
	}

	n := world.RangeInt(dice, 2, 3)
	if !s.Player.Inventory.Add(ItemKindling, n) {
		if fromPack {
			s.Player.Inventory.Add(ItemFirewood, 1)
		} else {
			s.Shed.Firewood++
		}
		return ResolveResult{Outcome: Failure("Your pack is too full to hold the kindling.")}
	}
	text := fmt.Sprintf("You shave the firewood down into %d bundles of kindling.", n)
	return ResolveResult{Outcome: Timed(text, 1, 2)}
}

func (ResolverService) resolveKnapStone(s *WorldState, now time.Time) ResolveResult {
	if !s.Player.Inventory.Has(ItemStone, 2) {
		return ResolveResult{Outcome: Failure("Knapping takes two stones: one to strike and one to shape.")}
	}
	s.Player.Inventory.Remove(ItemStone, 1)
	s.Player.Inventory.Add(ItemSharpStone, 1)
	return ResolveResult{
		Outcome: Timed("You strike flake after flake from the stone until a keen edge emerges.", 1, 5),
		Events:  grantXP(s, "stonemasonry", 5, now),
	}
}

func joinList(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		out := ""
		for i, p := range parts[:len(parts)-1] {
			if i > 0 {
				out += ", "
			}
			out += p
		}
		return out + " and " + parts[len(parts)-1]
	}
}
