package survival

import "fmt"

func (ResolverService) resolveTake(s *WorldState, intent ActionIntent) ResolveResult {
	count := intent.Count
	if count < 1 {
		count = 1
	}

	if s.Player.Location.Outdoors() {
		return takeFruit(s, intent)
	}

	item, ok := ResolveItemName(intent.Item)
	if !ok {
		if hint := SuggestItemName(intent.Item); hint != "" {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q. Did you mean %s?", intent.Item, hint))}
		}
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q.", intent.Item))}
	}

	switch s.Player.Location.Room {
	case RoomCabinMain:
		have := s.CabinShelf.Count(item)
		if have == 0 {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("The shelf holds no %s.", DisplayName(item)))}
		}
		if count > have {
			count = have
		}
		if !s.Player.Inventory.CanCarry(item, count) {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("The %s would be more than you can carry.", StackLabel(item, count)))}
		}
		s.CabinShelf.Remove(item, count)
		s.Player.Inventory.Add(item, count)
		return ResolveResult{Outcome: Success(fmt.Sprintf("You take the %s from the shelf.", StackLabel(item, count)))}

	case RoomWoodShed:
		return takeFromShed(s, item, count)

	default:
		return ResolveResult{Outcome: Failure("Nothing is stored out here.")}
	}
}

func takeFromShed(s *WorldState, item ItemID, count int) ResolveResult {
	switch item {
	case ItemAxe:
		if !s.Shed.AxeOnFloor {
			return ResolveResult{Outcome: Failure("The axe is not here.")}
		}
		if !s.Player.Inventory.CanCarry(ItemAxe, 1) {
			return ResolveResult{Outcome: Failure("The axe would be more than you can carry.")}
		}
		s.Shed.AxeOnFloor = false
		s.Player.Inventory.Add(ItemAxe, 1)
		return ResolveResult{Outcome: Success("You heft the axe. Its edge is dull but honest.")}

	case ItemLog, ItemFirewood:
		stock := &s.Shed.Logs
		if item == ItemFirewood {
			stock = &s.Shed.Firewood
		}
		if *stock == 0 {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("There is no %s left in the shed.", DisplayName(item)))}
		}
		if count > *stock {
			count = *stock
		}
		if !s.Player.Inventory.CanCarry(item, count) {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("The %s would be more than you can carry.", StackLabel(item, count)))}
		}
		*stock -= count
		s.Player.Inventory.Add(item, count)
		return ResolveResult{Outcome: Success(fmt.Sprintf("You take the %s from the stack.", StackLabel(item, count)))}

	default:
		return ResolveResult{Outcome: Failure("The shed holds only logs, firewood and the axe.")}
	}
}

// takeFruit strips a fruiting tree at or ahead of the player.
func takeFruit(s *WorldState, intent ActionIntent) ResolveResult {
	item, ok := ResolveItemName(intent.Item)
	if !ok || item != ItemApple {
		return ResolveResult{Outcome: Failure("There is nothing here to take. The wild gives up its goods through foraging.")}
	}
	tree := s.TreeAt(s.Player.Location.Position)
	if tree == nil || !tree.HasFruit() {
		tree = s.TreeAt(s.Player.Location.Position.Step(s.Player.Facing))
	}
	if tree == nil || !tree.HasFruit() {
		return ResolveResult{Outcome: Failure("No fruit hangs within reach.")}
	}
	n := tree.FruitCount
	if !s.Player.Inventory.CanCarry(ItemApple, n) {
		return ResolveResult{Outcome: Failure("Your pack has no room for the fruit.")}
	}
	tree.TakeAllFruit()
	s.Player.Inventory.Add(ItemApple, n)
	return ResolveResult{Outcome: Timed(fmt.Sprintf("You pick %s from the branches.", StackLabel(ItemApple, n)), 1, 1)}
}

func (ResolverService) resolvePut(s *WorldState, intent ActionIntent) ResolveResult {
	count := intent.Count
	if count < 1 {
		count = 1
	}

	item, ok := ResolveItemName(intent.Item)
	if !ok {
		if hint := SuggestItemName(intent.Item); hint != "" {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q. Did you mean %s?", intent.Item, hint))}
		}
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't recognize %q.", intent.Item))}
	}
	if !s.Player.Inventory.Has(item, count) {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't have %s to spare.", StackLabel(item, count)))}
	}

	switch s.Player.Location.Room {
	case RoomCabinMain:
		s.Player.Inventory.Remove(item, count)
		s.CabinShelf.Add(item, count)
		return ResolveResult{Outcome: Success(fmt.Sprintf("You set the %s on the shelf.", StackLabel(item, count)))}

	case RoomWoodShed:
		switch {
		case item == ItemAxe:
			if s.Shed.AxeOnFloor {
				return ResolveResult{Outcome: Failure("An axe already leans against the chopping block.")}
			}
			s.Player.Inventory.Remove(ItemAxe, 1)
			s.Shed.AxeOnFloor = true
			return ResolveResult{Outcome: Success("You lean the axe against the chopping block.")}
		case item == ItemLog:
			s.Player.Inventory.Remove(ItemLog, count)
			s.Shed.Logs += count
			return ResolveResult{Outcome: Success(fmt.Sprintf("You add the %s to the log pile.", StackLabel(ItemLog, count)))}
		case item == ItemFirewood:
			s.Player.Inventory.Remove(ItemFirewood, count)
			s.Shed.Firewood += count
			return ResolveResult{Outcome: Success(fmt.Sprintf("You stack the %s by the wall.", StackLabel(ItemFirewood, count)))}
		default:
			return ResolveResult{Outcome: Failure("Only wood and the axe belong in the shed.")}
		}

	default:
		return ResolveResult{Outcome: Failure("There is nowhere to put things here.")}
	}
}
