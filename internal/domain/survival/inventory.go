package survival

// ItemStack is a quantity of one item.
type ItemStack struct {
	Item  ItemID `json:"item"`
	Count int    `json:"count"`
}

// Inventory is a weight-limited bag. A MaxWeight of zero means
// unlimited, which the room shelves use. Adds are all or nothing;
// removes fail without touching anything.
type Inventory struct {
	Slots     []ItemStack `json:"slots,omitempty"`
	MaxWeight float64     `json:"max_weight,omitempty"`
}

// NewInventory returns an empty bag with the given weight limit.
func NewInventory(maxWeight float64) Inventory {
	return Inventory{MaxWeight: maxWeight}
}

// Weight is the current total carried weight.
func (inv Inventory) Weight() float64 {
	var total float64
	for _, s := range inv.Slots {
		total += Def(s.Item).Weight * float64(s.Count)
	}
	return total
}

// Count returns how many of the item are held.
func (inv Inventory) Count(item ItemID) int {
	for _, s := range inv.Slots {
		if s.Item == item {
			return s.Count
		}
	}
	return 0
}

// Has reports whether at least n of the item are held.
func (inv Inventory) Has(item ItemID, n int) bool {
	return inv.Count(item) >= n
}

// CanCarry reports whether n more of the item would fit under the
// weight limit.
func (inv Inventory) CanCarry(item ItemID, n int) bool {
	if inv.MaxWeight <= 0 {
		return true
	}
	return inv.Weight()+Def(item).Weight*float64(n) <= inv.MaxWeight
}

// Add stores n of the item. It fails without mutating when the stack
// would not fit.
func (inv *Inventory) Add(item ItemID, n int) bool {
	if n <= 0 {
		return false
	}
	if !inv.CanCarry(item, n) {
		return false
	}
	for i := range inv.Slots {
		if inv.Slots[i].Item == item {
			inv.Slots[i].Count += n
			return true
		}
	}
	inv.Slots = append(inv.Slots, ItemStack{Item: item, Count: n})
	return true
}

// Remove takes n of the item out. It fails without mutating when fewer
// are held.
func (inv *Inventory) Remove(item ItemID, n int) bool {
	if n <= 0 {
		return false
	}
	for i := range inv.Slots {
		if inv.Slots[i].Item != item {
			continue
		}
		if inv.Slots[i].Count < n {
			return false
		}
		inv.Slots[i].Count -= n
		if inv.Slots[i].Count == 0 {
			inv.Slots = append(inv.Slots[:i], inv.Slots[i+1:]...)
		}
		return true
	}
	return false
}

// List returns the stacks in slot order.
func (inv Inventory) List() []ItemStack {
	out := make([]ItemStack, len(inv.Slots))
	copy(out, inv.Slots)
	return out
}

// Empty reports whether nothing is held.
func (inv Inventory) Empty() bool {
	return len(inv.Slots) == 0
}
