package world

// ForageCooldownTicks is how long an emptied patch of brush rests before
// it begins to regrow.
const ForageCooldownTicks = 12

// ForageNode tracks how picked-over the brush at one position is. A node
// is created lazily the first time somebody forages a cell.
type ForageNode struct {
	Position Position `json:"position"`
	Charges  int      `json:"charges"`
	Cooldown int      `json:"cooldown"`
}

// NewForageNode rolls starting charges for the biome. Lusher biomes hold
// more before they are picked clean.
func NewForageNode(pos Position, b Biome, dice Dice) ForageNode {
	return ForageNode{Position: pos, Charges: forageCharges(b, dice)}
}

// Depleted reports whether the brush is picked clean.
func (n ForageNode) Depleted() bool {
	return n.Charges <= 0
}

// Consume spends one charge. A node that empties starts resting.
func (n *ForageNode) Consume() {
	if n.Charges > 0 {
		n.Charges--
	}
	if n.Charges == 0 && n.Cooldown == 0 {
		n.Cooldown = ForageCooldownTicks
	}
}

// TickRegen counts down a depleted node and re-rolls its charges when
// the rest period ends. Nodes with charges left are untouched.
func (n *ForageNode) TickRegen(b Biome, dice Dice) {
	if n.Charges > 0 {
		return
	}
	if n.Cooldown > 0 {
		n.Cooldown--
	}
	if n.Cooldown == 0 {
		n.Charges = forageCharges(b, dice)
	}
}

func forageCharges(b Biome, dice Dice) int {
	switch b {
	case BiomeDesert:
		return RangeInt(dice, 1, 2)
	case BiomeOasis:
		return RangeInt(dice, 3, 4)
	case BiomeWinterForest:
		return RangeInt(dice, 2, 3)
	case BiomeLake, BiomeBambooGrove:
		return RangeInt(dice, 3, 5)
	default:
		return RangeInt(dice, 4, 6)
	}
}
