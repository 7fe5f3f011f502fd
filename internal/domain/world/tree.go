package world

// TreeKind names the species that can grow on the map.
type TreeKind string

const (
	TreePine   TreeKind = "pine"
	TreeBirch  TreeKind = "birch"
	TreeApple  TreeKind = "apple"
	TreeBamboo TreeKind = "bamboo"
)

const (
	treeHitsDefault = 5
	treeHitsBamboo  = 3
	appleFruitMax   = 6
	fruitGrowChance = 0.18
)

// Tree is a standing (or felled) tree. Felling takes several axe hits;
// apple trees also carry fruit that regrows over time.
type Tree struct {
	Position     Position `json:"position"`
	Kind         TreeKind `json:"kind"`
	HitsDone     int      `json:"hits_done"`
	HitsRequired int      `json:"hits_required"`
	Felled       bool     `json:"felled"`
	FruitCount   int      `json:"fruit_count"`
	FruitMax     int      `json:"fruit_max"`
}

// NewTree plants a bare tree of the given kind.
func NewTree(pos Position, kind TreeKind) Tree {
	t := Tree{Position: pos, Kind: kind, HitsRequired: treeHitsDefault}
	if kind == TreeBamboo {
		t.HitsRequired = treeHitsBamboo
	}
	if kind == TreeApple {
		t.FruitMax = appleFruitMax
	}
	return t
}

// NewTreeWithFruit plants a tree with a small random starting crop.
func NewTreeWithFruit(pos Position, kind TreeKind, dice Dice) Tree {
	t := NewTree(pos, kind)
	if t.FruitMax > 0 {
		limit := t.FruitMax
		if limit > 3 {
			limit = 3
		}
		t.FruitCount = RangeInt(dice, 0, limit)
	}
	return t
}

// Chop lands one axe hit. It reports whether the tree came down.
func (t *Tree) Chop() bool {
	if t.Felled {
		return false
	}
	t.HitsDone++
	if t.HitsDone >= t.HitsRequired {
		t.Felled = true
		return true
	}
	return false
}

// HasFruit reports whether anything is ready to pick.
func (t Tree) HasFruit() bool {
	return !t.Felled && t.FruitCount > 0
}

// TakeAllFruit strips the tree and returns how much was picked.
func (t *Tree) TakeAllFruit() int {
	n := t.FruitCount
	t.FruitCount = 0
	return n
}

// TickGrowth gives a fruiting tree a chance to ripen one more fruit.
func (t *Tree) TickGrowth(dice Dice) {
	if t.Felled || t.FruitMax == 0 || t.FruitCount >= t.FruitMax {
		return
	}
	if Chance(dice, fruitGrowChance) {
		t.FruitCount++
	}
}

// Description is a short line for observers.
func (t Tree) Description() string {
	switch t.Kind {
	case TreePine:
		return "A tall pine stands here, sap-heavy and straight."
	case TreeBirch:
		return "A slender birch with pale bark and delicate branches."
	case TreeApple:
		return "A hardy apple tree, its branches often heavy with fruit."
	case TreeBamboo:
		return "A cluster of bamboo stalks sways softly in the breeze."
	}
	return "A tree stands here."
}
