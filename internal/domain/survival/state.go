package survival

import (
	"time"

	"emberside/internal/domain/world"
)

// TreeFieldExtent bounds the seeded tree field and respawn probes to
// the homestead's working range rather than the whole map, which keeps
// the saved aggregate a manageable size.
const TreeFieldExtent = 15

// NewWorldState builds a fresh save. The survivor wakes in the cabin's
// main room with the fire cold, a small kit on the shelf and a few logs
// in the shed.
func NewWorldState(id string, seed uint64, dice world.Dice, now time.Time) *WorldState {
	terrain := world.NewTerrain()
	s := &WorldState{
		ID:      id,
		Seed:    seed,
		Clock:   world.NewClock(),
		Weather: world.NewWeather(dice),
		Terrain: terrain,
		Player: Player{
			Location:  InsideRoom(RoomCabinMain, world.Position{Row: 0, Col: 0}),
			Facing:    world.DirectionSouth,
			Vitals:    NewVitals(),
			Inventory: NewInventory(MaxCarryWeight),
			Skills:    NewSkillSet(),
		},
		Fireplace:  NewFireplace(),
		CabinShelf: starterShelf(),
		Shed:       ShedState{Logs: StartShedLogs, AxeOnFloor: true},
		Trees:      seedTrees(terrain, dice),
		Wildlife:   SpawnWildlife(dice),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s
}

func starterShelf() Inventory {
	shelf := NewInventory(0)
	shelf.Add(ItemMatchbox, 1)
	shelf.Add(ItemKindling, 2)
	shelf.Add(ItemTeaCup, 1)
	shelf.Add(ItemWoolBlanket, 1)
	shelf.Add(ItemKettle, 1)
	shelf.Add(ItemWildHerbs, 1)
	return shelf
}

func treeEligible(t world.Terrain, p world.Position) bool {
	if !t.IsWalkable(p) {
		return false
	}
	switch t.BiomeAt(p) {
	case world.BiomeSpringForest, world.BiomeMixedForest, world.BiomeWinterForest, world.BiomeBambooGrove:
		return true
	}
	return false
}

func randomTreeKind(dice world.Dice) world.TreeKind {
	switch dice.IntN(3) {
	case 0:
		return world.TreePine
	case 1:
		return world.TreeBirch
	default:
		return world.TreeApple
	}
}

func treeKindFor(t world.Terrain, p world.Position, dice world.Dice) world.TreeKind {
	if t.BiomeAt(p) == world.BiomeBambooGrove {
		return world.TreeBamboo
	}
	return randomTreeKind(dice)
}

// seedTrees plants the bamboo grove by the cabin, then walks the field
// in 3x3 blocks and gives each block with eligible ground one tree at a
// random eligible cell.
func seedTrees(t world.Terrain, dice world.Dice) []world.Tree {
	var trees []world.Tree
	for _, p := range []world.Position{{Row: 0, Col: -2}, {Row: 0, Col: -3}, {Row: 1, Col: -2}} {
		trees = append(trees, world.NewTree(p, world.TreeBamboo))
	}

	for blockRow := -TreeFieldExtent; blockRow <= TreeFieldExtent; blockRow += 3 {
		for blockCol := -TreeFieldExtent; blockCol <= TreeFieldExtent; blockCol += 3 {
			var eligible []world.Position
			for r := blockRow; r <= blockRow+2 && r <= TreeFieldExtent; r++ {
				for c := blockCol; c <= blockCol+2 && c <= TreeFieldExtent; c++ {
					p := world.Position{Row: r, Col: c}
					if treeEligible(t, p) {
						eligible = append(eligible, p)
					}
				}
			}
			if len(eligible) == 0 {
				continue
			}
			taken := false
			for _, tree := range trees {
				for _, p := range eligible {
					if tree.Position == p && !tree.Felled {
						taken = true
					}
				}
			}
			if taken {
				continue
			}
			p := eligible[dice.IntN(len(eligible))]
			trees = append(trees, world.NewTreeWithFruit(p, treeKindFor(t, p, dice), dice))
		}
	}
	return trees
}

// LivingTreeCount counts standing trees.
func (s *WorldState) LivingTreeCount() int {
	n := 0
	for i := range s.Trees {
		if !s.Trees[i].Felled {
			n++
		}
	}
	return n
}

// TreeAt finds the standing tree on a cell, if any.
func (s *WorldState) TreeAt(p world.Position) *world.Tree {
	for i := range s.Trees {
		if s.Trees[i].Position == p && !s.Trees[i].Felled {
			return &s.Trees[i]
		}
	}
	return nil
}

// SpawnTree probes for free eligible ground and plants one tree there.
func (s *WorldState) SpawnTree(dice world.Dice) bool {
	for attempt := 0; attempt < 50; attempt++ {
		p := world.Position{
			Row: world.RangeInt(dice, -TreeFieldExtent, TreeFieldExtent),
			Col: world.RangeInt(dice, -TreeFieldExtent, TreeFieldExtent),
		}
		if !treeEligible(s.Terrain, p) {
			continue
		}
		occupied := false
		for i := range s.Trees {
			if s.Trees[i].Position == p {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}
		s.Trees = append(s.Trees, world.NewTreeWithFruit(p, treeKindFor(s.Terrain, p, dice), dice))
		return true
	}
	return false
}

// ForageNodeAt finds the forage node covering a cell, creating a fresh
// one on first visit.
func (s *WorldState) ForageNodeAt(p world.Position, dice world.Dice) *world.ForageNode {
	for i := range s.ForageNodes {
		if s.ForageNodes[i].Position == p {
			return &s.ForageNodes[i]
		}
	}
	s.ForageNodes = append(s.ForageNodes, world.NewForageNode(p, s.Terrain.BiomeAt(p), dice))
	return &s.ForageNodes[len(s.ForageNodes)-1]
}

// HasAxe reports whether the player carries any axe.
func (s *WorldState) HasAxe() bool {
	return s.Player.Inventory.Has(ItemAxe, 1) || s.Player.Inventory.Has(ItemStoneAxe, 1)
}

// AmbientTemperature is the effective temperature where the player
// stands. Only the cabin's main room feels the fireplace.
func (s *WorldState) AmbientTemperature() float64 {
	loc := s.Player.Location
	if loc.Kind == LocationIndoors {
		if loc.Room == RoomCabinMain && s.Fireplace.State.Heat() > 0 {
			return IndoorFireBaseTemp + s.Fireplace.State.Heat()
		}
		return IndoorBaseTemp
	}
	biome := s.Terrain.BiomeAt(loc.Position)
	cond := s.Weather.At(loc.Position)
	return float64(biome.BaseTemp() + s.Clock.Phase().TempOffset() + cond.TempOffset())
}

// WeatherHere is the condition over the player, or over the cabin when
// indoors.
func (s *WorldState) WeatherHere() world.Condition {
	return s.Weather.At(s.Player.Location.Position)
}

// MarkDead flips the aggregate into its terminal state.
func (s *WorldState) MarkDead(cause DeathCause) {
	if s.Player.Dead {
		return
	}
	s.Player.Dead = true
	s.Player.DeathCause = cause
}

// Touch stamps the last-modified time.
func (s *WorldState) Touch(now time.Time) {
	s.UpdatedAt = now
}
