package world

import (
	"fmt"
	"math"
	"strings"
)

// DefaultExtent is the half-width of the map. World coordinates span
// [-DefaultExtent, DefaultExtent] on both axes with the cabin clearing
// at the origin.
const DefaultExtent = 50

// Position addresses a map cell. Row grows southward, column eastward.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// DistanceTo is the straight-line distance between two positions.
func (p Position) DistanceTo(q Position) float64 {
	dr := float64(p.Row - q.Row)
	dc := float64(p.Col - q.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is a compass heading on the map grid.
type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

// Delta returns the row and column step for the heading.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionNorth:
		return -1, 0
	case DirectionSouth:
		return 1, 0
	case DirectionEast:
		return 0, 1
	case DirectionWest:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionNorth:
		return DirectionSouth
	case DirectionSouth:
		return DirectionNorth
	case DirectionEast:
		return DirectionWest
	case DirectionWest:
		return DirectionEast
	}
	return d
}

// ParseDirection accepts full names and single-letter abbreviations.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return DirectionNorth, true
	case "s", "south":
		return DirectionSouth, true
	case "e", "east":
		return DirectionEast, true
	case "w", "west":
		return DirectionWest, true
	}
	return "", false
}

// Biome classifies terrain. The biome fixes the resting temperature and
// which weather conditions the surrounding region can produce.
type Biome string

const (
	BiomeDesert       Biome = "desert"
	BiomeOasis        Biome = "oasis"
	BiomeSpringForest Biome = "spring_forest"
	BiomeWinterForest Biome = "winter_forest"
	BiomeLake         Biome = "lake"
	BiomeMixedForest  Biome = "mixed_forest"
	BiomePath         Biome = "path"
	BiomeBambooGrove  Biome = "bamboo_grove"
	BiomeClearing     Biome = "clearing"
)

// BaseTemp is the biome's resting temperature in degrees before time of
// day and weather adjustments.
func (b Biome) BaseTemp() int {
	switch b {
	case BiomeDesert:
		return 35
	case BiomeOasis:
		return 28
	case BiomeSpringForest:
		return 18
	case BiomeWinterForest:
		return -5
	case BiomeLake:
		return 15
	case BiomeMixedForest:
		return 20
	case BiomePath:
		return 20
	case BiomeBambooGrove:
		return 22
	case BiomeClearing:
		return 20
	}
	return 20
}

// Label is the biome's display name.
func (b Biome) Label() string {
	switch b {
	case BiomeDesert:
		return "scorching desert"
	case BiomeOasis:
		return "refreshing oasis"
	case BiomeSpringForest:
		return "temperate forest"
	case BiomeWinterForest:
		return "snowy forest"
	case BiomeLake:
		return "tranquil lake"
	case BiomeMixedForest:
		return "mixed woodland"
	case BiomePath:
		return "worn forest path"
	case BiomeBambooGrove:
		return "bamboo grove"
	case BiomeClearing:
		return "clearing"
	}
	return string(b)
}

// Terrain derives every cell of the map from its coordinates. Nothing is
// stored per cell, so the same position always resolves to the same biome.
type Terrain struct {
	Extent int `json:"extent"`
}

func NewTerrain() Terrain {
	return Terrain{Extent: DefaultExtent}
}

// InBounds reports whether the position lies on the map at all.
func (t Terrain) InBounds(p Position) bool {
	return absInt(p.Row) <= t.Extent && absInt(p.Col) <= t.Extent
}

// BiomeAt resolves the biome for a position. The rules are ordered and
// the first match wins.
func (t Terrain) BiomeAt(p Position) Biome {
	if t.inLakeRect(p) {
		if p.Col <= -3 {
			return BiomeOasis
		}
		return BiomeLake
	}
	if (p.Row == 0 && p.Col == 0) || (p.Row == -1 && p.Col == -1) {
		return BiomeClearing
	}
	if p.Row >= 0 && p.Row <= 1 && p.Col >= -3 && p.Col <= -1 {
		return BiomeBambooGrove
	}
	if p.Col <= -5 {
		return BiomeDesert
	}
	if p.Col >= 5 {
		return BiomeWinterForest
	}
	if p.Row <= -4 {
		return BiomeSpringForest
	}
	if p.Col == 0 && p.Row >= 1 && p.Row <= 5 {
		return BiomePath
	}
	return BiomeMixedForest
}

// IsWater reports whether the position is open water. The whole lake
// rectangle counts, including the oasis shore cells inside it.
func (t Terrain) IsWater(p Position) bool {
	return t.inLakeRect(p)
}

// IsWalkable reports whether the player can stand on the position. Water
// and the map border are impassable.
func (t Terrain) IsWalkable(p Position) bool {
	if !t.InBounds(p) {
		return false
	}
	if absInt(p.Row) == t.Extent || absInt(p.Col) == t.Extent {
		return false
	}
	return !t.IsWater(p)
}

// NearWater reports whether the position touches the lake, diagonals
// included. Drinking from the lake and fishing require it.
func (t Terrain) NearWater(p Position) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if t.IsWater(Position{Row: p.Row + dr, Col: p.Col + dc}) {
				return true
			}
		}
	}
	return false
}

// DominantDirection picks the compass quadrant a position belongs to.
// The axis with the larger offset from the origin wins; ties fall to
// the column axis.
func (t Terrain) DominantDirection(p Position) Direction {
	if absInt(p.Row) > absInt(p.Col) {
		if p.Row < 0 {
			return DirectionNorth
		}
		return DirectionSouth
	}
	if p.Col < 0 {
		return DirectionWest
	}
	return DirectionEast
}

func (t Terrain) inLakeRect(p Position) bool {
	return p.Row >= -5 && p.Row <= -1 && p.Col >= -4 && p.Col <= 4
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
