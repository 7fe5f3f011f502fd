package world

import "testing"

func TestBiomeLayout(t *testing.T) {
	terr := NewTerrain()
	cases := []struct {
		pos  Position
		want Biome
	}{
		{Position{0, 0}, BiomeClearing},
		{Position{-1, -1}, BiomeClearing},
		{Position{-3, 0}, BiomeLake},
		{Position{-3, -3}, BiomeOasis},
		{Position{0, -2}, BiomeBambooGrove},
		{Position{0, -6}, BiomeDesert},
		{Position{0, 6}, BiomeWinterForest},
		{Position{-6, 0}, BiomeSpringForest},
		{Position{2, 0}, BiomePath},
		{Position{3, 3}, BiomeMixedForest},
	}
	for _, tc := range cases {
		if got := terr.BiomeAt(tc.pos); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.pos, tc.want, got)
		}
	}
}

func TestWalkability(t *testing.T) {
	terr := NewTerrain()

	if terr.IsWalkable(Position{-3, 0}) {
		t.Fatalf("expected lake water to be impassable")
	}
	if terr.IsWalkable(Position{-2, -4}) {
		t.Fatalf("expected oasis shore inside the lake rectangle to be impassable")
	}
	if terr.IsWalkable(Position{50, 0}) || terr.IsWalkable(Position{0, -50}) {
		t.Fatalf("expected the map border to be impassable")
	}
	if terr.IsWalkable(Position{51, 0}) {
		t.Fatalf("expected out of bounds to be impassable")
	}
	if !terr.IsWalkable(Position{1, 1}) {
		t.Fatalf("expected open ground to be walkable")
	}
}

func TestNearWater(t *testing.T) {
	terr := NewTerrain()
	if !terr.NearWater(Position{0, 2}) {
		t.Fatalf("expected the lake shore to count as near water")
	}
	if terr.NearWater(Position{10, 10}) {
		t.Fatalf("expected deep forest to be far from water")
	}
}

func TestDominantDirection(t *testing.T) {
	terr := NewTerrain()
	cases := []struct {
		pos  Position
		want Direction
	}{
		{Position{-10, 2}, DirectionNorth},
		{Position{10, -2}, DirectionSouth},
		{Position{2, -10}, DirectionWest},
		{Position{3, 9}, DirectionEast},
		{Position{0, 0}, DirectionEast},
		{Position{5, -5}, DirectionWest},
	}
	for _, tc := range cases {
		if got := terr.DominantDirection(tc.pos); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.pos, tc.want, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection(" North "); !ok || d != DirectionNorth {
		t.Fatalf("expected north, got %q ok=%v", d, ok)
	}
	if d, ok := ParseDirection("w"); !ok || d != DirectionWest {
		t.Fatalf("expected west, got %q ok=%v", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Fatalf("expected up to be rejected")
	}
}

func TestPositionStepAndDistance(t *testing.T) {
	p := Position{Row: 2, Col: 3}
	if got := p.Step(DirectionNorth); got != (Position{Row: 1, Col: 3}) {
		t.Fatalf("expected (1, 3), got %s", got)
	}
	if got := p.DistanceTo(Position{Row: 2, Col: 6}); got != 3 {
		t.Fatalf("expected distance 3, got %v", got)
	}
}
