// Command worldmap prints the terrain around the cabin as ASCII, one
// glyph per cell. Handy for eyeballing biome boundaries after touching
// the terrain rules.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"emberside/internal/domain/world"
)

func main() {
	var radius int
	flag.IntVar(&radius, "radius", 12, "half-width of the window around the cabin")
	flag.Parse()

	terrain := world.NewTerrain()
	if radius < 1 || radius > terrain.Extent {
		log.Fatalf("radius must be between 1 and %d", terrain.Extent)
	}

	for row := -radius; row <= radius; row++ {
		var b strings.Builder
		for col := -radius; col <= radius; col++ {
			b.WriteByte(glyphAt(terrain, world.Position{Row: row, Col: col}))
		}
		fmt.Println(b.String())
	}

	fmt.Println()
	for _, biome := range []world.Biome{
		world.BiomeClearing,
		world.BiomeLake,
		world.BiomeOasis,
		world.BiomeDesert,
		world.BiomeWinterForest,
		world.BiomeSpringForest,
		world.BiomeBambooGrove,
		world.BiomePath,
		world.BiomeMixedForest,
	} {
		fmt.Printf("%c  %s (base %d degrees)\n", glyphFor(biome), biome.Label(), biome.BaseTemp())
	}
	fmt.Println("#  map border")
}

func glyphAt(t world.Terrain, p world.Position) byte {
	if !t.IsWalkable(p) && !t.IsWater(p) {
		return '#'
	}
	return glyphFor(t.BiomeAt(p))
}

func glyphFor(b world.Biome) byte {
	switch b {
	case world.BiomeClearing:
		return 'C'
	case world.BiomeLake:
		return '~'
	case world.BiomeOasis:
		return 'o'
	case world.BiomeDesert:
		return '.'
	case world.BiomeWinterForest:
		return '*'
	case world.BiomeSpringForest:
		return 's'
	case world.BiomeBambooGrove:
		return 'b'
	case world.BiomePath:
		return ':'
	case world.BiomeMixedForest:
		return 'f'
	}
	return '?'
}
