package survival

import (
	"fmt"

	"github.com/google/uuid"

	"emberside/internal/domain/world"
)

// Species names a kind of animal roaming the map.
type Species string

const (
	SpeciesDeer         Species = "deer"
	SpeciesRabbit       Species = "rabbit"
	SpeciesSquirrel     Species = "squirrel"
	SpeciesSongbird     Species = "songbird"
	SpeciesWoodpecker   Species = "woodpecker"
	SpeciesFox          Species = "fox"
	SpeciesDesertLizard Species = "desert_lizard"
	SpeciesScorpion     Species = "scorpion"
	SpeciesDesertFox    Species = "desert_fox"
	SpeciesHawk         Species = "hawk"
	SpeciesRattlesnake  Species = "rattlesnake"
	SpeciesSnowFox      Species = "snow_fox"
	SpeciesOwl          Species = "owl"
	SpeciesWolf         Species = "wolf"
	SpeciesCaribou      Species = "caribou"
	SpeciesSnowHare     Species = "snow_hare"
	SpeciesDuck         Species = "duck"
	SpeciesFish         Species = "fish"
	SpeciesHeron        Species = "heron"
	SpeciesFrog         Species = "frog"
	SpeciesDragonfly    Species = "dragonfly"
	SpeciesButterfly    Species = "butterfly"
	SpeciesBee          Species = "bee"
	SpeciesPig          Species = "pig"
)

func (s Species) Name() string {
	switch s {
	case SpeciesDesertLizard:
		return "desert lizard"
	case SpeciesDesertFox:
		return "fennec fox"
	case SpeciesSnowFox:
		return "arctic fox"
	case SpeciesOwl:
		return "snowy owl"
	case SpeciesSnowHare:
		return "snowshoe hare"
	default:
		return string(s)
	}
}

// NativeBiomes lists where the species is willing to wander. An animal
// never steps onto a cell outside its native set.
func (s Species) NativeBiomes() []world.Biome {
	switch s {
	case SpeciesDeer, SpeciesRabbit, SpeciesSquirrel, SpeciesSongbird, SpeciesWoodpecker, SpeciesFox:
		return []world.Biome{world.BiomeSpringForest, world.BiomeMixedForest}
	case SpeciesDesertLizard, SpeciesScorpion, SpeciesDesertFox, SpeciesHawk, SpeciesRattlesnake:
		return []world.Biome{world.BiomeDesert, world.BiomeOasis}
	case SpeciesSnowFox, SpeciesOwl, SpeciesWolf, SpeciesCaribou, SpeciesSnowHare:
		return []world.Biome{world.BiomeWinterForest}
	case SpeciesDuck, SpeciesFish, SpeciesHeron, SpeciesFrog, SpeciesDragonfly:
		return []world.Biome{world.BiomeLake, world.BiomeOasis}
	case SpeciesButterfly, SpeciesBee:
		return []world.Biome{world.BiomeSpringForest, world.BiomeMixedForest, world.BiomeOasis}
	case SpeciesPig:
		return []world.Biome{world.BiomePath, world.BiomeClearing, world.BiomeMixedForest}
	default:
		return []world.Biome{world.BiomeMixedForest}
	}
}

func (s Species) Predator() bool {
	switch s {
	case SpeciesFox, SpeciesDesertFox, SpeciesSnowFox, SpeciesHawk, SpeciesWolf,
		SpeciesOwl, SpeciesRattlesnake, SpeciesScorpion, SpeciesHeron:
		return true
	}
	return false
}

// Schedule says when a species is up and about.
type Schedule string

const (
	ScheduleDiurnal     Schedule = "diurnal"
	ScheduleNocturnal   Schedule = "nocturnal"
	ScheduleCrepuscular Schedule = "crepuscular"
)

func (s Species) Schedule() Schedule {
	switch s {
	case SpeciesOwl, SpeciesWolf, SpeciesScorpion:
		return ScheduleNocturnal
	case SpeciesDeer, SpeciesRabbit, SpeciesFox, SpeciesPig:
		return ScheduleCrepuscular
	default:
		return ScheduleDiurnal
	}
}

func (s Schedule) Active(phase world.Phase) bool {
	switch s {
	case ScheduleNocturnal:
		return phase == world.PhaseNight || phase == world.PhaseMidnight || phase == world.PhaseEvening
	case ScheduleCrepuscular:
		return phase == world.PhaseDawn || phase == world.PhaseDusk ||
			phase == world.PhaseMorning || phase == world.PhaseEvening
	default:
		return phase == world.PhaseMorning || phase == world.PhaseNoon || phase == world.PhaseAfternoon
	}
}

// Behavior is what an animal is currently doing.
type Behavior string

const (
	BehaviorSleeping Behavior = "sleeping"
	BehaviorResting  Behavior = "resting"
	BehaviorGrazing  Behavior = "grazing"
	BehaviorForaging Behavior = "foraging"
	BehaviorHunting  Behavior = "hunting"
	BehaviorMoving   Behavior = "moving"
	BehaviorAlert    Behavior = "alert"
	BehaviorFleeing  Behavior = "fleeing"
	BehaviorSwimming Behavior = "swimming"
	BehaviorSinging  Behavior = "singing"
	BehaviorBasking  Behavior = "basking"
)

func behaviorTable(s Species) []Behavior {
	switch s {
	case SpeciesDeer, SpeciesCaribou:
		return []Behavior{BehaviorGrazing, BehaviorGrazing, BehaviorMoving, BehaviorAlert, BehaviorResting}
	case SpeciesRabbit, SpeciesSnowHare, SpeciesSquirrel:
		return []Behavior{BehaviorForaging, BehaviorForaging, BehaviorMoving, BehaviorAlert, BehaviorResting}
	case SpeciesFox, SpeciesDesertFox, SpeciesSnowFox, SpeciesWolf:
		return []Behavior{BehaviorHunting, BehaviorMoving, BehaviorResting, BehaviorAlert}
	case SpeciesSongbird, SpeciesFrog:
		return []Behavior{BehaviorSinging, BehaviorSinging, BehaviorMoving, BehaviorResting}
	case SpeciesDuck:
		return []Behavior{BehaviorSwimming, BehaviorSwimming, BehaviorForaging, BehaviorResting}
	case SpeciesDesertLizard:
		return []Behavior{BehaviorBasking, BehaviorBasking, BehaviorMoving, BehaviorHunting}
	case SpeciesHawk, SpeciesOwl, SpeciesHeron:
		return []Behavior{BehaviorHunting, BehaviorHunting, BehaviorResting}
	default:
		return []Behavior{BehaviorMoving, BehaviorResting, BehaviorForaging}
	}
}

// RandomBehavior rolls what a species would be doing at the given phase.
// Off-schedule animals mostly sleep.
func RandomBehavior(s Species, phase world.Phase, dice world.Dice) Behavior {
	if !s.Schedule().Active(phase) {
		if world.Chance(dice, 0.8) {
			return BehaviorSleeping
		}
		return BehaviorResting
	}
	table := behaviorTable(s)
	return table[dice.IntN(len(table))]
}

// Animal is one creature on the map.
type Animal struct {
	ID       string         `json:"id"`
	Species  Species        `json:"species"`
	Position world.Position `json:"position"`
	Behavior Behavior       `json:"behavior"`
}

func NewAnimal(s Species, p world.Position) Animal {
	return Animal{ID: uuid.NewString(), Species: s, Position: p, Behavior: BehaviorResting}
}

// Update re-rolls behavior now and then and lets moving animals drift
// one cell, never off their native biomes. Severe weather pins most of
// them down.
func (a *Animal) Update(phase world.Phase, terrain world.Terrain, weather world.Weather, dice world.Dice) {
	severe := weather.At(a.Position).Severe()

	if world.Chance(dice, 0.3) {
		if !a.Species.Schedule().Active(phase) || severe {
			if world.Chance(dice, 0.7) {
				a.Behavior = BehaviorSleeping
			} else {
				a.Behavior = BehaviorResting
			}
		} else {
			a.Behavior = RandomBehavior(a.Species, phase, dice)
		}
	}

	if a.Behavior != BehaviorMoving && a.Behavior != BehaviorFleeing {
		return
	}
	if severe && world.Chance(dice, 0.7) {
		return
	}
	dirs := [4]world.Direction{world.DirectionNorth, world.DirectionSouth, world.DirectionEast, world.DirectionWest}
	next := a.Position.Step(dirs[dice.IntN(4)])
	if !terrain.InBounds(next) {
		return
	}
	biome := terrain.BiomeAt(next)
	for _, native := range a.Species.NativeBiomes() {
		if biome == native {
			a.Position = next
			return
		}
	}
}

// Describe narrates the animal in its current behavior.
func (a Animal) Describe() string {
	name := a.Species.Name()
	switch {
	case a.Species == SpeciesDeer && a.Behavior == BehaviorGrazing:
		return fmt.Sprintf("A %s grazes peacefully on tender grass.", name)
	case a.Species == SpeciesDeer && a.Behavior == BehaviorAlert:
		return fmt.Sprintf("A %s stands frozen, ears twitching at some distant sound.", name)
	case a.Species == SpeciesDeer && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s bounds gracefully between the trees.", name)
	case a.Species == SpeciesRabbit && a.Behavior == BehaviorForaging:
		return fmt.Sprintf("A %s nibbles on clover, nose twitching constantly.", name)
	case a.Species == SpeciesRabbit && a.Behavior == BehaviorAlert:
		return fmt.Sprintf("A %s sits upright, scanning for danger.", name)
	case a.Species == SpeciesSquirrel && a.Behavior == BehaviorForaging:
		return fmt.Sprintf("A %s busily gathers acorns, stuffing its cheeks.", name)
	case a.Species == SpeciesSquirrel && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s scampers up a tree trunk in spiraling leaps.", name)
	case a.Species == SpeciesSongbird && a.Behavior == BehaviorSinging:
		return fmt.Sprintf("A %s trills a beautiful melody from the branches.", name)
	case a.Species == SpeciesSongbird && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s flutters between branches.", name)
	case a.Species == SpeciesWoodpecker:
		return fmt.Sprintf("A %s drums rhythmically against a tree trunk.", name)
	case a.Species == SpeciesFox && a.Behavior == BehaviorHunting:
		return fmt.Sprintf("A %s stalks through the underbrush, focused and silent.", name)
	case a.Species == SpeciesFox && a.Behavior == BehaviorResting:
		return fmt.Sprintf("A %s curls up in a sunny patch, tail wrapped around its nose.", name)
	case a.Species == SpeciesDesertLizard && a.Behavior == BehaviorBasking:
		return fmt.Sprintf("A %s basks on a sun-warmed rock.", name)
	case a.Species == SpeciesDesertLizard && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s skitters across the hot sand.", name)
	case a.Species == SpeciesScorpion:
		return fmt.Sprintf("A %s lurks beneath a rock, pincers raised.", name)
	case a.Species == SpeciesDesertFox && a.Behavior == BehaviorResting:
		return fmt.Sprintf("A %s with oversized ears rests in the shade.", name)
	case a.Species == SpeciesHawk && a.Behavior == BehaviorHunting:
		return fmt.Sprintf("A %s circles overhead, riding thermal currents.", name)
	case a.Species == SpeciesHawk && a.Behavior == BehaviorResting:
		return fmt.Sprintf("A %s perches on a dead branch, surveying its domain.", name)
	case a.Species == SpeciesSnowFox && a.Behavior == BehaviorHunting:
		return fmt.Sprintf("An %s blends almost invisibly with the snow, stalking prey.", name)
	case a.Species == SpeciesSnowFox && a.Behavior == BehaviorResting:
		return fmt.Sprintf("An %s curls into a perfect white ball against the snow.", name)
	case a.Species == SpeciesOwl:
		return fmt.Sprintf("A %s watches silently from a high branch, golden eyes unblinking.", name)
	case a.Species == SpeciesWolf && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s lopes through the snow, breath visible in the cold air.", name)
	case a.Species == SpeciesWolf && a.Behavior == BehaviorAlert:
		return "In the distance, a wolf howls - a haunting, beautiful sound."
	case a.Species == SpeciesCaribou && a.Behavior == BehaviorGrazing:
		return fmt.Sprintf("A %s paws through snow to reach the lichen beneath.", name)
	case a.Species == SpeciesCaribou && a.Behavior == BehaviorMoving:
		return fmt.Sprintf("A %s trudges through deep snow, antlers swaying.", name)
	case a.Species == SpeciesSnowHare:
		return fmt.Sprintf("A %s is barely visible against the white landscape.", name)
	case a.Species == SpeciesDuck && a.Behavior == BehaviorSwimming:
		return fmt.Sprintf("A family of %ss glides across the still water.", name)
	case a.Species == SpeciesDuck:
		return fmt.Sprintf("Several %ss bob gently on the lake's surface.", name)
	case a.Species == SpeciesFish:
		return "A fish breaks the surface briefly, creating rippling circles."
	case a.Species == SpeciesHeron && a.Behavior == BehaviorHunting:
		return fmt.Sprintf("A %s stands motionless in the shallows, waiting to strike.", name)
	case a.Species == SpeciesHeron && a.Behavior == BehaviorResting:
		return fmt.Sprintf("A %s preens its feathers on the shore.", name)
	case a.Species == SpeciesFrog && a.Behavior == BehaviorSinging:
		return "Frogs chorus in a symphony of croaks and chirps."
	case a.Species == SpeciesFrog:
		return fmt.Sprintf("A %s sits on a lily pad, throat pulsing.", name)
	case a.Species == SpeciesDragonfly:
		return fmt.Sprintf("A %s hovers over the water, wings catching the light like stained glass.", name)
	case a.Species == SpeciesButterfly:
		return fmt.Sprintf("A %s drifts lazily among the wildflowers.", name)
	case a.Species == SpeciesBee:
		return fmt.Sprintf("A %s buzzes busily from flower to flower.", name)
	case a.Species == SpeciesPig && a.Behavior == BehaviorGrazing:
		return "A small pig snuffles through the grass, snout rooting gently in the soil."
	case a.Species == SpeciesPig && a.Behavior == BehaviorResting:
		return "A small pig lies on its side in the clearing, sides rising and falling with slow breaths."
	case a.Species == SpeciesPig && a.Behavior == BehaviorMoving:
		return "A small pig trots along the path near the cabin, ears flicking at every sound."
	case a.Species == SpeciesPig && a.Behavior == BehaviorAlert:
		return "A small pig freezes for a moment, nose lifted as it tests the air."
	case a.Behavior == BehaviorSleeping:
		return fmt.Sprintf("A %s sleeps peacefully.", name)
	case a.Behavior == BehaviorFleeing:
		return fmt.Sprintf("A %s darts away, startled.", name)
	default:
		return fmt.Sprintf("A %s is %s nearby.", name, a.Behavior)
	}
}

// SpawnWildlife seats the starting population in its home ranges.
func SpawnWildlife(dice world.Dice) []Animal {
	var animals []Animal
	spawn := func(s Species, count int, rowLo, rowHi, colLo, colHi int) {
		for i := 0; i < count; i++ {
			p := world.Position{
				Row: world.RangeInt(dice, rowLo, rowHi),
				Col: world.RangeInt(dice, colLo, colHi),
			}
			animals = append(animals, NewAnimal(s, p))
		}
	}

	// Spring forest band, north of the lake.
	spawn(SpeciesDeer, 3, -12, -5, -4, 4)
	spawn(SpeciesRabbit, 4, -11, -4, -4, 4)
	spawn(SpeciesSquirrel, 3, -10, -4, -3, 3)
	spawn(SpeciesSongbird, 5, -10, -4, -4, 4)

	// Desert, far west.
	spawn(SpeciesDesertLizard, 3, -3, 4, -14, -8)
	spawn(SpeciesScorpion, 1, -2, 2, -14, -9)
	spawn(SpeciesDesertFox, 1, -2, 3, -12, -9)
	spawn(SpeciesHawk, 1, -1, 3, -10, -8)

	// Winter forest, far east.
	spawn(SpeciesSnowFox, 2, -4, 4, 7, 12)
	spawn(SpeciesOwl, 1, -3, 3, 9, 12)
	spawn(SpeciesCaribou, 1, -3, 2, 8, 11)

	// Lake and its shore.
	spawn(SpeciesDuck, 4, -6, -1, -4, 4)
	spawn(SpeciesFish, 3, -6, -1, -4, 4)
	spawn(SpeciesHeron, 1, -5, -2, -3, 3)
	spawn(SpeciesFrog, 2, -5, -1, -3, 3)
	spawn(SpeciesDragonfly, 2, -5, -1, -3, 3)

	// Around the cabin.
	spawn(SpeciesPig, 3, 0, 3, -1, 1)

	return animals
}
