package world

// Condition is one regional weather state. Conditions shift outdoor
// temperature and scale visibility; the severe ones also slow work done
// outside.
type Condition string

const (
	ConditionClear     Condition = "clear"
	ConditionCloudy    Condition = "cloudy"
	ConditionOvercast  Condition = "overcast"
	ConditionLightRain Condition = "light_rain"
	ConditionHeavyRain Condition = "heavy_rain"
	ConditionFog       Condition = "fog"
	ConditionSandstorm Condition = "sandstorm"
	ConditionHeatWave  Condition = "heat_wave"
	ConditionLightSnow Condition = "light_snow"
	ConditionHeavySnow Condition = "heavy_snow"
	ConditionBlizzard  Condition = "blizzard"
)

// TempOffset is the condition's contribution to outdoor temperature.
func (c Condition) TempOffset() int {
	switch c {
	case ConditionClear:
		return 0
	case ConditionCloudy:
		return -2
	case ConditionOvercast:
		return -4
	case ConditionLightRain:
		return -5
	case ConditionHeavyRain:
		return -7
	case ConditionFog:
		return -2
	case ConditionSandstorm:
		return 5
	case ConditionHeatWave:
		return 10
	case ConditionLightSnow:
		return -3
	case ConditionHeavySnow:
		return -8
	case ConditionBlizzard:
		return -15
	}
	return 0
}

// Visibility is how far one can see under the condition, in [0, 1].
func (c Condition) Visibility() float64 {
	switch c {
	case ConditionClear:
		return 1.0
	case ConditionCloudy:
		return 0.9
	case ConditionOvercast:
		return 0.7
	case ConditionLightRain:
		return 0.6
	case ConditionHeavyRain:
		return 0.3
	case ConditionFog:
		return 0.2
	case ConditionSandstorm:
		return 0.1
	case ConditionHeatWave:
		return 0.8
	case ConditionLightSnow:
		return 0.7
	case ConditionHeavySnow:
		return 0.4
	case ConditionBlizzard:
		return 0.1
	}
	return 1.0
}

// Severe reports whether outdoor work is meaningfully harder under the
// condition. Severe weather adds time and energy to outdoor actions.
func (c Condition) Severe() bool {
	switch c {
	case ConditionBlizzard, ConditionHeavySnow, ConditionHeavyRain, ConditionSandstorm:
		return true
	}
	return false
}

// Label is the condition's display name.
func (c Condition) Label() string {
	switch c {
	case ConditionClear:
		return "clear"
	case ConditionCloudy:
		return "cloudy"
	case ConditionOvercast:
		return "overcast"
	case ConditionLightRain:
		return "light rain"
	case ConditionHeavyRain:
		return "heavy rain"
	case ConditionFog:
		return "foggy"
	case ConditionSandstorm:
		return "sandstorm"
	case ConditionHeatWave:
		return "heat wave"
	case ConditionLightSnow:
		return "light snow"
	case ConditionHeavySnow:
		return "heavy snow"
	case ConditionBlizzard:
		return "blizzard"
	}
	return string(c)
}

// ConditionCandidates lists what a region dominated by the biome can
// produce. Repeats weight the draw.
func ConditionCandidates(b Biome) []Condition {
	switch b {
	case BiomeDesert:
		return []Condition{
			ConditionClear, ConditionClear, ConditionClear,
			ConditionHeatWave, ConditionSandstorm,
		}
	case BiomeOasis:
		return []Condition{
			ConditionClear, ConditionClear, ConditionCloudy,
			ConditionHeatWave,
		}
	case BiomeWinterForest:
		return []Condition{
			ConditionClear, ConditionCloudy, ConditionOvercast,
			ConditionLightSnow, ConditionHeavySnow, ConditionBlizzard,
		}
	case BiomeLake:
		return []Condition{
			ConditionClear, ConditionCloudy, ConditionFog,
		}
	default:
		return []Condition{
			ConditionClear, ConditionCloudy, ConditionOvercast,
			ConditionLightRain, ConditionFog,
		}
	}
}

// ResampleEveryTicks gates how often the weather field may change, and
// resampleChance is the per-cell probability when it does.
const (
	ResampleEveryTicks = 10
	resampleChance     = 0.20
)

// Weather holds one condition per map quadrant. The north cell covers
// the spring forest, south the mixed woodland, east the winter forest
// and west the desert.
type Weather struct {
	North Condition `json:"north"`
	South Condition `json:"south"`
	East  Condition `json:"east"`
	West  Condition `json:"west"`
}

// NewWeather draws an initial condition for every cell.
func NewWeather(dice Dice) Weather {
	return Weather{
		North: drawCondition(BiomeSpringForest, dice),
		South: drawCondition(BiomeMixedForest, dice),
		East:  drawCondition(BiomeWinterForest, dice),
		West:  drawCondition(BiomeDesert, dice),
	}
}

// MaybeResample re-rolls each cell with independent probability, in the
// fixed order north, south, east, west. Only every tenth tick does
// anything; other ticks leave the field untouched.
func (w *Weather) MaybeResample(tick int64, dice Dice) {
	if tick%ResampleEveryTicks != 0 {
		return
	}
	if Chance(dice, resampleChance) {
		w.North = drawCondition(BiomeSpringForest, dice)
	}
	if Chance(dice, resampleChance) {
		w.South = drawCondition(BiomeMixedForest, dice)
	}
	if Chance(dice, resampleChance) {
		w.East = drawCondition(BiomeWinterForest, dice)
	}
	if Chance(dice, resampleChance) {
		w.West = drawCondition(BiomeDesert, dice)
	}
}

// At returns the cell covering the position. The axis with the larger
// offset from the origin wins; ties fall to the column axis.
func (w Weather) At(p Position) Condition {
	if absInt(p.Row) > absInt(p.Col) {
		if p.Row < 0 {
			return w.North
		}
		return w.South
	}
	if p.Col < 0 {
		return w.West
	}
	return w.East
}

func drawCondition(b Biome, dice Dice) Condition {
	cands := ConditionCandidates(b)
	return cands[dice.IntN(len(cands))]
}
