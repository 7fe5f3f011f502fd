package world

import "testing"

func TestWeatherResamplesOnlyOnTenthTick(t *testing.T) {
	w := Weather{
		North: ConditionClear,
		South: ConditionClear,
		East:  ConditionClear,
		West:  ConditionClear,
	}

	hot := &scriptDice{floats: []float64{0.0, 0.0, 0.0, 0.0}, ints: []int{1, 1, 1, 1}}
	w.MaybeResample(7, hot)
	if w.North != ConditionClear || w.South != ConditionClear {
		t.Fatalf("expected no change off the resample tick, got %+v", w)
	}

	d := &scriptDice{floats: []float64{0.1, 0.9, 0.9, 0.9}, ints: []int{3}}
	w.MaybeResample(10, d)
	if w.North != ConditionLightRain {
		t.Fatalf("expected north to resample to light rain, got %s", w.North)
	}
	if w.South != ConditionClear || w.East != ConditionClear || w.West != ConditionClear {
		t.Fatalf("expected other cells untouched, got %+v", w)
	}
}

func TestWeatherCellsDrawFromTheirBiomes(t *testing.T) {
	// Last candidate of every region list.
	d := &scriptDice{
		floats: []float64{0.1, 0.1, 0.1, 0.1},
		ints:   []int{4, 4, 5, 4},
	}
	w := Weather{North: ConditionClear, South: ConditionClear, East: ConditionClear, West: ConditionClear}
	w.MaybeResample(20, d)
	if w.North != ConditionFog {
		t.Fatalf("expected fog in the north, got %s", w.North)
	}
	if w.South != ConditionFog {
		t.Fatalf("expected fog in the south, got %s", w.South)
	}
	if w.East != ConditionBlizzard {
		t.Fatalf("expected blizzard in the east, got %s", w.East)
	}
	if w.West != ConditionSandstorm {
		t.Fatalf("expected sandstorm in the west, got %s", w.West)
	}
}

func TestWeatherAtPicksDominantQuadrant(t *testing.T) {
	w := Weather{
		North: ConditionFog,
		South: ConditionLightRain,
		East:  ConditionBlizzard,
		West:  ConditionSandstorm,
	}
	cases := []struct {
		pos  Position
		want Condition
	}{
		{Position{-10, 1}, ConditionFog},
		{Position{10, 0}, ConditionLightRain},
		{Position{0, -8}, ConditionSandstorm},
		{Position{3, 9}, ConditionBlizzard},
		{Position{0, 0}, ConditionBlizzard},
	}
	for _, tc := range cases {
		if got := w.At(tc.pos); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.pos, tc.want, got)
		}
	}
}

func TestSevereConditions(t *testing.T) {
	severe := []Condition{ConditionBlizzard, ConditionHeavySnow, ConditionHeavyRain, ConditionSandstorm}
	for _, c := range severe {
		if !c.Severe() {
			t.Fatalf("expected %s to be severe", c)
		}
	}
	if ConditionClear.Severe() || ConditionFog.Severe() {
		t.Fatalf("expected calm conditions not to be severe")
	}
}
