package survival

import (
	"fmt"

	"emberside/internal/domain/world"
)

// DescribeSurroundings narrates what the survivor can see from where
// they stand. Outdoors the weather decides how far that is.
func DescribeSurroundings(s *WorldState) []string {
	if s.Player.Location.Kind == LocationIndoors {
		return describeRoom(s)
	}

	pos := s.Player.Location.Position
	biome := s.Terrain.BiomeAt(pos)
	cond := s.Weather.At(pos)

	lines := []string{
		fmt.Sprintf("You stand in %s.", biome.Label()),
		weatherLine(cond),
		fmt.Sprintf("It is %s on day %d.", s.Clock.Phase(), s.Clock.Day),
	}

	if s.Terrain.NearWater(pos) {
		lines = append(lines, "The water's edge is close by.")
	}

	if tree := s.TreeAt(pos); tree != nil {
		lines = append(lines, tree.Description())
	} else {
		for _, dir := range []world.Direction{world.DirectionNorth, world.DirectionSouth, world.DirectionEast, world.DirectionWest} {
			if tree := s.TreeAt(pos.Step(dir)); tree != nil {
				lines = append(lines, fmt.Sprintf("To the %s: %s", dir, tree.Description()))
				break
			}
		}
	}

	visibility := cond.Visibility()
	if visibility < 0.3 {
		lines = append(lines, "You can barely see past your outstretched hand.")
		return lines
	}

	for _, lm := range world.Landmarks() {
		if pos.DistanceTo(lm.Position) <= 3 {
			lines = append(lines, landmarkLine(lm.Kind))
		}
	}

	radius := 1 + 3*visibility
	seen := 0
	for i := range s.Wildlife {
		if seen >= 4 {
			break
		}
		a := &s.Wildlife[i]
		if pos.DistanceTo(a.Position) <= radius {
			lines = append(lines, a.Describe())
			seen++
		}
	}
	return lines
}

func describeRoom(s *WorldState) []string {
	switch s.Player.Location.Room {
	case RoomCabinMain:
		lines := []string{
			"You are in the cabin's main room. Log walls hold the weather out.",
			fmt.Sprintf("The fireplace is %s.", s.Fireplace.State.Label()),
		}
		if !s.CabinShelf.Empty() {
			var parts []string
			for _, stack := range s.CabinShelf.List() {
				parts = append(parts, StackLabel(stack.Item, stack.Count))
			}
			lines = append(lines, "The shelf holds "+joinList(parts)+".")
		}
		return lines

	case RoomCabinTerrace:
		return []string{
			"You stand on the covered terrace. The clearing stretches out below.",
			weatherLine(s.Weather.At(s.Player.Location.Position)),
		}

	case RoomWoodShed:
		lines := []string{
			"You are in the wood shed. It smells of sap and old sawdust.",
			fmt.Sprintf("The pile holds %d logs and %d pieces of firewood.", s.Shed.Logs, s.Shed.Firewood),
		}
		if s.Shed.AxeOnFloor {
			lines = append(lines, "The axe leans against the chopping block.")
		}
		return lines
	}
	return []string{"You are inside, somewhere dim."}
}

func weatherLine(c world.Condition) string {
	switch c {
	case world.ConditionClear:
		return "The sky is clear."
	case world.ConditionCloudy:
		return "Clouds drift overhead."
	case world.ConditionOvercast:
		return "A grey ceiling of cloud hangs low."
	case world.ConditionLightRain:
		return "A light rain patters down."
	case world.ConditionHeavyRain:
		return "Heavy rain hammers the ground."
	case world.ConditionFog:
		return "Fog hangs thick in the air."
	case world.ConditionSandstorm:
		return "Wind-driven sand scours everything in sight."
	case world.ConditionHeatWave:
		return "The air shimmers with heat."
	case world.ConditionLightSnow:
		return "Light snow sifts down."
	case world.ConditionHeavySnow:
		return "Snow falls thick and fast."
	case world.ConditionBlizzard:
		return "The blizzard howls around you."
	}
	return "The weather holds steady."
}
