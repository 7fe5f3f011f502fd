package survival

import (
	"fmt"
	"strings"

	"emberside/internal/domain/world"
)

func (ResolverService) resolveMove(s *WorldState, intent ActionIntent) ResolveResult {
	if !s.Player.Location.Outdoors() {
		return ResolveResult{Outcome: Failure("You are inside. Step out before setting off.")}
	}
	dir, ok := world.ParseDirection(intent.Direction)
	if !ok {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("%q is not a direction you can walk.", intent.Direction))}
	}

	s.Player.Facing = dir
	next := s.Player.Location.Position.Step(dir)
	if !s.Terrain.IsWalkable(next) {
		if s.Terrain.IsWater(next) {
			return ResolveResult{Outcome: Failure("The lake bars your way. The water is dark and cold.")}
		}
		return ResolveResult{Outcome: Failure("The way is blocked by an impassable wall of bramble and rock.")}
	}

	s.Player.Location.Position = next
	text := fmt.Sprintf("You head %s into the %s.", dir, s.Terrain.BiomeAt(next).Label())
	if tree := s.TreeAt(next); tree != nil {
		text += " " + tree.Description()
	}
	for _, lm := range world.Landmarks() {
		if lm.Position == next {
			text += " " + landmarkLine(lm.Kind)
		}
	}
	return ResolveResult{Outcome: Timed(text, 1, 1)}
}

func landmarkLine(kind world.LandmarkKind) string {
	switch kind {
	case world.LandmarkCabin:
		return "The cabin stands here, smoke hole dark above the chimney."
	case world.LandmarkWoodShed:
		return "The wood shed leans here, its door hanging ajar."
	case world.LandmarkCaveEntrance:
		return "A dark cave mouth opens in the rocks."
	}
	return ""
}

func (ResolverService) resolveEnter(s *WorldState, intent ActionIntent) ResolveResult {
	target := strings.ReplaceAll(normalizeName(intent.Target), " ", "_")
	loc := s.Player.Location

	switch target {
	case "cabin", "cabin_main", "main_room":
		switch {
		case loc.InRoom(RoomCabinMain):
			return ResolveResult{Outcome: Failure("You are already in the cabin.")}
		case loc.InRoom(RoomCabinTerrace):
			s.Player.Location = InsideRoom(RoomCabinMain, loc.Position)
			return ResolveResult{Outcome: Timed("You step in from the terrace.", 1, 0)}
		case loc.Kind == LocationIndoors:
			return ResolveResult{Outcome: Failure("There is no door to the cabin from here.")}
		}
		lm, near := world.LandmarkNear(loc.Position, world.LandmarkCabin, 1)
		if !near {
			return ResolveResult{Outcome: Failure("The cabin is not close enough to enter from here.")}
		}
		s.Player.Location = InsideRoom(RoomCabinMain, lm.Position)
		return ResolveResult{Outcome: Timed("You push the cabin door open and step inside.", 1, 0)}

	case "terrace", "cabin_terrace":
		if !loc.InRoom(RoomCabinMain) {
			return ResolveResult{Outcome: Failure("The terrace opens off the cabin's main room.")}
		}
		s.Player.Location = InsideRoom(RoomCabinTerrace, loc.Position)
		return ResolveResult{Outcome: Timed("You step out onto the covered terrace.", 1, 0)}

	case "shed", "wood_shed", "woodshed":
		if loc.Kind == LocationIndoors {
			return ResolveResult{Outcome: Failure("You'll have to go outside first.")}
		}
		lm, near := world.LandmarkNear(loc.Position, world.LandmarkWoodShed, 1)
		if !near {
			return ResolveResult{Outcome: Failure("The wood shed is not close enough to enter from here.")}
		}
		s.Player.Location = InsideRoom(RoomWoodShed, lm.Position)
		return ResolveResult{Outcome: Timed("You duck under the shed's low lintel.", 1, 0)}

	case "cave", "cave_entrance":
		return ResolveResult{Outcome: Failure("The cave mouth is choked with fallen rock. Nothing passes.")}

	case "":
		return ResolveResult{Outcome: Failure("Enter what?")}

	default:
		return ResolveResult{Outcome: Failure(fmt.Sprintf("There is no %s to enter here.", intent.Target))}
	}
}

func (ResolverService) resolveExit(s *WorldState) ResolveResult {
	loc := s.Player.Location
	if loc.Kind != LocationIndoors {
		return ResolveResult{Outcome: Failure("You are already under the open sky.")}
	}
	s.Player.Location = OutdoorsAt(loc.Position)
	switch loc.Room {
	case RoomCabinMain:
		return ResolveResult{Outcome: Timed("You step out of the cabin into the open air.", 1, 0)}
	case RoomCabinTerrace:
		return ResolveResult{Outcome: Timed("You take the terrace steps down to the ground.", 1, 0)}
	default:
		return ResolveResult{Outcome: Timed("You step out of the shed.", 1, 0)}
	}
}
