package observe

import (
	"context"
	"errors"
	"sort"
	"strings"

	"emberside/internal/app/ports"
	"emberside/internal/domain/survival"
	"emberside/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

// Landmarks and wildlife show up in the structured lists under the same
// rules the narrative uses, so the two never contradict each other.
const (
	landmarkRadius = 3.0
	fogThreshold   = 0.3
)

type UseCase struct {
	WorldRepo ports.WorldRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.WorldRepo.Get(ctx, req.WorldID)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		WorldID: state.ID,
		Lines:   survival.DescribeSurroundings(state),
		Clock:   state.Clock.String(),
		Phase:   string(state.Clock.Phase()),
		Weather: QuadrantWeather{
			North: string(state.Weather.North),
			South: string(state.Weather.South),
			East:  string(state.Weather.East),
			West:  string(state.Weather.West),
			Here:  string(state.WeatherHere()),
		},
		Sightings: []Sighting{},
		Landmarks: []SightedLandmark{},
	}
	if state.Player.Location.Kind == survival.LocationIndoors {
		return resp, nil
	}

	pos := state.Player.Location.Position
	visibility := state.WeatherHere().Visibility()
	if visibility < fogThreshold {
		return resp, nil
	}

	for _, lm := range world.Landmarks() {
		if d := pos.DistanceTo(lm.Position); d <= landmarkRadius {
			resp.Landmarks = append(resp.Landmarks, SightedLandmark{
				Kind:     string(lm.Kind),
				Position: lm.Position.String(),
				Distance: d,
			})
		}
	}

	radius := 1 + 3*visibility
	for i := range state.Wildlife {
		a := &state.Wildlife[i]
		d := pos.DistanceTo(a.Position)
		if d > radius {
			continue
		}
		resp.Sightings = append(resp.Sightings, Sighting{
			Species:  string(a.Species),
			Label:    a.Species.Name(),
			Behavior: string(a.Behavior),
			Position: a.Position.String(),
			Distance: d,
			Predator: a.Species.Predator(),
		})
	}
	sort.Slice(resp.Sightings, func(i, j int) bool {
		return resp.Sightings[i].Distance < resp.Sightings[j].Distance
	})
	return resp, nil
}
