package world

import "errors"

// LandmarkKind names the fixed structures placed on the map.
type LandmarkKind string

const (
	LandmarkCabin        LandmarkKind = "cabin"
	LandmarkWoodShed     LandmarkKind = "wood_shed"
	LandmarkCaveEntrance LandmarkKind = "cave_entrance"
)

// Landmark is a fixed structure. Landmarks never move and are not part
// of the saved state.
type Landmark struct {
	ID       string       `json:"id"`
	Kind     LandmarkKind `json:"kind"`
	Position Position     `json:"position"`
}

var ErrInvalidLandmark = errors.New("invalid landmark")

func (l Landmark) Validate() error {
	if l.ID == "" || l.Kind == "" {
		return ErrInvalidLandmark
	}
	return nil
}

// Landmarks lists the fixed structures of the map.
func Landmarks() []Landmark {
	return []Landmark{
		{ID: "cabin", Kind: LandmarkCabin, Position: Position{Row: 0, Col: 0}},
		{ID: "wood_shed", Kind: LandmarkWoodShed, Position: Position{Row: -1, Col: -1}},
		{ID: "east_cave_entrance", Kind: LandmarkCaveEntrance, Position: Position{Row: 0, Col: 8}},
	}
}

// FindLandmark looks a landmark up by id.
func FindLandmark(id string) (Landmark, bool) {
	for _, l := range Landmarks() {
		if l.ID == id {
			return l, true
		}
	}
	return Landmark{}, false
}

// LandmarkNear returns the first landmark of the kind within the given
// distance of the position.
func LandmarkNear(p Position, kind LandmarkKind, within float64) (Landmark, bool) {
	for _, l := range Landmarks() {
		if l.Kind == kind && p.DistanceTo(l.Position) <= within {
			return l, true
		}
	}
	return Landmark{}, false
}
