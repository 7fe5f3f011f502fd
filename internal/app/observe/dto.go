package observe

type Request struct {
	WorldID string
}

type Response struct {
	WorldID   string            `json:"world_id"`
	Lines     []string          `json:"lines"`
	Clock     string            `json:"clock"`
	Phase     string            `json:"phase"`
	Weather   QuadrantWeather   `json:"weather"`
	Sightings []Sighting        `json:"sightings"`
	Landmarks []SightedLandmark `json:"landmarks"`
}

// QuadrantWeather reports the raw condition per map quadrant plus the
// cell covering the player.
type QuadrantWeather struct {
	North string `json:"north"`
	South string `json:"south"`
	East  string `json:"east"`
	West  string `json:"west"`
	Here  string `json:"here"`
}

type Sighting struct {
	Species  string  `json:"species"`
	Label    string  `json:"label"`
	Behavior string  `json:"behavior"`
	Position string  `json:"position"`
	Distance float64 `json:"distance"`
	Predator bool    `json:"predator"`
}

type SightedLandmark struct {
	Kind     string  `json:"kind"`
	Position string  `json:"position"`
	Distance float64 `json:"distance"`
}
