package stateview

// Frame is the compact push payload for live watchers. It carries just
// enough to render a ticker line without the full status view.
type Frame struct {
	WorldID  string   `json:"world_id"`
	Day      int      `json:"day"`
	Tick     int64    `json:"tick"`
	Clock    string   `json:"clock"`
	Phase    string   `json:"phase"`
	Weather  string   `json:"weather"`
	Place    string   `json:"place"`
	Position string   `json:"position"`
	Fire     string   `json:"fire"`
	Health   float64  `json:"health"`
	Warmth   float64  `json:"warmth"`
	Energy   float64  `json:"energy"`
	Effects  []string `json:"effects,omitempty"`
	Dead     bool     `json:"dead,omitempty"`
}

// FrameOf projects a full view down to its watcher frame.
func FrameOf(v View) Frame {
	return Frame{
		WorldID:  v.WorldID,
		Day:      v.Day,
		Tick:     v.Tick,
		Clock:    v.Clock,
		Phase:    v.Phase,
		Weather:  v.Weather,
		Place:    v.Location.Place,
		Position: v.Location.Position.String(),
		Fire:     v.Fire.Label,
		Health:   v.Vitals.Health,
		Warmth:   v.Vitals.Warmth,
		Energy:   v.Vitals.Energy,
		Effects:  v.Effects,
		Dead:     v.Dead,
	}
}
