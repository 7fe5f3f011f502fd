package stateview

import (
	"emberside/internal/domain/survival"
	"emberside/internal/domain/world"
)

const (
	criticalHealthThreshold = 15.0
	lowEnergyThreshold      = 20.0
	emptyGaugeThreshold     = 10.0
	freezingThreshold       = 15.0
	overheatingThreshold    = 85.0
)

// View is the read model shared by the status, act and watch
// responses. Everything here is derived; mutating it changes nothing.
type View struct {
	WorldID    string       `json:"world_id"`
	Day        int          `json:"day"`
	Tick       int64        `json:"tick"`
	Clock      string       `json:"clock"`
	Phase      string       `json:"phase"`
	Location   LocationView `json:"location"`
	Weather    string       `json:"weather"`
	Ambient    float64      `json:"ambient_temperature"`
	Vitals     VitalsView   `json:"vitals"`
	Fire       FireView     `json:"fire"`
	Pack       PackView     `json:"pack"`
	Skills     []SkillLine  `json:"skills"`
	Effects    []string     `json:"status_effects"`
	Project    *ProjectView `json:"project,omitempty"`
	Dead       bool         `json:"dead,omitempty"`
	DeathCause string       `json:"death_cause,omitempty"`
}

type LocationView struct {
	Kind     string         `json:"kind"`
	Room     string         `json:"room,omitempty"`
	Position world.Position `json:"position"`
	Facing   string         `json:"facing"`
	Place    string         `json:"place"`
}

type VitalsView struct {
	Health    float64 `json:"health"`
	Warmth    float64 `json:"warmth"`
	Energy    float64 `json:"energy"`
	Mood      float64 `json:"mood"`
	Fullness  float64 `json:"fullness"`
	Hydration float64 `json:"hydration"`
	Bands     Bands   `json:"bands"`
	Summary   string  `json:"summary"`
}

type Bands struct {
	Warmth    string `json:"warmth"`
	Mood      string `json:"mood"`
	Energy    string `json:"energy"`
	Fullness  string `json:"fullness"`
	Hydration string `json:"hydration"`
}

type FireView struct {
	Lit   bool   `json:"lit"`
	State string `json:"state"`
	Label string `json:"label"`
	Fuel  int    `json:"fuel"`
}

type PackView struct {
	Items     []PackItem `json:"items"`
	Weight    float64    `json:"weight"`
	MaxWeight float64    `json:"max_weight"`
}

type PackItem struct {
	Item  string `json:"item"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SkillLine struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	XP     int    `json:"xp"`
	ToNext int    `json:"xp_to_next"`
}

type ProjectView struct {
	Recipe  string   `json:"recipe"`
	Missing []string `json:"missing"`
}

// Derive flattens the aggregate into the read model.
func Derive(s *survival.WorldState) View {
	v := s.Player.Vitals
	view := View{
		WorldID: s.ID,
		Day:     s.Clock.Day,
		Tick:    s.Clock.Tick,
		Clock:   s.Clock.String(),
		Phase:   string(s.Clock.Phase()),
		Location: LocationView{
			Kind:     string(s.Player.Location.Kind),
			Room:     string(s.Player.Location.Room),
			Position: s.Player.Location.Position,
			Facing:   string(s.Player.Facing),
			Place:    placeLabel(s),
		},
		Weather: string(s.WeatherHere()),
		Ambient: s.AmbientTemperature(),
		Vitals: VitalsView{
			Health:    v.Health,
			Warmth:    v.Warmth,
			Energy:    v.Energy,
			Mood:      v.Mood,
			Fullness:  v.Fullness,
			Hydration: v.Hydration,
			Bands: Bands{
				Warmth:    v.WarmthBand(),
				Mood:      v.MoodBand(),
				Energy:    v.EnergyBand(),
				Fullness:  v.FullnessBand(),
				Hydration: v.HydrationBand(),
			},
			Summary: v.StatusSummary(),
		},
		Fire: FireView{
			Lit:   s.Fireplace.Lit(),
			State: string(s.Fireplace.State),
			Label: s.Fireplace.State.Label(),
			Fuel:  s.Fireplace.Fuel,
		},
		Pack:    derivePack(s.Player.Inventory),
		Skills:  deriveSkills(s.Player.Skills),
		Effects: deriveStatusEffects(s),
	}
	if s.Player.Project != nil {
		pv := ProjectView{Recipe: string(s.Player.Project.Recipe)}
		for _, stack := range s.Player.Project.Missing() {
			pv.Missing = append(pv.Missing, survival.StackLabel(stack.Item, stack.Count))
		}
		view.Project = &pv
	}
	if s.Player.Dead {
		view.Dead = true
		view.DeathCause = string(s.Player.DeathCause)
	}
	return view
}

func placeLabel(s *survival.WorldState) string {
	if !s.Player.Location.Outdoors() {
		switch s.Player.Location.Room {
		case survival.RoomCabinMain:
			return "the cabin's main room"
		case survival.RoomCabinTerrace:
			return "the covered terrace"
		case survival.RoomWoodShed:
			return "the wood shed"
		}
		return "indoors"
	}
	return s.Terrain.BiomeAt(s.Player.Location.Position).Label()
}

func derivePack(inv survival.Inventory) PackView {
	out := PackView{Weight: inv.Weight(), MaxWeight: inv.MaxWeight, Items: []PackItem{}}
	for _, stack := range inv.List() {
		out.Items = append(out.Items, PackItem{
			Item:  string(stack.Item),
			Label: survival.StackLabel(stack.Item, stack.Count),
			Count: stack.Count,
		})
	}
	return out
}

func deriveSkills(set survival.SkillSet) []SkillLine {
	out := make([]SkillLine, 0, len(set))
	for _, name := range set.Names() {
		p := set.Get(name)
		out = append(out, SkillLine{
			Name:   name,
			Level:  p.Level,
			XP:     p.XP,
			ToNext: survival.XPToNext(p.Level),
		})
	}
	return out
}

func deriveStatusEffects(s *survival.WorldState) []string {
	v := s.Player.Vitals
	effects := make([]string, 0, 6)
	if v.Warmth <= freezingThreshold {
		effects = append(effects, "FREEZING")
	}
	if v.Warmth >= overheatingThreshold {
		effects = append(effects, "OVERHEATING")
	}
	if v.Fullness <= emptyGaugeThreshold {
		effects = append(effects, "STARVING")
	}
	if v.Hydration <= emptyGaugeThreshold {
		effects = append(effects, "PARCHED")
	}
	if v.Energy <= lowEnergyThreshold {
		effects = append(effects, "EXHAUSTED")
	}
	if v.Health <= criticalHealthThreshold {
		effects = append(effects, "CRITICAL")
	}
	if phase := s.Clock.Phase(); phase == world.PhaseNight || phase == world.PhaseMidnight {
		effects = append(effects, "IN_DARK")
	}
	return effects
}
