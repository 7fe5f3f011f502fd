package survival

import "fmt"

// Vitals are the survivor's gauges, each held to [0, 100].
type Vitals struct {
	Health    float64 `json:"health"`
	Energy    float64 `json:"energy"`
	Fullness  float64 `json:"fullness"`
	Hydration float64 `json:"hydration"`
	Warmth    float64 `json:"warmth"`
	Mood      float64 `json:"mood"`
}

func NewVitals() Vitals {
	return Vitals{
		Health:    StartHealth,
		Energy:    StartEnergy,
		Fullness:  StartFullness,
		Hydration: StartHydration,
		Warmth:    StartWarmth,
		Mood:      StartMood,
	}
}

func clampGauge(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (v *Vitals) AddHealth(delta float64)    { v.Health = clampGauge(v.Health + delta) }
func (v *Vitals) AddEnergy(delta float64)    { v.Energy = clampGauge(v.Energy + delta) }
func (v *Vitals) AddFullness(delta float64)  { v.Fullness = clampGauge(v.Fullness + delta) }
func (v *Vitals) AddHydration(delta float64) { v.Hydration = clampGauge(v.Hydration + delta) }
func (v *Vitals) AddWarmth(delta float64)    { v.Warmth = clampGauge(v.Warmth + delta) }
func (v *Vitals) AddMood(delta float64)      { v.Mood = clampGauge(v.Mood + delta) }

// Apply folds a consumption effect into the gauges.
func (v *Vitals) Apply(eff ConsumeEffect) {
	v.AddFullness(eff.Fullness)
	v.AddHydration(eff.Hydration)
	v.AddMood(eff.Mood)
	v.AddEnergy(eff.Energy)
	v.AddHealth(eff.Health)
	v.AddWarmth(eff.Warmth)
}

// EaseWarmth moves warmth a fraction of the way toward the comfort
// target implied by the ambient temperature. Warmth never snaps; a
// freezing survivor stepping up to a roaring fire thaws over several
// ticks.
func (v *Vitals) EaseWarmth(ambientTemp float64) {
	target := clampGauge(ambientTemp + ComfortTargetOffset)
	v.Warmth += (target - v.Warmth) * WarmthEaseRate
	v.Warmth = clampGauge(v.Warmth)
}

// DriftMood nudges mood by how the body feels. Sitting in the comfort
// band slowly lifts spirits; freezing or overheating wears them down.
func (v *Vitals) DriftMood() {
	switch {
	case v.Warmth >= ComfortBandLow && v.Warmth <= ComfortBandHigh:
		v.AddMood(MoodDriftStep)
	case v.Warmth < DiscomfortLow || v.Warmth > DiscomfortHigh:
		v.AddMood(-MoodDriftStep)
	}
}

func (v Vitals) WarmthBand() string {
	switch {
	case v.Warmth < 20:
		return "freezing"
	case v.Warmth < 35:
		return "cold"
	case v.Warmth < 45:
		return "slightly chilly"
	case v.Warmth < 55:
		return "comfortable"
	case v.Warmth < 65:
		return "slightly warm"
	case v.Warmth < 80:
		return "warm"
	default:
		return "overheating"
	}
}

func (v Vitals) MoodBand() string {
	switch {
	case v.Mood < 20:
		return "miserable"
	case v.Mood < 40:
		return "melancholy"
	case v.Mood < 60:
		return "neutral"
	case v.Mood < 80:
		return "content"
	default:
		return "joyful"
	}
}

func (v Vitals) EnergyBand() string {
	switch {
	case v.Energy < 20:
		return "exhausted"
	case v.Energy < 40:
		return "tired"
	case v.Energy < 60:
		return "slightly fatigued"
	case v.Energy < 80:
		return "energetic"
	default:
		return "fully rested"
	}
}

func (v Vitals) FullnessBand() string {
	switch {
	case v.Fullness < 20:
		return "starving"
	case v.Fullness < 40:
		return "very hungry"
	case v.Fullness < 60:
		return "peckish"
	case v.Fullness < 80:
		return "satisfied"
	default:
		return "full"
	}
}

func (v Vitals) HydrationBand() string {
	switch {
	case v.Hydration < 20:
		return "parched"
	case v.Hydration < 40:
		return "very thirsty"
	case v.Hydration < 60:
		return "thirsty"
	case v.Hydration < 80:
		return "refreshed"
	default:
		return "well hydrated"
	}
}

// StatusSummary is the one-line feel of the moment.
func (v Vitals) StatusSummary() string {
	return fmt.Sprintf("You feel %s and %s. Your energy level is %s.",
		v.WarmthBand(), v.MoodBand(), v.EnergyBand())
}
