package world

import "fmt"

// MinutesPerTick is the in-world duration of one simulation tick.
const MinutesPerTick = 10

// Phase names a slice of the day. Each phase shifts outdoor temperature
// and sets the ambient light level.
type Phase string

const (
	PhaseDawn      Phase = "dawn"
	PhaseMorning   Phase = "morning"
	PhaseNoon      Phase = "noon"
	PhaseAfternoon Phase = "afternoon"
	PhaseDusk      Phase = "dusk"
	PhaseEvening   Phase = "evening"
	PhaseNight     Phase = "night"
	PhaseMidnight  Phase = "midnight"
)

// TempOffset is the phase's contribution to outdoor temperature in degrees.
func (p Phase) TempOffset() int {
	switch p {
	case PhaseDawn:
		return -3
	case PhaseMorning:
		return 0
	case PhaseNoon:
		return 5
	case PhaseAfternoon:
		return 3
	case PhaseDusk:
		return -1
	case PhaseEvening:
		return -4
	case PhaseNight:
		return -6
	case PhaseMidnight:
		return -8
	}
	return 0
}

// LightLevel is the ambient light in [0, 1].
func (p Phase) LightLevel() float64 {
	switch p {
	case PhaseDawn:
		return 0.4
	case PhaseMorning:
		return 0.8
	case PhaseNoon:
		return 1.0
	case PhaseAfternoon:
		return 0.9
	case PhaseDusk:
		return 0.5
	case PhaseEvening:
		return 0.2
	case PhaseNight:
		return 0.1
	case PhaseMidnight:
		return 0.05
	}
	return 0.5
}

// Clock is the in-world calendar. It moves only when the simulation is
// advanced; there is no background timer.
type Clock struct {
	Day    int   `json:"day"`
	Hour   int   `json:"hour"`
	Minute int   `json:"minute"`
	Tick   int64 `json:"tick"`
}

// NewClock starts the calendar on the morning of day one.
func NewClock() Clock {
	return Clock{Day: 1, Hour: 8, Minute: 0, Tick: 0}
}

// Advance moves the clock forward by the given minutes, carrying minutes
// into hours and hours into days. Every call counts exactly one tick no
// matter how many minutes pass.
func (c *Clock) Advance(minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	c.Minute += minutes
	for c.Minute >= 60 {
		c.Minute -= 60
		c.Hour++
	}
	for c.Hour >= 24 {
		c.Hour -= 24
		c.Day++
	}
	c.Tick++
}

// AdvanceTick moves the clock by one standard tick.
func (c *Clock) AdvanceTick() {
	c.Advance(MinutesPerTick)
}

// Phase buckets the current hour.
func (c Clock) Phase() Phase {
	switch {
	case c.Hour >= 5 && c.Hour <= 6:
		return PhaseDawn
	case c.Hour >= 7 && c.Hour <= 10:
		return PhaseMorning
	case c.Hour >= 11 && c.Hour <= 13:
		return PhaseNoon
	case c.Hour >= 14 && c.Hour <= 16:
		return PhaseAfternoon
	case c.Hour >= 17 && c.Hour <= 18:
		return PhaseDusk
	case c.Hour >= 19 && c.Hour <= 21:
		return PhaseEvening
	case c.Hour >= 22 || c.Hour <= 1:
		return PhaseNight
	default:
		return PhaseMidnight
	}
}

func (c Clock) String() string {
	return fmt.Sprintf("Day %d %02d:%02d", c.Day, c.Hour, c.Minute)
}
