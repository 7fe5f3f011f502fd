package survival

import "errors"

// FireState is how fiercely the fireplace burns.
type FireState string

const (
	FireCold       FireState = "cold"
	FireSmoldering FireState = "smoldering"
	FireBurning    FireState = "burning"
	FireRoaring    FireState = "roaring"
)

// Heat is the warmth the fire throws into its room.
func (s FireState) Heat() float64 {
	switch s {
	case FireSmoldering:
		return 5
	case FireBurning:
		return 15
	case FireRoaring:
		return 25
	}
	return 0
}

// Consumption is the fuel burned per tick.
func (s FireState) Consumption() int {
	switch s {
	case FireSmoldering:
		return 1
	case FireBurning:
		return 3
	case FireRoaring:
		return 6
	}
	return 0
}

// Label is a short description for observers.
func (s FireState) Label() string {
	switch s {
	case FireSmoldering:
		return "smoldering with weak flames"
	case FireBurning:
		return "burning steadily"
	case FireRoaring:
		return "roaring with powerful flames"
	}
	return "cold and empty"
}

var (
	ErrFireAlreadyLit = errors.New("fire already lit")
	ErrFireNeedsFuel  = errors.New("not enough fuel to ignite")
	ErrItemWontBurn   = errors.New("item will not burn")
)

// Fireplace is the cabin hearth. Fuel is abstract units; the state
// follows the fuel level while lit, and fuel alone never self-ignites.
type Fireplace struct {
	State       FireState `json:"state"`
	Fuel        int       `json:"fuel"`
	TinderReady bool      `json:"tinder_ready,omitempty"`
}

// NewFireplace returns a cold, empty hearth.
func NewFireplace() Fireplace {
	return Fireplace{State: FireCold}
}

// Lit reports whether anything is burning.
func (f Fireplace) Lit() bool {
	return f.State != FireCold
}

// Ignite starts the fire. It fails when the fire is already lit or when
// less than the minimum fuel is loaded. A fresh fire always starts
// smoldering, however much fuel waits in the hearth; it climbs the
// bands on the next fuel change or burn tick.
func (f *Fireplace) Ignite() error {
	if f.Lit() {
		return ErrFireAlreadyLit
	}
	if f.Fuel < FireIgniteMinFuel {
		return ErrFireNeedsFuel
	}
	f.State = FireSmoldering
	f.TinderReady = false
	return nil
}

// AddFuel loads one unit of the item into the hearth. Tinder-class
// items also leave the hearth ready to catch a spark.
func (f *Fireplace) AddFuel(item ItemID) error {
	def := Def(item)
	if def.FuelValue <= 0 {
		return ErrItemWontBurn
	}
	f.Fuel += def.FuelValue
	if def.Tinder {
		f.TinderReady = true
	}
	f.refresh()
	return nil
}

// BurnTick consumes one tick of fuel and reports whether the fire went
// out on this tick.
func (f *Fireplace) BurnTick() bool {
	wasLit := f.Lit()
	f.Fuel -= f.State.Consumption()
	if f.Fuel < 0 {
		f.Fuel = 0
	}
	f.refresh()
	return wasLit && !f.Lit()
}

// refresh settles the state onto the fuel level. A cold fireplace stays
// cold no matter how much fuel is stacked in it.
func (f *Fireplace) refresh() {
	if f.Fuel <= 0 {
		f.Fuel = 0
		f.State = FireCold
		return
	}
	if !f.Lit() {
		return
	}
	switch {
	case f.Fuel < FireBurningThreshold:
		f.State = FireSmoldering
	case f.Fuel < FireRoaringThreshold:
		f.State = FireBurning
	default:
		f.State = FireRoaring
	}
}
