package survival

import (
	"time"

	"emberside/internal/domain/world"
)

// scriptDice replays a fixed sequence of rolls. Exhausted float rolls
// return 0.99 so chance checks fail closed; exhausted int rolls return 0.
type scriptDice struct {
	floats []float64
	ints   []int
	fi     int
	ii     int
}

func (d *scriptDice) Float64() float64 {
	if d.fi >= len(d.floats) {
		return 0.99
	}
	v := d.floats[d.fi]
	d.fi++
	return v
}

func (d *scriptDice) IntN(n int) int {
	if d.ii >= len(d.ints) {
		return 0
	}
	v := d.ints[d.ii]
	d.ii++
	if v >= n {
		v = n - 1
	}
	return v
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testState builds a minimal world with the survivor in the cabin's
// main room, calm clear weather and the standard shed stock.
func testState() *WorldState {
	return &WorldState{
		ID:    "w-test",
		Clock: world.NewClock(),
		Weather: world.Weather{
			North: world.ConditionClear,
			South: world.ConditionClear,
			East:  world.ConditionClear,
			West:  world.ConditionClear,
		},
		Terrain: world.NewTerrain(),
		Player: Player{
			Location:  InsideRoom(RoomCabinMain, world.Position{}),
			Facing:    world.DirectionSouth,
			Vitals:    NewVitals(),
			Inventory: NewInventory(MaxCarryWeight),
			Skills:    NewSkillSet(),
		},
		Fireplace:  NewFireplace(),
		CabinShelf: NewInventory(0),
		Shed:       ShedState{Logs: StartShedLogs, AxeOnFloor: true},
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
}

// outdoorsState puts the survivor on open ground at the given cell.
func outdoorsState(p world.Position) *WorldState {
	s := testState()
	s.Player.Location = OutdoorsAt(p)
	return s
}

func almost(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
