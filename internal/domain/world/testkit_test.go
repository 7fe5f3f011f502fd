package world

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
