package world

// Dice is the random source threaded through every stochastic update.
// Implementations must be deterministic for a fixed seed so the same
// action sequence replays to the same state.
type Dice interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// Chance rolls a probability in [0, 1].
func Chance(d Dice, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return d.Float64() < p
}

// RangeInt returns a value in [lo, hi] inclusive.
func RangeInt(d Dice, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.IntN(hi-lo+1)
}

// RangeFloat returns a value in [lo, hi).
func RangeFloat(d Dice, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + d.Float64()*(hi-lo)
}
