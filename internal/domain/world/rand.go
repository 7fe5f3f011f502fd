package world

import "math/rand/v2"

type pcgDice struct {
	rng *rand.Rand
}

// SeededDice returns a Dice backed by a PCG stream. Two dice built from
// the same seed produce identical roll sequences.
func SeededDice(seed uint64) Dice {
	return &pcgDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *pcgDice) Float64() float64 { return d.rng.Float64() }

func (d *pcgDice) IntN(n int) int { return d.rng.IntN(n) }
