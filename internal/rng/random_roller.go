package rng

import "math/rand"

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	return rand.Intn(n)
}

// Percent implements Roller.Percent
func (r *randomRoller) Percent() float64 {
	return rand.Float64() * 100
}
