package rng

// Roller provides an interface for the randomness the bot consumes.
// This allows us to inject deterministic implementations for testing.
type Roller interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) int

	// Percent returns a uniform random float64 in [0, 100).
	Percent() float64
}
