package stats

import "strconv"

// Unavailable is how a missing stat renders in user-facing output
const Unavailable = "N/A"

// Stat is a single player statistic that the upstream may or may not
// report. Modeling this explicitly keeps "N/A" from ever being coerced
// into a numeric zero somewhere downstream.
type Stat struct {
	value     float64
	available bool
}

// Numeric creates a stat carrying a value
func Numeric(value float64) Stat {
	return Stat{value: value, available: true}
}

// NotReported creates a stat the upstream did not provide
func NotReported() Stat {
	return Stat{}
}

// Value returns the numeric value and whether one is present
func (s Stat) Value() (float64, bool) {
	return s.value, s.available
}

// Available reports whether the upstream provided this stat
func (s Stat) Available() bool {
	return s.available
}

// Format renders the stat with the given number of decimal places, or
// "N/A" when it was not reported.
func (s Stat) Format(decimals int) string {
	if !s.available {
		return Unavailable
	}
	return strconv.FormatFloat(s.value, 'f', decimals, 64)
}

// Record holds the normalized per-player statistics used for
// comparison and duel-odds computation.
type Record struct {
	MaxRank     Stat
	LifetimeKD  Stat
	CurrentKD   Stat
	CurrentRank Stat
}
