package stats

import "math"

// MetricOrder is the outcome of comparing one metric between players
type MetricOrder int

const (
	// MetricEqual means both players have the same value
	MetricEqual MetricOrder = iota

	// MetricFirstHigher means the first player's value is higher
	MetricFirstHigher

	// MetricSecondHigher means the second player's value is higher
	MetricSecondHigher

	// MetricNotComparable means at least one side is unreported
	MetricNotComparable
)

// CompareStat compares a single metric between two players. Rank
// metrics compare as whole numbers, K/D metrics at two decimal places;
// the returned margin uses the same precision. Values that differ only
// below the display precision count as equal.
func CompareStat(a, b Stat, wholeNumbers bool) (order MetricOrder, margin float64) {
	va, okA := a.Value()
	vb, okB := b.Value()
	if !okA || !okB {
		return MetricNotComparable, 0
	}

	if wholeNumbers {
		va = math.Round(va)
		vb = math.Round(vb)
	} else {
		va = math.Round(va*100) / 100
		vb = math.Round(vb*100) / 100
	}

	switch {
	case va > vb:
		return MetricFirstHigher, va - vb
	case vb > va:
		return MetricSecondHigher, vb - va
	default:
		return MetricEqual, 0
	}
}
