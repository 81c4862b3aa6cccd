package stats

import "math"

const (
	// One bonus point per 0.05 of current-season K/D difference
	kdPointsPerUnit = 20

	// One bonus point per 250 points of max-rank difference
	rankPointsPerUnit = 250
)

// DuelOdds computes the weighted odds for a 1v1 between two stat
// records. Each player starts at weight 1; the player with the strictly
// higher current-season K/D takes the whole K/D bonus, and the player
// with the strictly higher max rank takes the whole rank bonus. An axis
// where either side is unreported contributes nothing.
func DuelOdds(a, b Record) (weightA, weightB int) {
	weightA, weightB = 1, 1

	if kdA, okA := a.CurrentKD.Value(); okA {
		if kdB, okB := b.CurrentKD.Value(); okB {
			bonus := int(math.Floor(math.Abs(kdA-kdB) * kdPointsPerUnit))
			switch {
			case kdA > kdB:
				weightA += bonus
			case kdB > kdA:
				weightB += bonus
			}
		}
	}

	if rankA, okA := a.MaxRank.Value(); okA {
		if rankB, okB := b.MaxRank.Value(); okB {
			bonus := int(math.Floor(math.Abs(rankA-rankB) / rankPointsPerUnit))
			switch {
			case rankA > rankB:
				weightA += bonus
			case rankB > rankA:
				weightB += bonus
			}
		}
	}

	return weightA, weightB
}

// WinPercent normalizes a weight to a percentage of the combined total
func WinPercent(weight, otherWeight int) float64 {
	return float64(weight) / float64(weight+otherWeight) * 100
}
