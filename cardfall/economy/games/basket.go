package games

import "math/rand"

const basketShots = 5

type BasketResult struct {
	Shots      []int // points per shot: 0 miss, 2 hit, 3 long-range
	Points     int
	MaxCombo   int
	Multiplier float64
	Payout     int64
	XP         int64
}

// PlayBasket simulates five shots. Each hit extends the combo, and the
// hit chance shrinks by 1% per combo point down to a 30% floor before
// the luck bonus. Once the combo reaches 5 a made shot has a 30% chance
// of counting for 3. The payout multiplier is a step function over the
// score ratio (points out of a possible 15).
func PlayBasket(r *rand.Rand, bet int64, luck float64) BasketResult {
	result := BasketResult{Shots: make([]int, 0, basketShots)}

	combo := 0
	for i := 0; i < basketShots; i++ {
		chance := 0.45 - float64(combo)*0.01
		if chance < 0.30 {
			chance = 0.30
		}
		chance += luck

		if r.Float64() < chance {
			combo++
			points := 2
			if combo >= 5 && r.Float64() < 0.30 {
				points = 3
			}
			result.Shots = append(result.Shots, points)
			result.Points += points
			if combo > result.MaxCombo {
				result.MaxCombo = combo
			}
		} else {
			combo = 0
			result.Shots = append(result.Shots, 0)
		}
	}

	ratio := float64(result.Points) / 15.0
	switch {
	case ratio >= 0.9:
		result.Multiplier = 3.0
	case ratio >= 0.7:
		result.Multiplier = 2.0
	case ratio >= 0.5:
		result.Multiplier = 1.5
	case ratio >= 0.3:
		result.Multiplier = 1.0
	default:
		result.Multiplier = 0.5
	}

	result.Payout = int64(float64(bet) * result.Multiplier)
	result.XP = int64(10 + 2*result.Points)
	return result
}
