package games

import "math/rand"

var (
	slotSymbols = []string{"🍒", "🍋", "🍊", "🍇", "⭐", "💎", "7️⃣"}
	slotWeights = []int{30, 25, 20, 12, 8, 4, 1}
)

type SlotsTier string

const (
	SlotsLoss    SlotsTier = "loss"
	SlotsPair    SlotsTier = "pair"
	SlotsTriple  SlotsTier = "triple"
	SlotsMega    SlotsTier = "mega"
	SlotsSuper   SlotsTier = "super"
	SlotsJackpot SlotsTier = "jackpot"
)

type SlotsResult struct {
	Reels      [3]string
	Tier       SlotsTier
	Multiplier float64
	Payout     int64
	XP         int64
}

func (s SlotsResult) Win() bool {
	return s.Payout > 0
}

func spinReel(r *rand.Rand) string {
	total := 0
	for _, w := range slotWeights {
		total += w
	}
	roll := r.Intn(total)
	for i, w := range slotWeights {
		roll -= w
		if roll < 0 {
			return slotSymbols[i]
		}
	}
	return slotSymbols[0]
}

// SpinSlots rolls three weighted reels and settles the bet. Triples pay
// by symbol (7️⃣ 50x, 💎 15x, ⭐ 8x, anything else 4x), an adjacent pair
// pays 1.5x and everything else loses the stake.
func SpinSlots(r *rand.Rand, bet int64) SlotsResult {
	reels := [3]string{spinReel(r), spinReel(r), spinReel(r)}

	result := SlotsResult{Reels: reels, Tier: SlotsLoss}

	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case "7️⃣":
			result.Tier = SlotsJackpot
			result.Multiplier = 50
		case "💎":
			result.Tier = SlotsSuper
			result.Multiplier = 15
		case "⭐":
			result.Tier = SlotsMega
			result.Multiplier = 8
		default:
			result.Tier = SlotsTriple
			result.Multiplier = 4
		}
	case reels[0] == reels[1] || reels[1] == reels[2]:
		result.Tier = SlotsPair
		result.Multiplier = 1.5
	}

	result.Payout = int64(float64(bet) * result.Multiplier)
	if result.Win() {
		result.XP = 10
	} else {
		result.XP = 5
	}
	return result
}
