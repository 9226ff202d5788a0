package games

import "math/rand"

type PrizeKind string

const (
	PrizeCoins PrizeKind = "coins"
	PrizeXP    PrizeKind = "xp"
	PrizeCard  PrizeKind = "card"
	PrizeItem  PrizeKind = "item"
)

type WheelPrize struct {
	Name    string
	Kind    PrizeKind
	Value   int64
	Jackpot bool
}

var wheelPrizes = []struct {
	prize  WheelPrize
	weight int
}{
	{WheelPrize{Name: "100 Coins", Kind: PrizeCoins, Value: 100}, 30},
	{WheelPrize{Name: "250 Coins", Kind: PrizeCoins, Value: 250}, 25},
	{WheelPrize{Name: "500 Coins", Kind: PrizeCoins, Value: 500}, 15},
	{WheelPrize{Name: "1000 Coins", Kind: PrizeCoins, Value: 1000}, 10},
	{WheelPrize{Name: "XP Boost", Kind: PrizeXP, Value: 200}, 8},
	{WheelPrize{Name: "Rare Card", Kind: PrizeCard, Value: 1}, 5},
	{WheelPrize{Name: "2000 Coins", Kind: PrizeCoins, Value: 2000}, 4},
	{WheelPrize{Name: "JACKPOT 🎰", Kind: PrizeCoins, Value: 5000, Jackpot: true}, 2},
	{WheelPrize{Name: "Lucky Item", Kind: PrizeItem, Value: 1}, 1},
}

// Fallback payouts when a card or item prize cannot be delivered.
const (
	CardFallbackCoins = 500
	ItemFallbackCoins = 300
)

// SpinWheel draws one prize from the weighted table.
func SpinWheel(r *rand.Rand) WheelPrize {
	total := 0
	for _, entry := range wheelPrizes {
		total += entry.weight
	}

	roll := r.Intn(total)
	for _, entry := range wheelPrizes {
		roll -= entry.weight
		if roll < 0 {
			return entry.prize
		}
	}
	return wheelPrizes[0].prize
}
