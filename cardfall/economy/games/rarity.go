// Package games holds the outcome generators for the minigames. Every
// generator takes an explicit *rand.Rand so outcomes replay exactly
// under a seeded source.
package games

import (
	"math/rand"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

var rarityWeights = map[string]int{
	models.RarityCommon:    80,
	models.RarityUncommon:  50,
	models.RarityRare:      25,
	models.RarityEpic:      10,
	models.RarityLegendary: 3,
}

var catchRates = map[string]float64{
	models.RarityCommon:    0.85,
	models.RarityUncommon:  0.65,
	models.RarityRare:      0.40,
	models.RarityEpic:      0.20,
	models.RarityLegendary: 0.08,
}

var catchXP = map[string]int64{
	models.RarityCommon:    10,
	models.RarityUncommon:  20,
	models.RarityRare:      40,
	models.RarityEpic:      80,
	models.RarityLegendary: 150,
}

const maxCatchChance = 0.98

// RollRarity draws a rarity from the weighted distribution.
func RollRarity(r *rand.Rand) string {
	total := 0
	for _, rarity := range models.Rarities {
		total += rarityWeights[rarity]
	}

	roll := r.Intn(total)
	for _, rarity := range models.Rarities {
		roll -= rarityWeights[rarity]
		if roll < 0 {
			return rarity
		}
	}
	return models.RarityCommon
}

// CatchChance combines the rarity base rate, the card's drop-rate
// multiplier and any item boost, clamped to 98%.
func CatchChance(rarity string, dropRate, boost float64) float64 {
	chance := catchRates[rarity]*dropRate + boost
	if chance > maxCatchChance {
		chance = maxCatchChance
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// AttemptCatch rolls a single catch attempt against the given chance.
func AttemptCatch(r *rand.Rand, chance float64) bool {
	return r.Float64() < chance
}

// CatchXP returns the XP reward for catching a card of this rarity.
func CatchXP(rarity string) int64 {
	return catchXP[rarity]
}
