package games

import (
	"math/rand"
	"testing"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

func TestRollRarity_Distribution(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	counts := make(map[string]int)
	const rolls = 100000
	for i := 0; i < rolls; i++ {
		rarity := RollRarity(r)
		if !models.ValidRarity(rarity) {
			t.Fatalf("RollRarity() = %q, not a known rarity", rarity)
		}
		counts[rarity]++
	}

	// Common carries weight 80 of 168, Legendary 3 of 168. Allow wide
	// bands since this is a statistical check.
	if got := counts[models.RarityCommon]; got < rolls*40/100 || got > rolls*55/100 {
		t.Errorf("Common share = %d of %d, outside expected band", got, rolls)
	}
	if got := counts[models.RarityLegendary]; got < rolls*1/100/2 || got > rolls*4/100 {
		t.Errorf("Legendary share = %d of %d, outside expected band", got, rolls)
	}
	if counts[models.RarityCommon] <= counts[models.RarityRare] {
		t.Error("Common should roll more often than Rare")
	}
	if counts[models.RarityRare] <= counts[models.RarityLegendary] {
		t.Error("Rare should roll more often than Legendary")
	}
}

func TestCatchChance(t *testing.T) {
	tests := []struct {
		name     string
		rarity   string
		dropRate float64
		boost    float64
		want     float64
	}{
		{"common base", models.RarityCommon, 1.0, 0, 0.85},
		{"legendary base", models.RarityLegendary, 1.0, 0, 0.08},
		{"boost applies", models.RarityRare, 1.0, 0.20, 0.60},
		{"drop rate scales", models.RarityUncommon, 0.5, 0, 0.325},
		{"clamped at 98%", models.RarityCommon, 2.0, 0.50, 0.98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CatchChance(tt.rarity, tt.dropRate, tt.boost)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("CatchChance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpinSlots_Deterministic(t *testing.T) {
	// Same seed, same outcome.
	a := SpinSlots(rand.New(rand.NewSource(42)), 100)
	b := SpinSlots(rand.New(rand.NewSource(42)), 100)
	if a != b {
		t.Errorf("same seed produced different results: %+v vs %+v", a, b)
	}
}

func TestSpinSlots_Payouts(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	const bet = 100
	for i := 0; i < 10000; i++ {
		res := SpinSlots(r, bet)

		var wantMult float64
		switch res.Tier {
		case SlotsJackpot:
			wantMult = 50
			if res.Reels != [3]string{"7️⃣", "7️⃣", "7️⃣"} {
				t.Fatalf("jackpot with reels %v", res.Reels)
			}
		case SlotsSuper:
			wantMult = 15
		case SlotsMega:
			wantMult = 8
		case SlotsTriple:
			wantMult = 4
		case SlotsPair:
			wantMult = 1.5
			if res.Reels[0] != res.Reels[1] && res.Reels[1] != res.Reels[2] {
				t.Fatalf("pair without adjacent match: %v", res.Reels)
			}
		case SlotsLoss:
			wantMult = 0
		}

		if res.Multiplier != wantMult {
			t.Fatalf("tier %s multiplier = %v, want %v", res.Tier, res.Multiplier, wantMult)
		}
		if res.Payout != int64(bet*wantMult) {
			t.Fatalf("payout = %d, want %d", res.Payout, int64(bet*wantMult))
		}
		if res.Win() && res.XP != 10 {
			t.Fatalf("win XP = %d, want 10", res.XP)
		}
		if !res.Win() && res.XP != 5 {
			t.Fatalf("loss XP = %d, want 5", res.XP)
		}
	}
}

func TestPlayBasket(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		res := PlayBasket(r, 100, 0)

		if len(res.Shots) != 5 {
			t.Fatalf("shots = %d, want 5", len(res.Shots))
		}

		points := 0
		for _, shot := range res.Shots {
			if shot != 0 && shot != 2 && shot != 3 {
				t.Fatalf("invalid shot value %d", shot)
			}
			points += shot
		}
		if points != res.Points {
			t.Fatalf("points = %d, shots sum to %d", res.Points, points)
		}
		if res.Points > 15 {
			t.Fatalf("points = %d, max is 15", res.Points)
		}
		if res.MaxCombo > 5 {
			t.Fatalf("max combo = %d, max is 5", res.MaxCombo)
		}

		ratio := float64(res.Points) / 15.0
		var want float64
		switch {
		case ratio >= 0.9:
			want = 3.0
		case ratio >= 0.7:
			want = 2.0
		case ratio >= 0.5:
			want = 1.5
		case ratio >= 0.3:
			want = 1.0
		default:
			want = 0.5
		}
		if res.Multiplier != want {
			t.Fatalf("multiplier = %v for %d points, want %v", res.Multiplier, res.Points, want)
		}
		if res.XP != int64(10+2*res.Points) {
			t.Fatalf("XP = %d, want %d", res.XP, 10+2*res.Points)
		}
	}
}

func TestPlayBasket_Deterministic(t *testing.T) {
	a := PlayBasket(rand.New(rand.NewSource(9)), 50, 0.05)
	b := PlayBasket(rand.New(rand.NewSource(9)), 50, 0.05)
	if a.Points != b.Points || a.Payout != b.Payout || a.MaxCombo != b.MaxCombo {
		t.Errorf("same seed produced different results: %+v vs %+v", a, b)
	}
}

func TestSpinWheel(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	counts := make(map[string]int)
	for i := 0; i < 50000; i++ {
		prize := SpinWheel(r)
		counts[prize.Name]++

		switch prize.Kind {
		case PrizeCoins, PrizeXP, PrizeCard, PrizeItem:
		default:
			t.Fatalf("unknown prize kind %q", prize.Kind)
		}
		if prize.Jackpot && prize.Value != 5000 {
			t.Fatalf("jackpot value = %d, want 5000", prize.Value)
		}
	}

	// 100 Coins (weight 30) must dominate Lucky Item (weight 1).
	if counts["100 Coins"] <= counts["Lucky Item"]*10 {
		t.Errorf("weights look wrong: 100 Coins=%d, Lucky Item=%d", counts["100 Coins"], counts["Lucky Item"])
	}
	for _, entry := range wheelPrizes {
		if counts[entry.prize.Name] == 0 {
			t.Errorf("prize %q never drawn in 50000 spins", entry.prize.Name)
		}
	}
}
