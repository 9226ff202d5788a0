package commands

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/economy/games"
)

func TestSlotsSpinProgress(t *testing.T) {
	tests := []struct {
		name         string
		result       games.SlotsResult
		wantWinnings int64
		wantDelta    int64
	}{
		{
			name:   "loss counts nothing",
			result: games.SlotsResult{Tier: games.SlotsLoss, Payout: 0},
		},
		{
			name:         "pair records full payout",
			result:       games.SlotsResult{Tier: games.SlotsPair, Multiplier: 1.5, Payout: 75},
			wantWinnings: 75,
			wantDelta:    1,
		},
		{
			name:         "jackpot records full payout",
			result:       games.SlotsResult{Tier: games.SlotsJackpot, Multiplier: 50, Payout: 5000},
			wantWinnings: 5000,
			wantDelta:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winnings, delta := slotsSpinProgress(tt.result)
			if winnings != tt.wantWinnings {
				t.Errorf("winnings = %d, want %d", winnings, tt.wantWinnings)
			}
			if delta != tt.wantDelta {
				t.Errorf("mission delta = %d, want %d", delta, tt.wantDelta)
			}
		})
	}
}

// Every game takes its stake through a required bet option, bounded by
// the per-game minimum.
func TestGameCommandStakeBounds(t *testing.T) {
	tests := []struct {
		name    string
		command discord.SlashCommandCreate
		wantMin int
	}{
		{"slots", Slots, config.SlotsMinBet},
		{"basket", Basket, config.BasketMinBet},
		{"wheel", Wheel, config.WheelMinBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bet *discord.ApplicationCommandOptionInt
			for _, opt := range tt.command.Options {
				if intOpt, ok := opt.(discord.ApplicationCommandOptionInt); ok && intOpt.Name == "bet" {
					bet = &intOpt
					break
				}
			}
			if bet == nil {
				t.Fatalf("/%s has no bet option", tt.command.Name)
			}
			if !bet.Required {
				t.Errorf("/%s bet option is optional, want required", tt.command.Name)
			}
			if bet.MinValue == nil || *bet.MinValue != tt.wantMin {
				t.Errorf("/%s min bet = %v, want %d", tt.command.Name, bet.MinValue, tt.wantMin)
			}
			if bet.MaxValue == nil || *bet.MaxValue != config.MaxBet {
				t.Errorf("/%s max bet = %v, want %d", tt.command.Name, bet.MaxValue, config.MaxBet)
			}
		})
	}
}
