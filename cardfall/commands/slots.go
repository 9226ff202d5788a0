package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/economy/games"
	"github.com/sayuri-dev/cardfall/cardfall/economy/ledger"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Slots = discord.SlashCommandCreate{
	Name:        "slots",
	Description: "🎰 Spin the slot machine",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bet",
			Description: "Coins to wager",
			Required:    true,
			MinValue:    ptr(config.SlotsMinBet),
			MaxValue:    ptr(config.MaxBet),
		},
	},
}

// slotsSpinProgress reports what a finished spin adds to the player's
// lifetime stats: the winnings recorded on the profile and the slot
// mission progress. Only winning spins count toward either, and the
// recorded winnings are the full payout.
func slotsSpinProgress(result games.SlotsResult) (winnings, missionDelta int64) {
	if !result.Win() {
		return 0, 0
	}
	return result.Payout, 1
}

func SlotsHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		if ok, remaining := b.Cooldowns.Try(user.DiscordID, "slots", config.SlotsCooldown); !ok {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("⏰ The machine is still spinning. Try again in **%s**.", utils.FormatDuration(remaining)))
		}

		bet := int64(e.SlashCommandInteractionData().Int("bet"))
		err = b.Ledger.Debit(ctx, user.DiscordID, bet, models.TxSlots, "slots stake", false)
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			b.Cooldowns.Clear(user.DiscordID, "slots")
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You don't have **%s coins** to bet.", utils.FormatNumber(bet)))
		}
		if err != nil {
			b.Cooldowns.Clear(user.DiscordID, "slots")
			slog.Error("Failed to take slots stake",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Something went wrong. Please try again later.")
		}

		result := withRand(func(r *rand.Rand) games.SlotsResult {
			return games.SpinSlots(r, bet)
		})
		winnings, missionDelta := slotsSpinProgress(result)

		if result.Win() {
			if err := b.Ledger.Credit(ctx, user.DiscordID, result.Payout, models.TxSlots, string(result.Tier)); err != nil {
				slog.Error("Failed to credit slots payout",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", err),
				)
				return utils.EH.CreateErrorEmbed(e, "Something went wrong paying out. Contact an admin.")
			}
			if err := b.UserRepository.AddSlotsWinnings(ctx, user.DiscordID, winnings); err != nil {
				slog.Error("Failed to record slots winnings",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", err),
				)
			}
			if result.Tier == games.SlotsJackpot {
				if err := b.UserRepository.IncrementJackpots(ctx, user.DiscordID); err != nil {
					slog.Error("Failed to record jackpot",
						slog.String("type", "db"),
						slog.String("discord_id", user.DiscordID),
						slog.Any("error", err),
					)
				}
			}
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeSlots, missionDelta)
		if line := grantXP(ctx, b, user.DiscordID, result.XP); line != "" {
			notices = append(notices, line)
		}

		reels := strings.Join(result.Reels[:], " | ")
		var description string
		color := config.WarningColor
		title := "🎰 Slots"
		switch {
		case result.Tier == games.SlotsJackpot:
			title = "🎰 JACKPOT!!!"
			color = config.RarityLegendaryColor
			description = fmt.Sprintf("**[ %s ]**\n\n💥 Triple sevens! You won **%s coins** (×%.1f)!",
				reels, utils.FormatNumber(result.Payout), result.Multiplier)
		case result.Win():
			color = config.SuccessColor
			description = fmt.Sprintf("**[ %s ]**\n\nYou won **%s coins** (×%.1f)!",
				reels, utils.FormatNumber(result.Payout), result.Multiplier)
		default:
			description = fmt.Sprintf("**[ %s ]**\n\nNo luck this time. You lost **%s coins**.",
				reels, utils.FormatNumber(bet))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       title,
				Description: appendNotices(description, notices),
				Color:       color,
			}},
		})
	}
}
