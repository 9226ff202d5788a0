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

// basketLuckBonus is the per-shot chance bonus from a Lucky Charm.
const basketLuckBonus = 0.05

var Basket = discord.SlashCommandCreate{
	Name:        "basket",
	Description: "🏀 Shoot hoops for coins",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bet",
			Description: "Coins to wager",
			Required:    true,
			MinValue:    ptr(config.BasketMinBet),
			MaxValue:    ptr(config.MaxBet),
		},
	},
}

func BasketHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		if ok, remaining := b.Cooldowns.Try(user.DiscordID, "basket", config.BasketCooldown); !ok {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("⏰ The court is busy. Try again in **%s**.", utils.FormatDuration(remaining)))
		}

		bet := int64(e.SlashCommandInteractionData().Int("bet"))
		err = b.Ledger.Debit(ctx, user.DiscordID, bet, models.TxBasket, "basket stake", false)
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			b.Cooldowns.Clear(user.DiscordID, "basket")
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You don't have **%s coins** to bet.", utils.FormatNumber(bet)))
		}
		if err != nil {
			b.Cooldowns.Clear(user.DiscordID, "basket")
			slog.Error("Failed to take basket stake",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Something went wrong. Please try again later.")
		}

		var luck float64
		if lucky, err := b.ItemRepository.HasEffect(ctx, user.DiscordID, "slots_luck"); err == nil && lucky {
			luck = basketLuckBonus
		}

		result := withRand(func(r *rand.Rand) games.BasketResult {
			return games.PlayBasket(r, bet, luck)
		})

		if result.Payout > 0 {
			if err := b.Ledger.Credit(ctx, user.DiscordID, result.Payout, models.TxBasket, fmt.Sprintf("%d points", result.Points)); err != nil {
				slog.Error("Failed to credit basket payout",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", err),
				)
				return utils.EH.CreateErrorEmbed(e, "Something went wrong paying out. Contact an admin.")
			}
		}
		if result.MaxCombo > user.BestCombo {
			if err := b.UserRepository.SetBestCombo(ctx, user.DiscordID, result.MaxCombo); err != nil {
				slog.Error("Failed to record best combo",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", err),
				)
			}
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeBasket, 1)
		notices = append(notices, settleGoals(ctx, b, user.DiscordID, models.MissionTypeBasketScore, int64(result.Points))...)
		if line := grantXP(ctx, b, user.DiscordID, result.XP); line != "" {
			notices = append(notices, line)
		}

		shots := make([]string, len(result.Shots))
		for i, s := range result.Shots {
			switch s {
			case 3:
				shots[i] = "🌟"
			case 2:
				shots[i] = "🏀"
			default:
				shots[i] = "❌"
			}
		}

		color := config.WarningColor
		outcome := fmt.Sprintf("You lost **%s coins**.", utils.FormatNumber(bet))
		if result.Payout > bet {
			color = config.SuccessColor
			outcome = fmt.Sprintf("You won **%s coins** (×%.1f)!", utils.FormatNumber(result.Payout), result.Multiplier)
		} else if result.Payout > 0 {
			outcome = fmt.Sprintf("You got back **%s coins** (×%.1f).", utils.FormatNumber(result.Payout), result.Multiplier)
		}

		description := fmt.Sprintf("%s\n\n**%d points** · best combo ×%d\n%s",
			strings.Join(shots, " "), result.Points, result.MaxCombo, outcome)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🏀 Basket",
				Description: appendNotices(description, notices),
				Color:       color,
			}},
		})
	}
}
