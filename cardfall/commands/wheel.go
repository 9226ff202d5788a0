package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
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

var Wheel = discord.SlashCommandCreate{
	Name:        "wheel",
	Description: "🎡 Spin the wheel of fortune",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "bet",
			Description: "Coins to pay for the spin",
			Required:    true,
			MinValue:    ptr(config.WheelMinBet),
			MaxValue:    ptr(config.MaxBet),
		},
	},
}

func WheelHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		if ok, remaining := b.Cooldowns.Try(user.DiscordID, "wheel", config.WheelCooldown); !ok {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("⏰ The wheel is still turning. Try again in **%s**.", utils.FormatDuration(remaining)))
		}

		bet := int64(e.SlashCommandInteractionData().Int("bet"))
		err = b.Ledger.Debit(ctx, user.DiscordID, bet, models.TxWheel, "wheel stake", false)
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			b.Cooldowns.Clear(user.DiscordID, "wheel")
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You don't have **%s coins** for a spin.", utils.FormatNumber(bet)))
		}
		if err != nil {
			b.Cooldowns.Clear(user.DiscordID, "wheel")
			slog.Error("Failed to take wheel stake",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Something went wrong. Please try again later.")
		}

		prize := withRand(func(r *rand.Rand) games.WheelPrize {
			return games.SpinWheel(r)
		})

		description, err := deliverWheelPrize(ctx, b, user.DiscordID, prize)
		if err != nil {
			slog.Error("Failed to deliver wheel prize",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.String("prize", prize.Name),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Something went wrong delivering your prize. Contact an admin.")
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeWheel, 1)
		if line := grantXP(ctx, b, user.DiscordID, config.WheelXP); line != "" {
			notices = append(notices, line)
		}

		color := config.SuccessColor
		if prize.Jackpot {
			color = config.RarityLegendaryColor
		}

		description = fmt.Sprintf("%s\nSpin cost: **%s coins**", description, utils.FormatNumber(bet))

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🎡 Wheel of Fortune",
				Description: appendNotices(description, notices),
				Color:       color,
			}},
		})
	}
}

// deliverWheelPrize hands out whatever the wheel landed on. Card and
// item prizes degrade to coins when nothing can be granted.
func deliverWheelPrize(ctx context.Context, b *cardfall.Bot, userID string, prize games.WheelPrize) (string, error) {
	switch prize.Kind {
	case games.PrizeCoins:
		if err := b.Ledger.Credit(ctx, userID, prize.Value, models.TxWheel, prize.Name); err != nil {
			return "", err
		}
		if prize.Jackpot {
			return fmt.Sprintf("💥 **%s** — **%s coins**!", prize.Name, utils.FormatNumber(prize.Value)), nil
		}
		return fmt.Sprintf("The wheel landed on **%s**!", prize.Name), nil

	case games.PrizeXP:
		if line := grantXP(ctx, b, userID, prize.Value); line != "" {
			return fmt.Sprintf("The wheel landed on **%s** (+%d XP)!\n%s", prize.Name, prize.Value, line), nil
		}
		return fmt.Sprintf("The wheel landed on **%s** (+%d XP)!", prize.Name, prize.Value), nil

	case games.PrizeCard:
		card, err := b.Catching.RandomCardOfRarity(ctx, models.RarityRare)
		if err != nil {
			if creditErr := b.Ledger.Credit(ctx, userID, games.CardFallbackCoins, models.TxWheel, "card fallback"); creditErr != nil {
				return "", creditErr
			}
			return fmt.Sprintf("No cards available, so you got **%d coins** instead!", games.CardFallbackCoins), nil
		}
		if err := b.Catching.Award(ctx, userID, card); err != nil {
			return "", err
		}
		return fmt.Sprintf("You won a card: %s **%s**!", models.RarityEmoji(card.Rarity), card.Name), nil

	case games.PrizeItem:
		items, err := b.ItemRepository.GetShopItems(ctx)
		if err != nil || len(items) == 0 {
			if creditErr := b.Ledger.Credit(ctx, userID, games.ItemFallbackCoins, models.TxWheel, "item fallback"); creditErr != nil {
				return "", creditErr
			}
			return fmt.Sprintf("No items available, so you got **%d coins** instead!", games.ItemFallbackCoins), nil
		}
		item := items[withRand(func(r *rand.Rand) int { return r.Intn(len(items)) })]
		if err := b.ItemRepository.AddToInventory(ctx, userID, item); err != nil {
			return "", err
		}
		return fmt.Sprintf("You won an item: **%s**!", item.Name), nil
	}
	return "", fmt.Errorf("unknown prize kind %q", prize.Kind)
}
