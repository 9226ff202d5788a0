package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/economy/progression"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Daily = discord.SlashCommandCreate{
	Name:        "daily",
	Description: "🎁 Claim your daily bonus",
}

func DailyHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			slog.Error("Failed to get user",
				slog.String("type", "db"),
				slog.String("discord_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		claim, err := b.Progression.ClaimDaily(ctx, user.DiscordID, time.Now())
		if errors.Is(err, progression.ErrAlreadyClaimed) {
			return utils.EH.CreateWarningEmbed(e, "You already claimed today's bonus. Come back tomorrow!")
		}
		if err != nil {
			slog.Error("Failed to claim daily",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to claim your daily bonus. Please try again later.")
		}

		if err := b.Ledger.Credit(ctx, user.DiscordID, claim.Bonus, models.TxDaily, fmt.Sprintf("streak %d", claim.Streak)); err != nil {
			slog.Error("Failed to credit daily bonus",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to claim your daily bonus. Please try again later.")
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeStreak, 1)
		if line := grantXP(ctx, b, user.DiscordID, config.DailyXP); line != "" {
			notices = append(notices, line)
		}

		description := fmt.Sprintf("You received **%s coins**!\n🔥 Streak: **%d days**",
			utils.FormatNumber(claim.Bonus), claim.Streak)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🎁 Daily Bonus",
				Description: appendNotices(description, notices),
				Color:       config.SuccessColor,
			}},
		})
	}
}
