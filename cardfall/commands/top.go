package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/repositories"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Top = discord.SlashCommandCreate{
	Name:        "top",
	Description: "🏆 View the leaderboards",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "board",
			Description: "Which board to show",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "All-time coins", Value: "coins"},
				{Name: "This week", Value: "weekly"},
			},
		},
	},
}

func TopHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		board, _ := e.SlashCommandInteractionData().OptString("board")
		if board == "weekly" {
			return weeklyBoard(ctx, b, e)
		}
		return coinBoard(ctx, b, e)
	}
}

func coinBoard(ctx context.Context, b *cardfall.Bot, e *handler.CommandEvent) error {
	top, err := b.UserRepository.GetTopByCoins(ctx, config.DefaultPageSize)
	if err != nil {
		slog.Error("Failed to load leaderboard",
			slog.String("type", "db"),
			slog.Any("error", err),
		)
		return utils.EH.CreateErrorEmbed(e, "Failed to load the leaderboard. Please try again later.")
	}
	if len(top) == 0 {
		return utils.EH.CreateInfoEmbed(e, "Nobody is on the board yet.")
	}

	var description strings.Builder
	for i, user := range top {
		description.WriteString(fmt.Sprintf("%s **%s** — %s coins\n",
			rankEmoji(i), user.Username, utils.FormatNumber(user.Coins)))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🏆 Richest Players",
			Description: description.String(),
			Color:       config.RarityLegendaryColor,
		}},
	})
}

func weeklyBoard(ctx context.Context, b *cardfall.Bot, e *handler.CommandEvent) error {
	top, err := b.WeeklyRepository.GetTop(ctx, repositories.WeekStart(time.Now()), config.DefaultPageSize)
	if err != nil {
		slog.Error("Failed to load weekly board",
			slog.String("type", "db"),
			slog.Any("error", err),
		)
		return utils.EH.CreateErrorEmbed(e, "Failed to load the weekly board. Please try again later.")
	}
	if len(top) == 0 {
		return utils.EH.CreateInfoEmbed(e, "Nobody has earned coins this week yet.")
	}

	var description strings.Builder
	for i, score := range top {
		description.WriteString(fmt.Sprintf("%s **%s** — %s coins this week\n",
			rankEmoji(i), score.Username, utils.FormatNumber(score.WeeklyCoins)))
	}
	description.WriteString(fmt.Sprintf("\nThe weekly winner gets **%s coins** on Monday!",
		utils.FormatNumber(b.Cfg.Game.WeeklyWinnerBonus)))

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "📅 Weekly Board",
			Description: description.String(),
			Color:       config.InfoColor,
		}},
	})
}

func rankEmoji(i int) string {
	switch i {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", i+1)
	}
}
