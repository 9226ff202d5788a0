package commands

import (
	"context"
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

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "📋 View your player profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Player to inspect instead of yourself",
			Required:    false,
		},
	},
}

func ProfileHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		target := e.User()
		if u, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			target = u
		}

		var user *models.User
		var err error
		if target.ID == e.User().ID {
			user, err = ensureUser(ctx, b, e)
		} else {
			user, err = b.UserRepository.GetByDiscordID(ctx, target.ID.String())
		}
		if err != nil {
			slog.Error("Failed to get user",
				slog.String("type", "db"),
				slog.String("discord_id", target.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "That player hasn't started playing yet.")
		}

		cardCount, err := b.UserCardRepository.CountByUserID(ctx, user.DiscordID)
		if err != nil {
			cardCount = 0
		}

		title := user.Username
		if user.ActiveTitle != "" {
			if titles, err := b.GoalRepository.Titles(ctx); err == nil {
				for _, t := range titles {
					if t.ID == user.ActiveTitle {
						title = fmt.Sprintf("%s 「%s」", user.Username, t.Name)
						break
					}
				}
			}
		}

		var nextThreshold int64
		if user.Level < progression.MaxLevel {
			nextThreshold = progression.LevelThresholds[user.Level]
		} else {
			nextThreshold = user.XP
		}

		fields := []discord.EmbedField{
			{Name: "💰 Coins", Value: utils.FormatNumber(user.Coins), Inline: ptr(true)},
			{Name: "🃏 Cards", Value: utils.FormatNumber(int64(cardCount)), Inline: ptr(true)},
			{Name: "🔥 Streak", Value: fmt.Sprintf("%d days", user.Streak), Inline: ptr(true)},
			{Name: fmt.Sprintf("📈 Level %d", user.Level), Value: utils.XPBar(user.XP, nextThreshold, 12), Inline: ptr(false)},
			{Name: "🎯 Caught", Value: utils.FormatNumber(user.TotalCaught), Inline: ptr(true)},
			{Name: "🎰 Slot winnings", Value: utils.FormatNumber(user.SlotsWins), Inline: ptr(true)},
			{Name: "🏀 Best combo", Value: fmt.Sprintf("%d", user.BestCombo), Inline: ptr(true)},
		}

		if user.MarriedTo != "" {
			fields = append(fields, discord.EmbedField{
				Name: "💍 Married to", Value: fmt.Sprintf("<@%s>", user.MarriedTo), Inline: ptr(true),
			})
		}

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:  "📋 " + title,
				Color:  config.InfoColor,
				Fields: fields,
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("Playing since %s", user.CreatedAt.Format("Jan 2, 2006")),
				},
				Timestamp: &now,
			}},
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
