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
	"github.com/sayuri-dev/cardfall/cardfall/economy/catching"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Catch = discord.SlashCommandCreate{
	Name:        "catch",
	Description: "🎯 Try to catch a falling card",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "card",
			Description: "Name of a specific card to chase",
			Required:    false,
		},
	},
}

func CatchHandler(b *cardfall.Bot) handler.CommandHandler {
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

		if ok, remaining := b.Cooldowns.Try(user.DiscordID, "catch", config.CatchCooldown); !ok {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("⏰ The sky is empty. Next card falls in **%s**.", utils.FormatDuration(remaining)))
		}

		cardName, _ := e.SlashCommandInteractionData().OptString("card")
		result, err := b.Catching.Catch(ctx, user.DiscordID, cardName)
		if err != nil {
			b.Cooldowns.Clear(user.DiscordID, "catch")
			switch {
			case errors.Is(err, catching.ErrNotFound):
				return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card named **%s** exists.", cardName))
			case errors.Is(err, catching.ErrNoCards):
				return utils.EH.CreateErrorEmbed(e, "There are no cards in the catalog yet.")
			default:
				slog.Error("Catch failed",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", err),
				)
				return utils.EH.CreateErrorEmbed(e, "Something went wrong. Please try again later.")
			}
		}

		card := result.Card
		rarityLine := fmt.Sprintf("%s **%s** · %s", models.RarityEmoji(card.Rarity), card.Name, card.Rarity)

		if !result.Caught {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "💨 It slipped away!",
					Description: fmt.Sprintf("%s\nCatch chance was %.0f%%. Better luck next time!", rarityLine, result.Chance*100),
					Color:       config.WarningColor,
				}},
			})
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeCatch, 1)
		if line := grantXP(ctx, b, user.DiscordID, result.XP); line != "" {
			notices = append(notices, line)
		}

		description := fmt.Sprintf("%s\nYou caught it! (+%d XP)", rarityLine, result.XP)
		embed := discord.Embed{
			Title:       "🎯 Caught!",
			Description: appendNotices(description, notices),
			Color:       rarityColor(card.Rarity),
		}
		if card.MediaURL != "" {
			embed.Image = &discord.EmbedResource{URL: card.MediaURL}
		}

		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{embed}})
	}
}

func rarityColor(rarity string) int {
	switch rarity {
	case models.RarityUncommon:
		return config.RarityUncommonColor
	case models.RarityRare:
		return config.RarityRareColor
	case models.RarityEpic:
		return config.RarityEpicColor
	case models.RarityLegendary:
		return config.RarityLegendaryColor
	default:
		return config.RarityCommonColor
	}
}
