package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Favorite = discord.SlashCommandCreate{
	Name:        "favorite",
	Description: "❤️ Pin a card on your profile",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "card",
			Description: "Name of the card to favorite, empty to clear",
			Required:    false,
		},
	},
}

func FavoriteHandler(b *cardfall.Bot) handler.CommandHandler {
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

		cardName, _ := e.SlashCommandInteractionData().OptString("card")
		if cardName == "" {
			if err := b.UserCardRepository.ClearFavorite(ctx, user.DiscordID); err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to clear your favorite. Please try again later.")
			}
			return utils.EH.CreateSuccessEmbed(e, "Your favorite card has been cleared.")
		}

		owned, err := b.UserCardRepository.GetAllByUserID(ctx, user.DiscordID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your collection. Please try again later.")
		}

		cards := make([]*models.Card, 0, len(owned))
		for _, uc := range owned {
			if uc.Card != nil {
				cards = append(cards, uc.Card)
			}
		}

		match := utils.BestCardMatch(cards, cardName)
		if match == nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("You don't own a card matching **%s**.", cardName))
		}

		if err := b.UserCardRepository.SetFavorite(ctx, user.DiscordID, match.ID); err != nil {
			slog.Error("Failed to set favorite",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to set your favorite. Please try again later.")
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("❤️ **%s** is now your favorite card!", match.Name))
	}
}
