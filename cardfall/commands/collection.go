package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Collection = discord.SlashCommandCreate{
	Name:        "collection",
	Description: "🃏 Browse your card collection",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "search",
			Description: "Filter cards by name",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "rarity",
			Description: "Filter cards by rarity",
			Required:    false,
			Choices:     rarityChoices(),
		},
	},
}

func rarityChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(models.Rarities))
	for _, r := range models.Rarities {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: r, Value: r})
	}
	return choices
}

func CollectionHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.SearchTimeout)
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

		owned, err := b.UserCardRepository.GetAllByUserID(ctx, user.DiscordID)
		if err != nil {
			slog.Error("Failed to load collection",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your collection. Please try again later.")
		}

		data := e.SlashCommandInteractionData()
		if rarity, ok := data.OptString("rarity"); ok {
			filtered := owned[:0]
			for _, uc := range owned {
				if uc.Card != nil && uc.Card.Rarity == rarity {
					filtered = append(filtered, uc)
				}
			}
			owned = filtered
		}
		if query, ok := data.OptString("search"); ok && query != "" {
			cards := make([]*models.Card, 0, len(owned))
			byID := make(map[int64]*models.UserCard, len(owned))
			for _, uc := range owned {
				if uc.Card != nil {
					cards = append(cards, uc.Card)
					byID[uc.Card.ID] = uc
				}
			}
			ranked := utils.SearchCards(cards, query)
			owned = make([]*models.UserCard, 0, len(ranked))
			for _, c := range ranked {
				owned = append(owned, byID[c.ID])
			}
		}

		if len(owned) == 0 {
			return utils.EH.CreateInfoEmbed(e, "No cards found. Go catch some with `/catch`!")
		}

		totalPages := int(math.Ceil(float64(len(owned)) / float64(config.CardsPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.CardsPerPage
				end := min(start+config.CardsPerPage, len(owned))

				var description strings.Builder
				for _, uc := range owned[start:end] {
					card := uc.Card
					fav := ""
					if uc.Favorite {
						fav = " ❤️"
					}
					description.WriteString(fmt.Sprintf("%s **%s**%s · %s · caught %s\n",
						models.RarityEmoji(card.Rarity),
						card.Name,
						fav,
						card.Rarity,
						uc.CaughtAt.Format("Jan 2"),
					))
				}

				embed.
					SetTitle(fmt.Sprintf("🃏 %s's Collection", user.Username)).
					SetDescription(description.String()).
					SetColor(config.EmbedDefaultColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d cards", page+1, totalPages, len(owned)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
