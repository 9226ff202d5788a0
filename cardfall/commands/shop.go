package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/economy/ledger"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "🛒 Browse the item shop",
}

var Buy = discord.SlashCommandCreate{
	Name:        "buy",
	Description: "💸 Buy an item from the shop",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "Name or ID of the item",
			Required:    true,
		},
	},
}

var Inventory = discord.SlashCommandCreate{
	Name:        "inventory",
	Description: "🎒 View your items",
}

func ShopHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		items, err := b.ItemRepository.GetShopItems(ctx)
		if err != nil {
			slog.Error("Failed to load shop",
				slog.String("type", "db"),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "The shop is closed right now. Please try again later.")
		}

		var description strings.Builder
		for _, item := range items {
			description.WriteString(fmt.Sprintf("**%s** — %s coins\n%s\n\n",
				item.Name, utils.FormatNumber(item.Price), item.Description))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🛒 Item Shop",
				Description: description.String(),
				Color:       config.InfoColor,
				Footer:      &discord.EmbedFooter{Text: "Buy with /buy <item>"},
			}},
		})
	}
}

func BuyHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		query := e.SlashCommandInteractionData().String("item")
		items, err := b.ItemRepository.GetShopItems(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "The shop is closed right now. Please try again later.")
		}

		var item *models.ShopItem
		lower := strings.ToLower(query)
		for _, it := range items {
			if it.ID == query || strings.ToLower(it.Name) == lower {
				item = it
				break
			}
		}
		if item == nil {
			for _, it := range items {
				if strings.Contains(strings.ToLower(it.Name), lower) {
					item = it
					break
				}
			}
		}
		if item == nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No shop item matching **%s**.", query))
		}

		err = b.Ledger.Debit(ctx, user.DiscordID, item.Price, models.TxShop, item.Name, true)
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You need **%s coins** for %s, but you only have **%s**.",
				utils.FormatNumber(item.Price), item.Name, utils.FormatNumber(user.Coins)))
		}
		if err != nil {
			slog.Error("Failed to debit purchase",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.String("item_id", item.ID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Purchase failed. Please try again later.")
		}

		if err := b.ItemRepository.AddToInventory(ctx, user.DiscordID, item); err != nil {
			slog.Error("Failed to add item to inventory",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.String("item_id", item.ID),
				slog.Any("error", err),
			)
			// refund the debit so the player isn't left short
			if refundErr := b.Ledger.Credit(ctx, user.DiscordID, item.Price, models.TxShop, "refund "+item.Name); refundErr != nil {
				slog.Error("Failed to refund purchase",
					slog.String("type", "db"),
					slog.String("discord_id", user.DiscordID),
					slog.Any("error", refundErr),
				)
			}
			return utils.EH.CreateErrorEmbed(e, "Purchase failed. Please try again later.")
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("You bought **%s** for **%s coins**!",
			item.Name, utils.FormatNumber(item.Price)))
	}
}

func InventoryHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		inventory, err := b.ItemRepository.GetInventory(ctx, user.DiscordID)
		if err != nil {
			slog.Error("Failed to load inventory",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your inventory. Please try again later.")
		}

		if len(inventory) == 0 {
			return utils.EH.CreateInfoEmbed(e, "Your inventory is empty. Visit the `/shop`!")
		}

		items, err := b.ItemRepository.GetShopItems(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your inventory. Please try again later.")
		}
		names := make(map[string]string, len(items))
		for _, it := range items {
			names[it.ID] = it.Name
		}

		var description strings.Builder
		for _, ui := range inventory {
			name := names[ui.ItemID]
			if name == "" {
				name = ui.ItemID
			}
			line := fmt.Sprintf("**%s** × %d", name, ui.Quantity)
			if !ui.ExpiresAt.IsZero() {
				line += fmt.Sprintf(" (expires <t:%d:R>)", ui.ExpiresAt.Unix())
			}
			description.WriteString(line + "\n")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🎒 Inventory",
				Description: description.String(),
				Color:       config.InfoColor,
			}},
		})
	}
}
