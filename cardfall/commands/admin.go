package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Admin = discord.SlashCommandCreate{
	Name:        "admin",
	Description: "🔧 Card catalog administration",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "upload",
			Description: "Add a new card to the catalog",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{Name: "name", Description: "Card name", Required: true},
				discord.ApplicationCommandOptionString{Name: "category", Description: "Card category", Required: true},
				discord.ApplicationCommandOptionString{Name: "rarity", Description: "Card rarity", Required: true, Choices: rarityChoices()},
				discord.ApplicationCommandOptionAttachment{Name: "media", Description: "Card image or gif", Required: true},
				discord.ApplicationCommandOptionFloat{Name: "droprate", Description: "Drop rate weight (default 1.0)", Required: false},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "editcard",
			Description: "Edit an existing card",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{Name: "name", Description: "Card to edit", Required: true},
				discord.ApplicationCommandOptionString{Name: "rarity", Description: "New rarity", Required: false, Choices: rarityChoices()},
				discord.ApplicationCommandOptionString{Name: "category", Description: "New category", Required: false},
				discord.ApplicationCommandOptionFloat{Name: "droprate", Description: "New drop rate weight", Required: false},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "deletecard",
			Description: "Remove a card and all owned copies",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{Name: "name", Description: "Card to delete", Required: true},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "setdrop",
			Description: "Set the global drop rate multiplier",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionFloat{
					Name:        "multiplier",
					Description: "Catch chance multiplier",
					Required:    true,
					MinValue:    ptr(config.MinDropMultiplier),
					MaxValue:    ptr(config.MaxDropMultiplier),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "stats",
			Description: "Game statistics overview",
		},
	},
}

func requireAdmin(ctx context.Context, b *cardfall.Bot, e *handler.CommandEvent) bool {
	ok, err := b.IsAdmin(ctx, e.User().ID.String())
	if err != nil {
		slog.Error("Failed to check admin status",
			slog.String("type", "db"),
			slog.String("discord_id", e.User().ID.String()),
			slog.Any("error", err),
		)
		return false
	}
	return ok
}

func AdminUploadHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if !requireAdmin(ctx, b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 You need admin rights for this.")
		}

		data := e.SlashCommandInteractionData()
		name := strings.TrimSpace(data.String("name"))
		category := strings.TrimSpace(data.String("category"))
		rarity := data.String("rarity")
		dropRate := 1.0
		if dr, ok := data.OptFloat("droprate"); ok {
			dropRate = dr
		}
		attachment := data.Attachment("media")

		if existing, err := b.CardRepository.GetByName(ctx, name); err == nil && existing != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("A card named **%s** already exists.", name))
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		mediaURL := attachment.URL
		mediaType := "image"
		ext := strings.ToLower(path.Ext(attachment.Filename))
		if ext == ".gif" {
			mediaType = "gif"
		}

		if b.SpacesService != nil {
			body, err := fetchAttachment(ctx, attachment.URL)
			if err != nil {
				slog.Error("Failed to fetch attachment",
					slog.String("type", "cmd"),
					slog.String("url", attachment.URL),
					slog.Any("error", err),
				)
				return utils.EH.UpdateInteractionResponse(e, "Upload failed", "Could not read the attachment")
			}
			contentType := "image/jpeg"
			if attachment.ContentType != nil {
				contentType = *attachment.ContentType
			}
			url, err := b.SpacesService.UploadCardMedia(ctx, category, name, ext, contentType, body)
			if err != nil {
				slog.Error("Failed to upload card media",
					slog.String("type", "cmd"),
					slog.String("card", name),
					slog.Any("error", err),
				)
				return utils.EH.UpdateInteractionResponse(e, "Upload failed", "Could not store the media file")
			}
			mediaURL = url
		}

		card := &models.Card{
			Name:       name,
			Category:   category,
			Rarity:     rarity,
			MediaURL:   mediaURL,
			MediaType:  mediaType,
			DropRate:   dropRate,
			UploadedBy: e.User().ID.String(),
		}
		if err := b.CardRepository.Create(ctx, card); err != nil {
			slog.Error("Failed to create card",
				slog.String("type", "db"),
				slog.String("card", name),
				slog.Any("error", err),
			)
			return utils.EH.UpdateInteractionResponse(e, "Upload failed", "Could not save the card")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "upload",
			fmt.Sprintf("card %q (%s, %s)", name, category, rarity)); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		embed := discord.Embed{
			Title:       "✅ Card Uploaded",
			Description: fmt.Sprintf("%s **%s** · %s · %s\nDrop rate weight: %.2f", models.RarityEmoji(rarity), name, rarity, category, dropRate),
			Color:       rarityColor(rarity),
			Image:       &discord.EmbedResource{URL: mediaURL},
		}
		_, err := e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}})
		return err
	}
}

func fetchAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func AdminEditCardHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireAdmin(ctx, b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 You need admin rights for this.")
		}

		data := e.SlashCommandInteractionData()
		name := data.String("name")
		card, err := b.CardRepository.GetByName(ctx, name)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card named **%s** exists.", name))
		}

		var changes []string
		if rarity, ok := data.OptString("rarity"); ok {
			card.Rarity = rarity
			changes = append(changes, "rarity → "+rarity)
		}
		if category, ok := data.OptString("category"); ok {
			card.Category = category
			changes = append(changes, "category → "+category)
		}
		if dropRate, ok := data.OptFloat("droprate"); ok {
			card.DropRate = dropRate
			changes = append(changes, fmt.Sprintf("droprate → %.2f", dropRate))
		}
		if len(changes) == 0 {
			return utils.EH.CreateWarningEmbed(e, "Nothing to change.")
		}

		if err := b.CardRepository.Update(ctx, card); err != nil {
			slog.Error("Failed to update card",
				slog.String("type", "db"),
				slog.String("card", name),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to save the card. Please try again later.")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "editcard",
			fmt.Sprintf("card %q: %s", card.Name, strings.Join(changes, ", "))); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("**%s** updated: %s", card.Name, strings.Join(changes, ", ")))
	}
}

func AdminDeleteCardHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireAdmin(ctx, b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 You need admin rights for this.")
		}

		name := e.SlashCommandInteractionData().String("name")
		card, err := b.CardRepository.GetByName(ctx, name)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No card named **%s** exists.", name))
		}

		b.Cooldowns.SetPending(e.User().ID.String(), "deletecard", card.ID)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "⚠️ Confirm Deletion",
				Description: fmt.Sprintf("Delete %s **%s** and every owned copy? This cannot be undone.", models.RarityEmoji(card.Rarity), card.Name),
				Color:       config.WarningColor,
			}},
			Components: []discord.ContainerComponent{
				discord.ActionRowComponent{
					discord.NewDangerButton("Delete", "/deletecard/confirm"),
					discord.NewSecondaryButton("Cancel", "/deletecard/cancel"),
				},
			},
		})
	}
}

func DeleteCardConfirmHandler(b *cardfall.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		value, ok := b.Cooldowns.TakePending(e.User().ID.String(), "deletecard")
		if !ok {
			return utils.EH.CreateEphemeralError(e, "Nothing pending to confirm, or it expired.")
		}
		cardID := value.(int64)

		card, err := b.CardRepository.GetByID(ctx, cardID)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "That card no longer exists.")
		}

		if err := b.CardRepository.Delete(ctx, cardID); err != nil {
			slog.Error("Failed to delete card",
				slog.String("type", "db"),
				slog.Int64("card_id", cardID),
				slog.Any("error", err),
			)
			return utils.EH.CreateEphemeralError(e, "Deletion failed. Please try again later.")
		}

		if b.SpacesService != nil {
			if err := b.SpacesService.DeleteCardMedia(ctx, card.Category, card.Name); err != nil {
				slog.Error("Failed to delete card media",
					slog.String("type", "cmd"),
					slog.String("card", card.Name),
					slog.Any("error", err),
				)
			}
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "deletecard",
			fmt.Sprintf("card %q (id %d)", card.Name, cardID)); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Title:       "🗑️ Card Deleted",
				Description: fmt.Sprintf("**%s** is gone.", card.Name),
				Color:       config.ErrorColor,
			}},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

func DeleteCardCancelHandler(b *cardfall.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		b.Cooldowns.DropPending(e.User().ID.String(), "deletecard")
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Description: "Deletion cancelled.",
				Color:       config.InfoColor,
			}},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

func AdminSetDropHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireAdmin(ctx, b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 You need admin rights for this.")
		}

		multiplier := e.SlashCommandInteractionData().Float("multiplier")
		if multiplier < config.MinDropMultiplier || multiplier > config.MaxDropMultiplier {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Multiplier must be between %.1f and %.1f.",
				config.MinDropMultiplier, config.MaxDropMultiplier))
		}

		if err := b.AdminRepository.SetDropMultiplier(ctx, multiplier); err != nil {
			slog.Error("Failed to set drop multiplier",
				slog.String("type", "db"),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to save the setting. Please try again later.")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "setdrop",
			fmt.Sprintf("multiplier %.2f", multiplier)); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🎛️ Global catch multiplier set to **%.2f×**.", multiplier))
	}
}

func AdminStatsHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if !requireAdmin(ctx, b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 You need admin rights for this.")
		}

		userCount, _ := b.UserRepository.Count(ctx)
		cardCount, _ := b.CardRepository.Count(ctx)
		txCount, _ := b.TransactionRepository.Count(ctx)
		multiplier, _ := b.AdminRepository.GetDropMultiplier(ctx)
		byRarity, err := b.CardRepository.CountByRarity(ctx)
		if err != nil {
			byRarity = map[string]int{}
		}

		var rarityLines strings.Builder
		for _, rarity := range models.Rarities {
			rarityLines.WriteString(fmt.Sprintf("%s %s: %d\n", models.RarityEmoji(rarity), rarity, byRarity[rarity]))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "📊 Game Statistics",
				Color: config.InfoColor,
				Fields: []discord.EmbedField{
					{Name: "👥 Players", Value: utils.FormatNumber(int64(userCount)), Inline: ptr(true)},
					{Name: "🃏 Cards", Value: utils.FormatNumber(int64(cardCount)), Inline: ptr(true)},
					{Name: "💳 Transactions", Value: utils.FormatNumber(int64(txCount)), Inline: ptr(true)},
					{Name: "🎛️ Drop multiplier", Value: fmt.Sprintf("%.2f×", multiplier), Inline: ptr(true)},
					{Name: "Catalog by rarity", Value: rarityLines.String()},
				},
			}},
		})
	}
}
