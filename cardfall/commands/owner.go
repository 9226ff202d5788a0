package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
	"golang.org/x/sync/errgroup"
)

// broadcastConcurrency caps parallel DM deliveries.
const broadcastConcurrency = 8

var Owner = discord.SlashCommandCreate{
	Name:        "owner",
	Description: "👑 Owner-only maintenance",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "addsudo",
			Description: "Grant admin rights to a user",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{Name: "user", Description: "User to promote", Required: true},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "sudolist",
			Description: "List all sudo admins",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "addcoin",
			Description: "Adjust a player's balance",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{Name: "user", Description: "Player to adjust", Required: true},
				discord.ApplicationCommandOptionInt{Name: "amount", Description: "Coins to add (negative to remove)", Required: true},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "broadcast",
			Description: "DM an announcement to every player",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{Name: "message", Description: "Announcement text", Required: true},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "reset",
			Description: "Wipe ALL player data",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "systemcheck",
			Description: "Check bot and database health",
		},
	},
}

func requireOwner(b *cardfall.Bot, e *handler.CommandEvent) bool {
	return b.IsOwner(e.User().ID.String())
}

func OwnerAddSudoHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		target := e.SlashCommandInteractionData().User("user")
		if err := b.AdminRepository.AddSudo(ctx, target.ID.String(), e.User().ID.String()); err != nil {
			slog.Error("Failed to add sudo admin",
				slog.String("type", "db"),
				slog.String("discord_id", target.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to grant admin rights. Please try again later.")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "addsudo", target.ID.String()); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%s is now a sudo admin.", target.Mention()))
	}
}

func OwnerSudoListHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		admins, err := b.AdminRepository.SudoList(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the admin list. Please try again later.")
		}
		if len(admins) == 0 {
			return utils.EH.CreateInfoEmbed(e, "No sudo admins configured.")
		}

		var description strings.Builder
		for _, admin := range admins {
			description.WriteString(fmt.Sprintf("<@%s> — added by <@%s> on %s\n",
				admin.UserID, admin.AddedBy, admin.AddedAt.Format("Jan 2, 2006")))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "👮 Sudo Admins",
				Description: description.String(),
				Color:       config.InfoColor,
			}},
		})
	}
}

func OwnerAddCoinHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		amount := int64(data.Int("amount"))

		if _, err := b.UserRepository.GetOrCreate(ctx, target.ID.String(), target.Username, b.Cfg.Game.StartingCoins); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load that player. Please try again later.")
		}

		if err := b.Ledger.Adjust(ctx, target.ID.String(), amount, "owner adjustment"); err != nil {
			slog.Error("Failed to adjust balance",
				slog.String("type", "db"),
				slog.String("discord_id", target.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Adjustment failed. Please try again later.")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "addcoin",
			fmt.Sprintf("%s %+d", target.ID, amount)); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		verb := "added to"
		if amount < 0 {
			verb = "removed from"
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("**%s coins** %s %s's balance.",
			utils.FormatNumber(amount), verb, target.Mention()))
	}
}

func OwnerBroadcastHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		message := e.SlashCommandInteractionData().String("message")

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		users, err := b.UserRepository.GetAll(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the player list. Please try again later.")
		}

		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		embed := discord.Embed{
			Title:       "📣 Announcement",
			Description: message,
			Color:       config.InfoColor,
		}

		var g errgroup.Group
		g.SetLimit(broadcastConcurrency)
		var delivered atomic.Int64
		for _, user := range users {
			userID := user.DiscordID
			g.Go(func() error {
				id, err := snowflake.Parse(userID)
				if err != nil {
					return nil
				}
				channel, err := b.Client.Rest().CreateDMChannel(id)
				if err != nil {
					return nil // DMs closed, skip
				}
				if _, err := b.Client.Rest().CreateMessage(channel.ID(), discord.MessageCreate{Embeds: []discord.Embed{embed}}); err == nil {
					delivered.Add(1)
				}
				return nil
			})
		}
		_ = g.Wait()

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "broadcast",
			fmt.Sprintf("%d/%d delivered", delivered.Load(), len(users))); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: ptr(fmt.Sprintf("📣 Broadcast delivered to %d of %d players.", delivered.Load(), len(users))),
		})
		return err
	}
}

func OwnerResetHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		b.Cooldowns.SetPending(e.User().ID.String(), "reset", true)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🚨 Confirm Full Reset",
				Description: "This wipes **every player's** coins, cards, progress and history. The card catalog survives. There is no undo.",
				Color:       config.ErrorColor,
			}},
			Components: []discord.ContainerComponent{
				discord.ActionRowComponent{
					discord.NewDangerButton("Wipe everything", "/reset/confirm"),
					discord.NewSecondaryButton("Cancel", "/reset/cancel"),
				},
			},
		})
	}
}

func ResetConfirmHandler(b *cardfall.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		if !b.IsOwner(e.User().ID.String()) {
			return utils.EH.CreateEphemeralError(e, "🚫 Owner only.")
		}
		if _, ok := b.Cooldowns.TakePending(e.User().ID.String(), "reset"); !ok {
			return utils.EH.CreateEphemeralError(e, "Nothing pending to confirm, or it expired.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if err := b.DB.ResetPlayerData(ctx); err != nil {
			slog.Error("Failed to reset player data",
				slog.String("type", "db"),
				slog.Any("error", err),
			)
			return utils.EH.CreateEphemeralError(e, "Reset failed. Check the logs.")
		}

		if err := b.AdminRepository.LogAction(ctx, e.User().ID.String(), "reset", "full player data wipe"); err != nil {
			slog.Error("Failed to write audit log", slog.String("type", "db"), slog.Any("error", err))
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Title:       "🧹 Reset Complete",
				Description: "All player data has been wiped.",
				Color:       config.SuccessColor,
			}},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

func ResetCancelHandler(b *cardfall.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		b.Cooldowns.DropPending(e.User().ID.String(), "reset")
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Description: "Reset cancelled. Phew.",
				Color:       config.InfoColor,
			}},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

func OwnerSystemCheckHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if !requireOwner(b, e) {
			return utils.EH.CreateErrorEmbed(e, "🚫 Owner only.")
		}

		dbStatus := "✅ healthy"
		pingStart := time.Now()
		if err := b.DB.Ping(ctx); err != nil {
			dbStatus = "❌ " + err.Error()
		}
		dbLatency := time.Since(pingStart)

		gatewayLatency := b.Client.Gateway().Latency()
		userCount, _ := b.UserRepository.Count(ctx)
		cardCount, _ := b.CardRepository.Count(ctx)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "🩺 System Check",
				Color: config.SuccessColor,
				Fields: []discord.EmbedField{
					{Name: "Database", Value: fmt.Sprintf("%s (%s)", dbStatus, dbLatency.Round(time.Millisecond)), Inline: ptr(true)},
					{Name: "Gateway latency", Value: gatewayLatency.Round(time.Millisecond).String(), Inline: ptr(true)},
					{Name: "Version", Value: fmt.Sprintf("%s (%s)", b.Version, b.Commit), Inline: ptr(true)},
					{Name: "Players", Value: utils.FormatNumber(int64(userCount)), Inline: ptr(true)},
					{Name: "Cards", Value: utils.FormatNumber(int64(cardCount)), Inline: ptr(true)},
				},
			}},
		})
	}
}
