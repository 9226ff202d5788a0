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
	"github.com/sayuri-dev/cardfall/cardfall/economy/social"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Give = discord.SlashCommandCreate{
	Name:        "give",
	Description: "💝 Give coins to another player",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Player to give coins to",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "Coins to give",
			Required:    true,
			MinValue:    ptr(1),
		},
	},
}

var Marry = discord.SlashCommandCreate{
	Name:        "marry",
	Description: "💍 Propose to another player",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Player to marry",
			Required:    true,
		},
	},
}

var Divorce = discord.SlashCommandCreate{
	Name:        "divorce",
	Description: "💔 End your marriage",
}

var Friends = discord.SlashCommandCreate{
	Name:        "friends",
	Description: "🤝 List your friends",
}

func GiveHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		amount := int64(data.Int("amount"))

		if target.Bot {
			return utils.EH.CreateErrorEmbed(e, "Bots have no use for coins.")
		}

		// make sure the recipient has a profile to receive into
		if _, err := b.UserRepository.GetOrCreate(ctx, target.ID.String(), target.Username, b.Cfg.Game.StartingCoins); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the recipient. Please try again later.")
		}

		err = b.Social.Give(ctx, user.DiscordID, target.ID.String(), amount)
		switch {
		case errors.Is(err, social.ErrSelfTarget):
			return utils.EH.CreateWarningEmbed(e, "You can't give coins to yourself.")
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You don't have **%s coins** to give.", utils.FormatNumber(amount)))
		case err != nil:
			slog.Error("Failed to give coins",
				slog.String("type", "db"),
				slog.String("from", user.DiscordID),
				slog.String("to", target.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Transfer failed. Please try again later.")
		}

		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeGive, amount)

		description := fmt.Sprintf("You gave **%s coins** to %s! 🤝 You are now friends.",
			utils.FormatNumber(amount), target.Mention())

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "💝 Gift Sent",
				Description: appendNotices(description, notices),
				Color:       config.SuccessColor,
			}},
		})
	}
}

func MarryHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		target := e.SlashCommandInteractionData().User("user")
		if target.Bot {
			return utils.EH.CreateErrorEmbed(e, "You can't marry a bot.")
		}

		if _, err := b.UserRepository.GetOrCreate(ctx, target.ID.String(), target.Username, b.Cfg.Game.StartingCoins); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load that player. Please try again later.")
		}

		err = b.Social.Marry(ctx, user.DiscordID, target.ID.String())
		switch {
		case errors.Is(err, social.ErrSelfTarget):
			return utils.EH.CreateWarningEmbed(e, "You can't marry yourself.")
		case errors.Is(err, social.ErrAlreadyMarried):
			return utils.EH.CreateWarningEmbed(e, "One of you is already married!")
		case err != nil:
			slog.Error("Failed to marry",
				slog.String("type", "db"),
				slog.String("user", user.DiscordID),
				slog.String("partner", target.ID.String()),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "The ceremony failed. Please try again later.")
		}

		// no mission listens for marriage, but achievements and titles do
		notices := settleGoals(ctx, b, user.DiscordID, models.MissionTypeGive, 0)
		if line := grantXP(ctx, b, user.DiscordID, config.MarryXP); line != "" {
			notices = append(notices, line)
		}

		description := fmt.Sprintf("💒 %s and %s are now married! (+%d XP)",
			e.User().Mention(), target.Mention(), config.MarryXP)

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "💍 Wedding Bells",
				Description: appendNotices(description, notices),
				Color:       config.SuccessColor,
			}},
		})
	}
}

func DivorceHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		partnerID, err := b.Social.Divorce(ctx, user.DiscordID)
		if errors.Is(err, social.ErrNotMarried) {
			return utils.EH.CreateWarningEmbed(e, "You aren't married.")
		}
		if err != nil {
			slog.Error("Failed to divorce",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "The paperwork failed. Please try again later.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "💔 Divorced",
				Description: fmt.Sprintf("You and <@%s> have gone separate ways.", partnerID),
				Color:       config.WarningColor,
			}},
		})
	}
}

func FriendsHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		friends, err := b.Social.FriendList(ctx, user.DiscordID)
		if err != nil {
			slog.Error("Failed to list friends",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your friends. Please try again later.")
		}

		if len(friends) == 0 {
			return utils.EH.CreateInfoEmbed(e, "No friends yet. Give someone coins with `/give` to befriend them!")
		}

		mentions := make([]string, len(friends))
		for i, id := range friends {
			mentions[i] = fmt.Sprintf("<@%s>", id)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("🤝 Friends (%d)", len(friends)),
				Description: strings.Join(mentions, "\n"),
				Color:       config.InfoColor,
			}},
		})
	}
}
