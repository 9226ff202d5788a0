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
	"github.com/sayuri-dev/cardfall/cardfall/economy/goals"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

var Missions = discord.SlashCommandCreate{
	Name:        "missions",
	Description: "🎯 View your daily and weekly missions",
}

var Achievements = discord.SlashCommandCreate{
	Name:        "achievements",
	Description: "🏆 View your achievements",
}

var Titles = discord.SlashCommandCreate{
	Name:        "titles",
	Description: "🎖️ View your titles",
}

var SetTitle = discord.SlashCommandCreate{
	Name:        "settitle",
	Description: "🎖️ Equip an earned title",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "title",
			Description: "Name of the title to equip",
			Required:    true,
		},
	},
}

func MissionsHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		board, err := b.Goals.Board(ctx, user.DiscordID)
		if err != nil {
			slog.Error("Failed to load missions",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your missions. Please try again later.")
		}

		var daily, weekly strings.Builder
		for _, status := range board {
			m := status.Mission
			check := "⬜"
			if status.Completed {
				check = "✅"
			}
			line := fmt.Sprintf("%s **%s** — %s\n%s %d/%d · +%s coins\n",
				check, m.Name, m.Description,
				utils.ProgressBar(status.Progress, m.Requirement, 10),
				status.Progress, m.Requirement, utils.FormatNumber(m.Reward))

			if m.Period == models.PeriodWeekly {
				weekly.WriteString(line)
			} else {
				daily.WriteString(line)
			}
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "🎯 Missions",
				Color: config.InfoColor,
				Fields: []discord.EmbedField{
					{Name: "📆 Daily", Value: daily.String()},
					{Name: "🗓️ Weekly", Value: weekly.String()},
				},
				Footer: &discord.EmbedFooter{Text: "Dailies reset at midnight, weeklies on Monday"},
			}},
		})
	}
}

func AchievementsHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		all, err := b.GoalRepository.Achievements(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load achievements. Please try again later.")
		}
		earned, err := b.GoalRepository.EarnedAchievements(ctx, user.DiscordID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load achievements. Please try again later.")
		}

		var description strings.Builder
		count := 0
		for _, ach := range all {
			if earned[ach.ID] {
				description.WriteString(fmt.Sprintf("%s **%s** — %s\n", ach.Badge, ach.Name, ach.Description))
				count++
			} else {
				description.WriteString(fmt.Sprintf("🔒 ~~%s~~ — %s\n", ach.Name, ach.Description))
			}
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("🏆 Achievements (%d/%d)", count, len(all)),
				Description: description.String(),
				Color:       config.RarityLegendaryColor,
			}},
		})
	}
}

func TitlesHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		all, err := b.GoalRepository.Titles(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load titles. Please try again later.")
		}
		earned, err := b.GoalRepository.EarnedTitles(ctx, user.DiscordID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load titles. Please try again later.")
		}

		var description strings.Builder
		for _, title := range all {
			marker := "🔒"
			if earned[title.ID] {
				marker = title.Emoji
			}
			active := ""
			if title.ID == user.ActiveTitle {
				active = " ← equipped"
			}
			description.WriteString(fmt.Sprintf("%s **%s** — %s%s\n", marker, title.Name, title.Description, active))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🎖️ Titles",
				Description: description.String(),
				Color:       config.InfoColor,
				Footer:      &discord.EmbedFooter{Text: "Equip with /settitle"},
			}},
		})
	}
}

func SetTitleHandler(b *cardfall.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := ensureUser(ctx, b, e)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		query := strings.ToLower(e.SlashCommandInteractionData().String("title"))
		all, err := b.GoalRepository.Titles(ctx)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load titles. Please try again later.")
		}

		var title *models.Title
		for _, t := range all {
			if strings.ToLower(t.Name) == query || t.ID == query {
				title = t
				break
			}
		}
		if title == nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("No title named **%s** exists.", query))
		}

		err = b.Goals.SetActiveTitle(ctx, user.DiscordID, title.ID)
		if errors.Is(err, goals.ErrTitleNotEarned) {
			return utils.EH.CreateWarningEmbed(e, fmt.Sprintf("You haven't earned **%s** yet. %s", title.Name, title.Description))
		}
		if err != nil {
			slog.Error("Failed to set title",
				slog.String("type", "db"),
				slog.String("discord_id", user.DiscordID),
				slog.String("title_id", title.ID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to equip the title. Please try again later.")
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("%s **%s** is now displayed on your profile!", title.Emoji, title.Name))
	}
}
