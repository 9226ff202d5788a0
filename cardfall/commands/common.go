package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo/handler"
	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/utils"
)

// shared rng for the game generators; handlers run concurrently
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func withRand[T any](f func(r *rand.Rand) T) T {
	rngMu.Lock()
	defer rngMu.Unlock()
	return f(rng)
}

// ensureUser loads the player record, creating it with starting coins
// on first contact.
func ensureUser(ctx context.Context, b *cardfall.Bot, e *handler.CommandEvent) (*models.User, error) {
	return b.UserRepository.GetOrCreate(ctx, e.User().ID.String(), e.User().Username, b.Cfg.Game.StartingCoins)
}

// grantXP awards XP and returns a level-up notice line, or "".
func grantXP(ctx context.Context, b *cardfall.Bot, userID string, amount int64) string {
	result, err := b.Progression.AddXP(ctx, userID, amount)
	if err != nil {
		slog.Error("Failed to grant XP",
			slog.String("type", "db"),
			slog.String("discord_id", userID),
			slog.Any("error", err),
		)
		return ""
	}
	if result.LeveledUp {
		return fmt.Sprintf("⬆️ **Level up!** You reached level %d", result.NewLevel)
	}
	return ""
}

// settleGoals advances missions for an action and sweeps achievements
// and titles. Mission rewards are paid out immediately. Returns notice
// lines for the response embed; persistence errors are logged and
// swallowed so the triggering command still succeeds.
func settleGoals(ctx context.Context, b *cardfall.Bot, userID, missionType string, delta int64) []string {
	var lines []string

	notices, err := b.Goals.Advance(ctx, userID, missionType, delta)
	if err != nil {
		slog.Error("Failed to advance missions",
			slog.String("type", "db"),
			slog.String("discord_id", userID),
			slog.String("mission_type", missionType),
			slog.Any("error", err),
		)
	}
	for _, notice := range notices {
		m := notice.Mission
		if err := b.Ledger.Credit(ctx, userID, m.Reward, models.TxMission, m.Name); err != nil {
			slog.Error("Failed to pay mission reward",
				slog.String("type", "db"),
				slog.String("discord_id", userID),
				slog.String("mission_id", m.ID),
				slog.Any("error", err),
			)
			continue
		}
		lines = append(lines, fmt.Sprintf("🎯 **Mission complete:** %s (+%s coins)", m.Name, utils.FormatNumber(m.Reward)))
	}

	achievements, err := b.Goals.CheckAchievements(ctx, userID)
	if err != nil {
		slog.Error("Failed to check achievements",
			slog.String("type", "db"),
			slog.String("discord_id", userID),
			slog.Any("error", err),
		)
	}
	for _, ach := range achievements {
		lines = append(lines, fmt.Sprintf("%s **Achievement unlocked:** %s", ach.Badge, ach.Name))
	}

	titles, err := b.Goals.CheckTitles(ctx, userID)
	if err != nil {
		slog.Error("Failed to check titles",
			slog.String("type", "db"),
			slog.String("discord_id", userID),
			slog.Any("error", err),
		)
	}
	for _, title := range titles {
		lines = append(lines, fmt.Sprintf("🎖️ **Title earned:** %s", title.Name))
	}

	return lines
}

// appendNotices joins notice lines under a description when any exist.
func appendNotices(description string, notices []string) string {
	if len(notices) == 0 {
		return description
	}
	return description + "\n\n" + strings.Join(notices, "\n")
}
