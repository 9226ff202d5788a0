package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

// SeedGameData inserts the static mission, achievement, title and shop
// definitions. Existing rows are left untouched so manual edits survive
// restarts.
func (db *DB) SeedGameData(ctx context.Context) error {
	missions := []*models.Mission{
		{ID: "dm1", Name: "Card Hunter", Description: "Catch 3 cards", Type: models.MissionTypeCatch, Requirement: 3, Reward: 150, Period: models.PeriodDaily},
		{ID: "dm2", Name: "Coin Collector", Description: "Play slots 5 times", Type: models.MissionTypeSlots, Requirement: 5, Reward: 200, Period: models.PeriodDaily},
		{ID: "dm3", Name: "Hooper", Description: "Play basket 3 times", Type: models.MissionTypeBasket, Requirement: 3, Reward: 180, Period: models.PeriodDaily},
		{ID: "dm4", Name: "Socialite", Description: "Give coins to a friend", Type: models.MissionTypeGive, Requirement: 1, Reward: 100, Period: models.PeriodDaily},
		{ID: "dm5", Name: "Spinner", Description: "Spin the wheel 2 times", Type: models.MissionTypeWheel, Requirement: 2, Reward: 120, Period: models.PeriodDaily},

		{ID: "wm1", Name: "Collector", Description: "Catch 20 cards", Type: models.MissionTypeCatch, Requirement: 20, Reward: 1500, Period: models.PeriodWeekly},
		{ID: "wm2", Name: "High Roller", Description: "Play slots 30 times", Type: models.MissionTypeSlots, Requirement: 30, Reward: 2000, Period: models.PeriodWeekly},
		{ID: "wm3", Name: "MVP", Description: "Score 100 in basket", Type: models.MissionTypeBasketScore, Requirement: 100, Reward: 2500, Period: models.PeriodWeekly},
		{ID: "wm4", Name: "Generous", Description: "Give 5000 coins total", Type: models.MissionTypeGive, Requirement: 5000, Reward: 3000, Period: models.PeriodWeekly},
		{ID: "wm5", Name: "Veteran", Description: "Log in 7 days in a row", Type: models.MissionTypeStreak, Requirement: 7, Reward: 1800, Period: models.PeriodWeekly},
	}

	achievements := []*models.Achievement{
		{ID: "ach1", Name: "First Steps", Description: "Catch your first card", Badge: "🎯", ReqType: models.ReqCatchCount, ReqValue: 1},
		{ID: "ach2", Name: "Collector I", Description: "Catch 10 cards", Badge: "📦", ReqType: models.ReqCatchCount, ReqValue: 10},
		{ID: "ach3", Name: "Collector II", Description: "Catch 50 cards", Badge: "🗃️", ReqType: models.ReqCatchCount, ReqValue: 50},
		{ID: "ach4", Name: "Legendary!", Description: "Catch a Legendary card", Badge: "⚡", ReqType: models.ReqCatchLegendary, ReqValue: 1},
		{ID: "ach5", Name: "Lucky Sevens", Description: "Hit jackpot in slots", Badge: "🎰", ReqType: models.ReqJackpot, ReqValue: 1},
		{ID: "ach6", Name: "Rich!", Description: "Have 10,000 coins", Badge: "💰", ReqType: models.ReqCoins, ReqValue: 10000},
		{ID: "ach7", Name: "Millionaire", Description: "Have 100,000 coins", Badge: "💎", ReqType: models.ReqCoins, ReqValue: 100000},
		{ID: "ach8", Name: "Streak Master", Description: "Reach 7-day streak", Badge: "🔥", ReqType: models.ReqStreak, ReqValue: 7},
		{ID: "ach9", Name: "Level 10", Description: "Reach Level 10", Badge: "🌟", ReqType: models.ReqLevel, ReqValue: 10},
		{ID: "ach10", Name: "Max Level", Description: "Reach Level 25", Badge: "👑", ReqType: models.ReqLevel, ReqValue: 25},
		{ID: "ach11", Name: "Lovebird", Description: "Get married", Badge: "💍", ReqType: models.ReqMarried, ReqValue: 1},
		{ID: "ach12", Name: "Social Bee", Description: "Have 5 friends", Badge: "🤝", ReqType: models.ReqFriends, ReqValue: 5},
		{ID: "ach13", Name: "Combo King", Description: "Hit 10-combo in basket", Badge: "🏀", ReqType: models.ReqCombo, ReqValue: 10},
		{ID: "ach14", Name: "Veteran", Description: "Play for 30 days", Badge: "🎖️", ReqType: models.ReqDaysPlayed, ReqValue: 30},
		{ID: "ach15", Name: "Card Master", Description: "Collect all rarities", Badge: "🃏", ReqType: models.ReqAllRarities, ReqValue: 1},
	}

	titles := []*models.Title{
		{ID: "t1", Name: "Novice", Description: "Starting Title", Condition: models.CondDefault, Emoji: "🌱"},
		{ID: "t2", Name: "Card Hunter", Description: "Catch 20 cards", Condition: models.CondCatch20, Emoji: "🎯"},
		{ID: "t3", Name: "High Roller", Description: "Win 10,000 coins in slots", Condition: models.CondSlotsWin10K, Emoji: "🎰"},
		{ID: "t4", Name: "Legend Holder", Description: "Own a Legendary card", Condition: models.CondOwnLegendary, Emoji: "⚡"},
		{ID: "t5", Name: "Millionaire", Description: "Accumulate 100K coins", Condition: models.CondCoins100K, Emoji: "💎"},
		{ID: "t6", Name: "Lovebird", Description: "Get married", Condition: models.CondMarried, Emoji: "💍"},
		{ID: "t7", Name: "Combo Master", Description: "Hit 15+ combo in basket", Condition: models.CondCombo15, Emoji: "🏀"},
		{ID: "t8", Name: "Max Level", Description: "Reach Level 25", Condition: models.CondLevel25, Emoji: "👑"},
		{ID: "t9", Name: "Streak God", Description: "30-day login streak", Condition: models.CondStreak30, Emoji: "🔥"},
		{ID: "t10", Name: "Completionist", Description: "Complete all achievements", Condition: models.CondAllAchievements, Emoji: "🏆"},
	}

	shopItems := []*models.ShopItem{
		{ID: "s1", Name: "Catch Boost", Description: "+20% catch rate for 1 hour", Price: 500, Effect: "catch_boost_1h", Duration: 3600, Active: true},
		{ID: "s2", Name: "XP Booster", Description: "Double XP for 2 hours", Price: 800, Effect: "xp_boost_2h", Duration: 7200, Active: true},
		{ID: "s3", Name: "Lucky Charm", Description: "+15% slots win rate for 30min", Price: 400, Effect: "slots_luck_30m", Duration: 1800, Active: true},
		{ID: "s4", Name: "Coin Rain", Description: "Get 1000 coins instantly", Price: 750, Effect: "instant_1000", Duration: 0, Active: true},
		{ID: "s5", Name: "Dupe Shield", Description: "Avoid duplicate catches x5", Price: 600, Effect: "dupe_shield_5", Duration: 0, Active: true},
		{ID: "s6", Name: "Mega Ball", Description: "+30% catch rate for 1 hour", Price: 1200, Effect: "catch_boost_2h", Duration: 7200, Active: true},
		{ID: "s7", Name: "Slot Frenzy", Description: "2x slots payout for 30 min", Price: 1000, Effect: "slots_double_30m", Duration: 1800, Active: true},
		{ID: "s8", Name: "VIP Badge", Description: "Show VIP status for 1 day", Price: 2000, Effect: "vip_badge_1d", Duration: 86400, Active: true},
	}

	if _, err := db.bunDB.NewInsert().Model(&missions).Ignore().Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed missions: %w", err)
	}
	if _, err := db.bunDB.NewInsert().Model(&achievements).Ignore().Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed achievements: %w", err)
	}
	if _, err := db.bunDB.NewInsert().Model(&titles).Ignore().Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed titles: %w", err)
	}
	if _, err := db.bunDB.NewInsert().Model(&shopItems).Ignore().Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed shop items: %w", err)
	}

	slog.Info("Game definitions seeded",
		slog.String("type", "db"),
		slog.Int("missions", len(missions)),
		slog.Int("achievements", len(achievements)),
		slog.Int("titles", len(titles)),
		slog.Int("shop_items", len(shopItems)))

	return nil
}
