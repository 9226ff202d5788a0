package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Achievement requirement types.
const (
	ReqCatchCount     = "catch_count"
	ReqCatchLegendary = "catch_legendary"
	ReqJackpot        = "jackpot"
	ReqCoins          = "coins"
	ReqStreak         = "streak"
	ReqLevel          = "level"
	ReqMarried        = "married"
	ReqFriends        = "friends"
	ReqCombo          = "combo"
	ReqDaysPlayed     = "days_played"
	ReqAllRarities    = "all_rarities"
)

type Achievement struct {
	bun.BaseModel `bun:"table:achievements,alias:a"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Badge       string `bun:"badge"`
	ReqType     string `bun:"req_type,notnull"`
	ReqValue    int64  `bun:"req_value,notnull"`
}

type UserAchievement struct {
	bun.BaseModel `bun:"table:user_achievements,alias:ua"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        string    `bun:"user_id,notnull,unique:user_achievement"`
	AchievementID string    `bun:"achievement_id,notnull,unique:user_achievement"`
	EarnedAt      time.Time `bun:"earned_at,notnull,default:current_timestamp"`
}
