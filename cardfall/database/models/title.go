package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Title unlock conditions.
const (
	CondDefault         = "default"
	CondCatch20         = "catch_20"
	CondSlotsWin10K     = "slots_win_10k"
	CondOwnLegendary    = "own_legendary"
	CondCoins100K       = "coins_100k"
	CondMarried         = "married"
	CondCombo15         = "combo_15"
	CondLevel25         = "level_25"
	CondStreak30        = "streak_30"
	CondAllAchievements = "all_achievements"
)

type Title struct {
	bun.BaseModel `bun:"table:titles,alias:t"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Condition   string `bun:"condition,notnull"`
	Emoji       string `bun:"emoji"`
}

type UserTitle struct {
	bun.BaseModel `bun:"table:user_titles,alias:ut"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull,unique:user_title"`
	TitleID  string    `bun:"title_id,notnull,unique:user_title"`
	EarnedAt time.Time `bun:"earned_at,notnull,default:current_timestamp"`
}
