package models

import "github.com/uptrace/bun"

// WeeklyScore tracks coins earned in the current competition week.
// WeekStart is the Monday of that week as YYYY-MM-DD.
type WeeklyScore struct {
	bun.BaseModel `bun:"table:weekly_scores,alias:ws"`

	UserID      string `bun:"user_id,pk"`
	Username    string `bun:"username,notnull"`
	WeeklyCoins int64  `bun:"weekly_coins,notnull,default:0"`
	WeekStart   string `bun:"week_start,notnull"`
}
