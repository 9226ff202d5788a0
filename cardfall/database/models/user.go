package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull,unique"`
	Username  string `bun:"username,notnull"`

	// Economy
	Coins      int64 `bun:"coins,notnull,default:0"`
	TotalSpent int64 `bun:"total_spent,notnull,default:0"`

	// Progression
	Level     int    `bun:"level,notnull,default:1"`
	XP        int64  `bun:"xp,notnull,default:0"`
	Streak    int    `bun:"streak,notnull,default:0"`
	LastDaily string `bun:"last_daily"` // calendar date, YYYY-MM-DD, empty when never claimed

	// Social
	MarriedTo   string `bun:"married_to"`
	ActiveTitle string `bun:"active_title"`

	// Game stats
	TotalCaught int64 `bun:"total_caught,notnull,default:0"`
	SlotsWins   int64 `bun:"slots_wins,notnull,default:0"` // cumulative slot winnings in coins
	Jackpots    int   `bun:"jackpots,notnull,default:0"`
	BestCombo   int   `bun:"best_combo,notnull,default:0"`
	DaysPlayed  int   `bun:"days_played,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
