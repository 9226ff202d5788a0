package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
)

// Rarities in ascending order of scarcity.
var Rarities = []string{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

func ValidRarity(r string) bool {
	for _, known := range Rarities {
		if known == r {
			return true
		}
	}
	return false
}

func RarityEmoji(r string) string {
	switch r {
	case RarityCommon:
		return "⚪"
	case RarityUncommon:
		return "🟢"
	case RarityRare:
		return "🔵"
	case RarityEpic:
		return "🟣"
	case RarityLegendary:
		return "🟡"
	}
	return "⚪"
}

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Name       string    `bun:"name,notnull,unique"`
	Category   string    `bun:"category"`
	Rarity     string    `bun:"rarity,notnull"`
	MediaURL   string    `bun:"media_url"`
	MediaType  string    `bun:"media_type"`
	DropRate   float64   `bun:"drop_rate,notnull,default:1.0"`
	UploadedBy string    `bun:"uploaded_by"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull"`
	CardID   int64     `bun:"card_id,notnull"`
	Favorite bool      `bun:"favorite,notnull,default:false"`
	CaughtAt time.Time `bun:"caught_at,notnull,default:current_timestamp"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`
}
