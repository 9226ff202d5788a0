package migration

import "time"

// Documents from the legacy MongoDB deployment. Field names follow the
// old collections, which is why they don't line up with the current
// schema one to one.

type MongoUser struct {
	UserID      string     `bson:"user_id"`
	Username    string     `bson:"username"`
	Coins       int64      `bson:"coins"`
	TotalSpent  int64      `bson:"total_spent"`
	Level       int        `bson:"level"`
	XP          int64      `bson:"exp"`
	Streak      int        `bson:"streak"`
	LastDaily   string     `bson:"last_daily"`
	MarriedTo   string     `bson:"married_to"`
	TotalCaught int64      `bson:"total_caught"`
	SlotsWins   int64      `bson:"slots_winnings"`
	Jackpots    int        `bson:"jackpots"`
	BestCombo   int        `bson:"best_combo"`
	DaysPlayed  int        `bson:"days_played"`
	Joined      *time.Time `bson:"joined"`
}

type MongoCard struct {
	CardID    int64   `bson:"card_id"`
	Name      string  `bson:"name"`
	Category  string  `bson:"category"`
	Rarity    string  `bson:"rarity"`
	MediaURL  string  `bson:"media_url"`
	MediaType string  `bson:"media_type"`
	DropRate  float64 `bson:"drop_rate"`
	AddedBy   string  `bson:"added_by"`
}

type MongoUserCard struct {
	UserID   string     `bson:"user_id"`
	CardID   int64      `bson:"card_id"`
	Favorite bool       `bson:"fav"`
	Obtained *time.Time `bson:"obtained"`
}

// TableStats tracks per-collection progress for the final report.
type TableStats struct {
	Read     int
	Imported int
	Skipped  int
}
