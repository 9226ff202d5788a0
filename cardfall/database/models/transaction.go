package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Transaction types.
const (
	TxDaily     = "daily"
	TxSlots     = "slots"
	TxBasket    = "basket"
	TxWheel     = "wheel"
	TxGive      = "give"
	TxShop      = "shop"
	TxAdmin     = "admin"
	TxMission   = "mission"
	TxWeeklyWin = "weekly_win"
)

// Transaction is an append-only record of a coin movement.
// FromUser is empty for system credits, ToUser is empty for pure debits.
type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:tx"`

	ID        int64     `bun:"id,pk,autoincrement"`
	FromUser  string    `bun:"from_user"`
	ToUser    string    `bun:"to_user"`
	Amount    int64     `bun:"amount,notnull"`
	Type      string    `bun:"type,notnull"`
	Note      string    `bun:"note"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
