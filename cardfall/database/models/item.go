package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ShopItem struct {
	bun.BaseModel `bun:"table:shop_items,alias:si"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Price       int64  `bun:"price,notnull"`
	Effect      string `bun:"effect,notnull"`
	Duration    int64  `bun:"duration,notnull,default:0"` // seconds, 0 for instant/stacking items
	Active      bool   `bun:"active,notnull,default:true"`
}

type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull,unique:user_item"`
	ItemID    string    `bun:"item_id,notnull,unique:user_item"`
	Quantity  int       `bun:"quantity,notnull,default:0"`
	ExpiresAt time.Time `bun:"expires_at,nullzero"`
}
