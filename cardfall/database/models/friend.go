package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Friendship rows are stored in both directions so that friend lists
// and counts are a single indexed lookup.
type Friendship struct {
	bun.BaseModel `bun:"table:friendships,alias:f"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull,unique:friend_pair"`
	FriendID  string    `bun:"friend_id,notnull,unique:friend_pair"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
