package models

import (
	"time"

	"github.com/uptrace/bun"
)

type SudoAdmin struct {
	bun.BaseModel `bun:"table:sudo_admins,alias:sa"`

	UserID  string    `bun:"user_id,pk"`
	AddedBy string    `bun:"added_by,notnull"`
	AddedAt time.Time `bun:"added_at,notnull,default:current_timestamp"`
}

type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID        int64     `bun:"id,pk,autoincrement"`
	AdminID   string    `bun:"admin_id,notnull"`
	Action    string    `bun:"action,notnull"`
	Details   string    `bun:"details"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Setting is a key/value row for runtime-tunable globals, e.g. the
// drop-rate multiplier set by /setdrop.
type Setting struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

const SettingDropMultiplier = "drop_multiplier"
