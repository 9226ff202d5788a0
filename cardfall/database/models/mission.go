package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
)

// Mission progress event types.
const (
	MissionTypeCatch       = "catch"
	MissionTypeSlots       = "slots"
	MissionTypeBasket      = "basket"
	MissionTypeBasketScore = "bscore"
	MissionTypeGive        = "give"
	MissionTypeWheel       = "wheel"
	MissionTypeStreak      = "streak"
)

type Mission struct {
	bun.BaseModel `bun:"table:missions,alias:m"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Type        string `bun:"type,notnull"`
	Requirement int64  `bun:"requirement,notnull"`
	Reward      int64  `bun:"reward,notnull"`
	Period      string `bun:"period,notnull"`
}

type UserMission struct {
	bun.BaseModel `bun:"table:user_missions,alias:um"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull,unique:user_mission"`
	MissionID string    `bun:"mission_id,notnull,unique:user_mission"`
	Progress  int64     `bun:"progress,notnull,default:0"`
	Completed bool      `bun:"completed,notnull,default:false"`
	ResetAt   time.Time `bun:"reset_at,notnull"`
}
