// Package progression tracks XP levels, daily claims and login streaks.
package progression

import (
	"context"
	"errors"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

var ErrAlreadyClaimed = errors.New("daily bonus already claimed today")

// LevelThresholds holds the cumulative XP needed to sit at each level.
// Index 0 is level 1; the last index is the level cap.
var LevelThresholds = []int64{
	0, 100, 250, 500, 900, 1500, 2300, 3300, 4500, 6000,
	8000, 10500, 13500, 17000, 21000, 25500, 30500, 36000,
	42000, 49000, 57000, 66000, 76000, 87000, 99000, 112000,
}

var MaxLevel = len(LevelThresholds)

const dateLayout = "2006-01-02"

type UserStore interface {
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	SetProgress(ctx context.Context, discordID string, level int, xp int64) error
	SetDailyClaim(ctx context.Context, discordID, lastDaily string, streak int) error
}

type Config struct {
	DailyBonusBase int64
	StreakCap      int
}

type Service struct {
	users UserStore
	cfg   Config
}

func NewService(users UserStore, cfg Config) *Service {
	return &Service{users: users, cfg: cfg}
}

type XPResult struct {
	LeveledUp bool
	NewLevel  int
	XP        int64
}

// LevelForXP returns the level a given cumulative XP amount sits at.
func LevelForXP(xp int64) int {
	level := 1
	for level < MaxLevel && xp >= LevelThresholds[level] {
		level++
	}
	return level
}

// AddXP grants XP and walks the user up the threshold table. Levels
// never go down and stop at the cap.
func (s *Service) AddXP(ctx context.Context, userID string, amount int64) (XPResult, error) {
	if amount < 0 {
		amount = 0
	}

	user, err := s.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return XPResult{}, err
	}

	newXP := user.XP + amount
	newLevel := LevelForXP(newXP)
	if newLevel < user.Level {
		newLevel = user.Level
	}

	if err := s.users.SetProgress(ctx, userID, newLevel, newXP); err != nil {
		return XPResult{}, err
	}

	return XPResult{
		LeveledUp: newLevel > user.Level,
		NewLevel:  newLevel,
		XP:        newXP,
	}, nil
}

type DailyClaim struct {
	Streak int
	Bonus  int64
}

// DailyBonus computes the payout for a given streak: the base amount
// plus half the base for every streak day past the first, capped.
func DailyBonus(base int64, streak, cap int) int64 {
	if streak < 1 {
		streak = 1
	}
	if streak > cap {
		streak = cap
	}
	return base + base*int64(streak-1)/2
}

// ClaimDaily marks today's claim. Eligibility is calendar-date based:
// one claim per local date, no 24-hour timer. The streak continues only
// when the previous claim was exactly yesterday.
func (s *Service) ClaimDaily(ctx context.Context, userID string, now time.Time) (DailyClaim, error) {
	user, err := s.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return DailyClaim{}, err
	}

	today := now.Format(dateLayout)
	if user.LastDaily == today {
		return DailyClaim{}, ErrAlreadyClaimed
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	streak := 1
	if user.LastDaily == yesterday {
		streak = user.Streak + 1
	}

	if err := s.users.SetDailyClaim(ctx, userID, today, streak); err != nil {
		return DailyClaim{}, err
	}

	return DailyClaim{
		Streak: streak,
		Bonus:  DailyBonus(s.cfg.DailyBonusBase, streak, s.cfg.StreakCap),
	}, nil
}
