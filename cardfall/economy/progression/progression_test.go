package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) GetByDiscordID(_ context.Context, _ string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeUsers) SetProgress(_ context.Context, _ string, level int, xp int64) error {
	f.user.Level = level
	f.user.XP = xp
	return nil
}

func (f *fakeUsers) SetDailyClaim(_ context.Context, _ string, lastDaily string, streak int) error {
	f.user.LastDaily = lastDaily
	f.user.Streak = streak
	f.user.DaysPlayed++
	return nil
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{5999, 9},
		{6000, 10},
		{112000, 26},
		{9999999, 26},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestService_AddXP(t *testing.T) {
	tests := []struct {
		name          string
		startXP       int64
		startLevel    int
		amount        int64
		wantLevel     int
		wantLeveledUp bool
	}{
		{"no level change", 0, 1, 50, 1, false},
		{"single level", 50, 1, 100, 2, true},
		{"multiple levels in one grant", 0, 1, 1000, 6, true},
		{"capped at max level", 111999, 25, 5000, 26, true},
		{"stays at cap", 200000, 26, 5000, 26, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeUsers{user: &models.User{DiscordID: "1", XP: tt.startXP, Level: tt.startLevel}}
			s := NewService(f, Config{DailyBonusBase: 200, StreakCap: 5})

			got, err := s.AddXP(context.Background(), "1", tt.amount)
			if err != nil {
				t.Fatalf("AddXP() error = %v", err)
			}
			if got.NewLevel != tt.wantLevel {
				t.Errorf("NewLevel = %d, want %d", got.NewLevel, tt.wantLevel)
			}
			if got.LeveledUp != tt.wantLeveledUp {
				t.Errorf("LeveledUp = %v, want %v", got.LeveledUp, tt.wantLeveledUp)
			}
			if got.XP != tt.startXP+tt.amount {
				t.Errorf("XP = %d, want %d", got.XP, tt.startXP+tt.amount)
			}
		})
	}
}

func TestDailyBonus(t *testing.T) {
	tests := []struct {
		streak int
		want   int64
	}{
		{1, 200},
		{2, 300},
		{3, 400},
		{5, 600},
		{9, 600}, // capped at 5
	}
	for _, tt := range tests {
		if got := DailyBonus(200, tt.streak, 5); got != tt.want {
			t.Errorf("DailyBonus(200, %d, 5) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestService_ClaimDaily(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastDaily  string
		streak     int
		wantStreak int
		wantErr    error
	}{
		{"first ever claim", "", 0, 1, nil},
		{"continues streak from yesterday", "2025-06-09", 3, 4, nil},
		{"streak resets after a gap", "2025-06-05", 7, 1, nil},
		{"already claimed today", "2025-06-10", 2, 0, ErrAlreadyClaimed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeUsers{user: &models.User{DiscordID: "1", LastDaily: tt.lastDaily, Streak: tt.streak}}
			s := NewService(f, Config{DailyBonusBase: 200, StreakCap: 5})

			got, err := s.ClaimDaily(context.Background(), "1", now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ClaimDaily() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if f.user.Streak != tt.streak {
					t.Errorf("failed claim mutated streak: %d, want %d", f.user.Streak, tt.streak)
				}
				return
			}
			if got.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", got.Streak, tt.wantStreak)
			}
			if got.Bonus != DailyBonus(200, tt.wantStreak, 5) {
				t.Errorf("Bonus = %d, want %d", got.Bonus, DailyBonus(200, tt.wantStreak, 5))
			}
			if f.user.LastDaily != "2025-06-10" {
				t.Errorf("LastDaily = %q, want 2025-06-10", f.user.LastDaily)
			}
			if f.user.DaysPlayed != 1 {
				t.Errorf("DaysPlayed = %d, want 1", f.user.DaysPlayed)
			}
		})
	}

	// Claiming late at night then early next morning still counts as
	// consecutive days.
	f := &fakeUsers{user: &models.User{DiscordID: "1", LastDaily: "2025-06-09", Streak: 1}}
	s := NewService(f, Config{DailyBonusBase: 200, StreakCap: 5})
	morning := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	got, err := s.ClaimDaily(context.Background(), "1", morning)
	if err != nil {
		t.Fatalf("ClaimDaily() error = %v", err)
	}
	if got.Streak != 2 {
		t.Errorf("Streak = %d, want 2", got.Streak)
	}
}
