// Package weekly settles the weekly coin leaderboard: once the week
// stored on the board falls behind the calendar week, the top scorer
// is paid the winner bonus and the finished rows are cleared.
package weekly

import (
	"context"
	"log/slog"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/database/repositories"
)

// Board is the slice of the weekly score store the rollover needs.
type Board interface {
	OldestWeekStart(ctx context.Context) (string, error)
	GetTop(ctx context.Context, weekStart string, limit int) ([]*models.WeeklyScore, error)
	ClearBefore(ctx context.Context, weekStart string) error
}

// Rewarder pays the winner bonus.
type Rewarder interface {
	Credit(ctx context.Context, userID string, amount int64, txType, note string) error
}

type Service struct {
	board  Board
	ledger Rewarder
	bonus  int64
	now    func() time.Time
}

func NewService(board Board, ledger Rewarder, bonus int64) *Service {
	return &Service{
		board:  board,
		ledger: ledger,
		bonus:  bonus,
		now:    time.Now,
	}
}

// Rollover pays the winner of the oldest finished week and clears every
// row older than the current week. While the board only holds current
// rows it does nothing, so it is safe to run from a ticker. Rows written
// for the running week survive the cleanup.
func (s *Service) Rollover(ctx context.Context) error {
	oldest, err := s.board.OldestWeekStart(ctx)
	if err != nil {
		return err
	}

	current := repositories.WeekStart(s.now())
	if oldest == "" || oldest >= current {
		return nil
	}

	top, err := s.board.GetTop(ctx, oldest, 1)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		winner := top[0]
		if err := s.ledger.Credit(ctx, winner.UserID, s.bonus, models.TxWeeklyWin, "weekly board winner"); err != nil {
			return err
		}
		slog.Info("Weekly winner paid",
			slog.String("discord_id", winner.UserID),
			slog.String("username", winner.Username),
			slog.Int64("bonus", s.bonus),
			slog.String("week", oldest))
	}

	return s.board.ClearBefore(ctx, current)
}
