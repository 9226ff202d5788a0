package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type WeeklyRepository interface {
	AddScore(ctx context.Context, userID, username string, delta int64) error
	GetTop(ctx context.Context, weekStart string, limit int) ([]*models.WeeklyScore, error)
	OldestWeekStart(ctx context.Context) (string, error)
	ClearBefore(ctx context.Context, weekStart string) error
}

type weeklyRepository struct {
	db *bun.DB
}

func NewWeeklyRepository(db *bun.DB) WeeklyRepository {
	return &weeklyRepository{db: db}
}

// WeekStart returns the Monday of t's week as YYYY-MM-DD.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

// AddScore credits coins toward the current week. A row left over from
// an earlier week is rolled forward instead of accumulating, so a score
// earned after Monday midnight never lands on the finished board.
func (r *weeklyRepository) AddScore(ctx context.Context, userID, username string, delta int64) error {
	score := &models.WeeklyScore{
		UserID:      userID,
		Username:    username,
		WeeklyCoins: delta,
		WeekStart:   WeekStart(time.Now()),
	}
	_, err := r.db.NewInsert().
		Model(score).
		On("CONFLICT (user_id) DO UPDATE").
		Set("weekly_coins = CASE WHEN week_start = EXCLUDED.week_start THEN weekly_coins + EXCLUDED.weekly_coins ELSE EXCLUDED.weekly_coins END").
		Set("week_start = EXCLUDED.week_start").
		Set("username = EXCLUDED.username").
		Exec(ctx)
	return err
}

func (r *weeklyRepository) GetTop(ctx context.Context, weekStart string, limit int) ([]*models.WeeklyScore, error) {
	var scores []*models.WeeklyScore
	err := r.db.NewSelect().
		Model(&scores).
		Where("week_start = ?", weekStart).
		Order("weekly_coins DESC").
		Limit(limit).
		Scan(ctx)
	return scores, err
}

// OldestWeekStart returns the earliest week_start still on the board,
// or empty when the board has no rows yet.
func (r *weeklyRepository) OldestWeekStart(ctx context.Context) (string, error) {
	var weekStart string
	err := r.db.NewSelect().
		Model((*models.WeeklyScore)(nil)).
		Column("week_start").
		Order("week_start ASC").
		Limit(1).
		Scan(ctx, &weekStart)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return weekStart, err
}

// ClearBefore deletes scores from weeks older than the given week,
// leaving rows already written for the current week untouched.
func (r *weeklyRepository) ClearBefore(ctx context.Context, weekStart string) error {
	_, err := r.db.NewDelete().
		Model((*models.WeeklyScore)(nil)).
		Where("week_start < ?", weekStart).
		Exec(ctx)
	return err
}
