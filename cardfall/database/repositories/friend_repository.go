package repositories

import (
	"context"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type FriendRepository interface {
	AddMutual(ctx context.Context, a, b string) error
	Friends(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context, userID string) (int, error)
}

type friendRepository struct {
	db *bun.DB
}

func NewFriendRepository(db *bun.DB) FriendRepository {
	return &friendRepository{db: db}
}

// AddMutual stores the friendship in both directions; already-existing
// pairs are ignored.
func (r *friendRepository) AddMutual(ctx context.Context, a, b string) error {
	rows := []*models.Friendship{
		{UserID: a, FriendID: b},
		{UserID: b, FriendID: a},
	}
	_, err := r.db.NewInsert().Model(&rows).Ignore().Exec(ctx)
	return err
}

func (r *friendRepository) Friends(ctx context.Context, userID string) ([]string, error) {
	var friendIDs []string
	err := r.db.NewSelect().
		Model((*models.Friendship)(nil)).
		Column("friend_id").
		Where("user_id = ?", userID).
		Scan(ctx, &friendIDs)
	return friendIDs, err
}

func (r *friendRepository) Count(ctx context.Context, userID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.Friendship)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
}
