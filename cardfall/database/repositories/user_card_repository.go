package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type UserCardRepository interface {
	Add(ctx context.Context, userID string, cardID int64) error
	GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error)
	Owns(ctx context.Context, userID string, cardID int64) (bool, error)
	SetFavorite(ctx context.Context, userID string, cardID int64) error
	ClearFavorite(ctx context.Context, userID string) error
	GetFavorite(ctx context.Context, userID string) (*models.UserCard, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	DistinctRarities(ctx context.Context, userID string) (int, error)
	HasRarity(ctx context.Context, userID, rarity string) (bool, error)
}

type userCardRepository struct {
	db *bun.DB
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{db: db}
}

func (r *userCardRepository) Add(ctx context.Context, userID string, cardID int64) error {
	uc := &models.UserCard{
		UserID: userID,
		CardID: cardID,
	}
	_, err := r.db.NewInsert().Model(uc).Exec(ctx)
	return err
}

func (r *userCardRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error) {
	var cards []*models.UserCard
	err := r.db.NewSelect().
		Model(&cards).
		Relation("Card").
		Where("uc.user_id = ?", userID).
		Order("uc.caught_at DESC").
		Scan(ctx)
	return cards, err
}

func (r *userCardRepository) Owns(ctx context.Context, userID string, cardID int64) (bool, error) {
	return r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Exists(ctx)
}

// SetFavorite clears the previous favorite and marks the new one inside
// one transaction so at most one row per user carries the flag.
func (r *userCardRepository) SetFavorite(ctx context.Context, userID string, cardID int64) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*models.UserCard)(nil)).
			Set("favorite = ?", false).
			Where("user_id = ? AND favorite = ?", userID, true).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewUpdate().
			Model((*models.UserCard)(nil)).
			Set("favorite = ?", true).
			Where("user_id = ? AND card_id = ?", userID, cardID).
			Exec(ctx)
		return err
	})
}

func (r *userCardRepository) ClearFavorite(ctx context.Context, userID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("favorite = ?", false).
		Where("user_id = ? AND favorite = ?", userID, true).
		Exec(ctx)
	return err
}

func (r *userCardRepository) GetFavorite(ctx context.Context, userID string) (*models.UserCard, error) {
	uc := new(models.UserCard)
	err := r.db.NewSelect().
		Model(uc).
		Relation("Card").
		Where("uc.user_id = ? AND uc.favorite = ?", userID, true).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return uc, nil
}

func (r *userCardRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	return r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
}

func (r *userCardRepository) DistinctRarities(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.NewSelect().
		ColumnExpr("COUNT(DISTINCT c.rarity)").
		TableExpr("user_cards AS uc").
		Join("JOIN cards AS c ON c.id = uc.card_id").
		Where("uc.user_id = ?", userID).
		Scan(ctx, &count)
	return count, err
}

func (r *userCardRepository) HasRarity(ctx context.Context, userID, rarity string) (bool, error) {
	return r.db.NewSelect().
		TableExpr("user_cards AS uc").
		Join("JOIN cards AS c ON c.id = uc.card_id").
		Where("uc.user_id = ? AND c.rarity = ?", userID, rarity).
		Exists(ctx)
}
