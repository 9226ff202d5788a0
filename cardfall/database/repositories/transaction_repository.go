package repositories

import (
	"context"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error)
	Count(ctx context.Context) (int, error)
}

type transactionRepository struct {
	db *bun.DB
}

func NewTransactionRepository(db *bun.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	tx.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(tx).Exec(ctx)
	return err
}

func (r *transactionRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.NewSelect().
		Model(&txs).
		Where("from_user = ? OR to_user = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return txs, err
}

func (r *transactionRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.Transaction)(nil)).Count(ctx)
}
