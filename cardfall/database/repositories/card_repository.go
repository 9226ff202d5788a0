package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sayuri-dev/cardfall/cardfall/config"
	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	GetByName(ctx context.Context, name string) (*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
	GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountByRarity(ctx context.Context) (map[string]int, error)
}

type cardRepository struct {
	db    *bun.DB
	cache *lru.Cache // card ID -> *models.Card
}

func NewCardRepository(db *bun.DB) CardRepository {
	cache, _ := lru.New(config.CardCacheSize)
	return &cardRepository{db: db, cache: cache}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	card.CreatedAt = time.Now()
	_, err := r.db.NewInsert().Model(card).Exec(ctx)
	if err != nil {
		return err
	}
	r.cache.Add(card.ID, card)
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	if cached, ok := r.cache.Get(id); ok {
		return cached.(*models.Card), nil
	}

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.Add(card.ID, card)
	return card, nil
}

func (r *cardRepository) GetByName(ctx context.Context, name string) (*models.Card, error) {
	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Where("LOWER(name) = LOWER(?)", name).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Order("name ASC").
		Scan(ctx)
	return cards, err
}

func (r *cardRepository) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("rarity = ?", rarity).
		Scan(ctx)
	return cards, err
}

func (r *cardRepository) Update(ctx context.Context, card *models.Card) error {
	_, err := r.db.NewUpdate().
		Model(card).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	r.cache.Remove(card.ID)
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*models.Card)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("card %d not found", id)
	}
	r.cache.Remove(id)

	// Orphaned ownership rows go with the card
	_, err = r.db.NewDelete().
		Model((*models.UserCard)(nil)).
		Where("card_id = ?", id).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to clear ownership rows for deleted card",
			slog.String("type", "db"),
			slog.Int64("card_id", id),
			slog.Any("error", err))
	}
	return nil
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.Card)(nil)).Count(ctx)
}

func (r *cardRepository) CountByRarity(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Rarity string `bun:"rarity"`
		Count  int    `bun:"count"`
	}
	err := r.db.NewSelect().
		Model((*models.Card)(nil)).
		ColumnExpr("rarity, COUNT(*) AS count").
		Group("rarity").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Rarity] = row.Count
	}
	return counts, nil
}
