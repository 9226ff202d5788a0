package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type ItemRepository interface {
	GetShopItems(ctx context.Context) ([]*models.ShopItem, error)
	GetShopItem(ctx context.Context, id string) (*models.ShopItem, error)
	AddToInventory(ctx context.Context, userID string, item *models.ShopItem) error
	GetInventory(ctx context.Context, userID string) ([]*models.UserItem, error)
	HasEffect(ctx context.Context, userID, effectPrefix string) (bool, error)
}

type itemRepository struct {
	db *bun.DB
}

func NewItemRepository(db *bun.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetShopItems(ctx context.Context) ([]*models.ShopItem, error) {
	var items []*models.ShopItem
	err := r.db.NewSelect().
		Model(&items).
		Where("active = ?", true).
		Order("price ASC").
		Scan(ctx)
	return items, err
}

func (r *itemRepository) GetShopItem(ctx context.Context, id string) (*models.ShopItem, error) {
	item := new(models.ShopItem)
	err := r.db.NewSelect().
		Model(item).
		Where("id = ? AND active = ?", id, true).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) AddToInventory(ctx context.Context, userID string, item *models.ShopItem) error {
	ui := &models.UserItem{
		UserID:   userID,
		ItemID:   item.ID,
		Quantity: 1,
	}
	if item.Duration > 0 {
		ui.ExpiresAt = time.Now().Add(time.Duration(item.Duration) * time.Second)
	}

	_, err := r.db.NewInsert().
		Model(ui).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("quantity = quantity + 1").
		Exec(ctx)
	return err
}

func (r *itemRepository) GetInventory(ctx context.Context, userID string) ([]*models.UserItem, error) {
	var items []*models.UserItem
	err := r.db.NewSelect().
		Model(&items).
		Where("user_id = ? AND quantity > 0", userID).
		Scan(ctx)
	return items, err
}

// HasEffect reports whether the user holds any item whose effect tag
// starts with the given prefix, e.g. "catch_boost".
func (r *itemRepository) HasEffect(ctx context.Context, userID, effectPrefix string) (bool, error) {
	exists, err := r.db.NewSelect().
		TableExpr("user_items AS ui").
		Join("JOIN shop_items AS si ON si.id = ui.item_id").
		Where("ui.user_id = ? AND ui.quantity > 0 AND si.effect LIKE ?", userID, strings.TrimSuffix(effectPrefix, "%")+"%").
		Exists(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}
