package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type AdminRepository interface {
	IsSudo(ctx context.Context, userID string) (bool, error)
	AddSudo(ctx context.Context, userID, addedBy string) error
	SudoList(ctx context.Context) ([]*models.SudoAdmin, error)
	LogAction(ctx context.Context, adminID, action, details string) error
	RecentAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error)
	GetDropMultiplier(ctx context.Context) (float64, error)
	SetDropMultiplier(ctx context.Context, multiplier float64) error
}

type adminRepository struct {
	db *bun.DB
}

func NewAdminRepository(db *bun.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsSudo(ctx context.Context, userID string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.SudoAdmin)(nil)).
		Where("user_id = ?", userID).
		Exists(ctx)
}

func (r *adminRepository) AddSudo(ctx context.Context, userID, addedBy string) error {
	admin := &models.SudoAdmin{
		UserID:  userID,
		AddedBy: addedBy,
		AddedAt: time.Now(),
	}
	_, err := r.db.NewInsert().Model(admin).Ignore().Exec(ctx)
	return err
}

func (r *adminRepository) SudoList(ctx context.Context) ([]*models.SudoAdmin, error) {
	var admins []*models.SudoAdmin
	err := r.db.NewSelect().
		Model(&admins).
		Order("added_at ASC").
		Scan(ctx)
	return admins, err
}

func (r *adminRepository) LogAction(ctx context.Context, adminID, action, details string) error {
	entry := &models.AuditLog{
		AdminID:   adminID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().Model(entry).Exec(ctx)
	return err
}

func (r *adminRepository) RecentAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	var logs []*models.AuditLog
	err := r.db.NewSelect().
		Model(&logs).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return logs, err
}

func (r *adminRepository) GetDropMultiplier(ctx context.Context) (float64, error) {
	setting := new(models.Setting)
	err := r.db.NewSelect().
		Model(setting).
		Where("key = ?", models.SettingDropMultiplier).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 1.0, nil
	}
	if err != nil {
		return 1.0, err
	}

	multiplier, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || multiplier <= 0 {
		return 1.0, nil
	}
	return multiplier, nil
}

func (r *adminRepository) SetDropMultiplier(ctx context.Context, multiplier float64) error {
	setting := &models.Setting{
		Key:   models.SettingDropMultiplier,
		Value: strconv.FormatFloat(multiplier, 'f', -1, 64),
	}
	_, err := r.db.NewInsert().
		Model(setting).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}
