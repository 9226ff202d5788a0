package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	GetOrCreate(ctx context.Context, discordID, username string, startingCoins int64) (*models.User, error)
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	AddCoins(ctx context.Context, discordID string, delta int64) error
	AddTotalSpent(ctx context.Context, discordID string, delta int64) error
	SetProgress(ctx context.Context, discordID string, level int, xp int64) error
	SetDailyClaim(ctx context.Context, discordID, lastDaily string, streak int) error
	SetMarriedTo(ctx context.Context, discordID, partnerID string) error
	SetActiveTitle(ctx context.Context, discordID, titleID string) error
	IncrementTotalCaught(ctx context.Context, discordID string) error
	AddSlotsWinnings(ctx context.Context, discordID string, delta int64) error
	IncrementJackpots(ctx context.Context, discordID string) error
	SetBestCombo(ctx context.Context, discordID string, combo int) error
	GetTopByCoins(ctx context.Context, limit int) ([]*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetOrCreate(ctx context.Context, discordID, username string, startingCoins int64) (*models.User, error) {
	user, err := r.GetByDiscordID(ctx, discordID)
	if err == nil {
		if user.Username != username && username != "" {
			_, _ = r.db.NewUpdate().
				Model((*models.User)(nil)).
				Set("username = ?", username).
				Where("discord_id = ?", discordID).
				Exec(ctx)
			user.Username = username
		}
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user = &models.User{
		DiscordID: discordID,
		Username:  username,
		Coins:     startingCoins,
		Level:     1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}

	slog.Info("New player registered",
		slog.String("type", "db"),
		slog.String("discord_id", discordID),
		slog.String("username", username))
	return user, nil
}

func (r *userRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(user).
		WherePK().
		Exec(ctx)
	return err
}

func (r *userRepository) AddCoins(ctx context.Context, discordID string, delta int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("coins = coins + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) AddTotalSpent(ctx context.Context, discordID string, delta int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("total_spent = total_spent + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetProgress(ctx context.Context, discordID string, level int, xp int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("level = ?", level).
		Set("xp = ?", xp).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetDailyClaim(ctx context.Context, discordID, lastDaily string, streak int) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("last_daily = ?", lastDaily).
		Set("streak = ?", streak).
		Set("days_played = days_played + 1").
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetMarriedTo(ctx context.Context, discordID, partnerID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("married_to = ?", partnerID).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetActiveTitle(ctx context.Context, discordID, titleID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("active_title = ?", titleID).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) IncrementTotalCaught(ctx context.Context, discordID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("total_caught = total_caught + 1").
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) AddSlotsWinnings(ctx context.Context, discordID string, delta int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("slots_wins = slots_wins + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) IncrementJackpots(ctx context.Context, discordID string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("jackpots = jackpots + 1").
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}

func (r *userRepository) SetBestCombo(ctx context.Context, discordID string, combo int) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("best_combo = ?", combo).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ? AND best_combo < ?", discordID, combo).
		Exec(ctx)
	return err
}

func (r *userRepository) GetTopByCoins(ctx context.Context, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("coins DESC").
		Limit(limit).
		Scan(ctx)
	return users, err
}

func (r *userRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Order("coins DESC").
		Scan(ctx)
	return users, err
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.User)(nil)).Count(ctx)
}
