package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type Config struct {
	Path string `toml:"path"`
}

type DB struct {
	sqlDB *sql.DB
	bunDB *bun.DB
}

// New opens (creating if needed) the single-file game database.
func New(ctx context.Context, cfg Config) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path)

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids lock churn.
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if err := bunDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &DB{sqlDB: sqldb, bunDB: bunDB}, nil
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

func (db *DB) Ping(ctx context.Context) error {
	return db.bunDB.PingContext(ctx)
}

// InitializeSchema creates all tables and indexes, then seeds the static
// game definitions. Safe to run on every startup.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Card)(nil),
		(*models.UserCard)(nil),
		(*models.ShopItem)(nil),
		(*models.UserItem)(nil),
		(*models.Mission)(nil),
		(*models.UserMission)(nil),
		(*models.Achievement)(nil),
		(*models.UserAchievement)(nil),
		(*models.Title)(nil),
		(*models.UserTitle)(nil),
		(*models.Transaction)(nil),
		(*models.WeeklyScore)(nil),
		(*models.Friendship)(nil),
		(*models.SudoAdmin)(nil),
		(*models.AuditLog)(nil),
		(*models.Setting)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);",
		"CREATE INDEX IF NOT EXISTS idx_cards_rarity ON cards(rarity);",
		"CREATE INDEX IF NOT EXISTS idx_user_cards_user_id ON user_cards(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_cards_user_card ON user_cards(user_id, card_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_items_user_id ON user_items(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_missions_user_id ON user_missions(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_achievements_user_id ON user_achievements(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_titles_user_id ON user_titles(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_from_user ON transactions(from_user);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_to_user ON transactions(to_user);",
		"CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);",
		"CREATE INDEX IF NOT EXISTS idx_friendships_user_id ON friendships(user_id);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.SeedGameData(ctx); err != nil {
		return fmt.Errorf("failed to seed game data: %w", err)
	}

	return nil
}

func (db *DB) ExecWithLog(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := db.bunDB.ExecContext(ctx, query, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", query),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", query),
		slog.Duration("took", duration),
	)
	return result, nil
}

// ResetPlayerData wipes all player state while keeping the static
// definition tables (cards, missions, achievements, titles, shop items).
func (db *DB) ResetPlayerData(ctx context.Context) error {
	tables := []string{
		"user_cards",
		"user_items",
		"user_missions",
		"user_achievements",
		"user_titles",
		"transactions",
		"weekly_scores",
		"friendships",
		"users",
	}

	for _, table := range tables {
		if _, err := db.ExecWithLog(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	slog.Info("Player data cleared",
		slog.String("type", "db"),
		slog.Any("tables", tables))
	return nil
}
