package migration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrator copies players, cards and ownership rows from the legacy
// MongoDB deployment into the current database. Cards go first so that
// ownership rows never reference a missing card.
type Migrator struct {
	db        *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	stats     map[string]*TableStats
}

func NewMigrator(db *bun.DB, client *mongo.Client, dbName string) *Migrator {
	return &Migrator{
		db:        db,
		mongoDB:   client.Database(dbName),
		batchSize: 500,
		stats:     make(map[string]*TableStats),
	}
}

// SetBatchSize overrides the default insert batch size.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

func (m *Migrator) MigrateAll(ctx context.Context) error {
	start := time.Now()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"cards", m.MigrateCards},
		{"users", m.MigrateUsers},
		{"user_cards", m.MigrateUserCards},
	}

	for _, step := range steps {
		slog.Info("Starting migration step", slog.String("step", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", step.name, err)
		}
		slog.Info("Completed migration step", slog.String("step", step.name))
	}

	for name, stats := range m.stats {
		slog.Info("Migration step summary",
			slog.String("step", name),
			slog.Int("read", stats.Read),
			slog.Int("imported", stats.Imported),
			slog.Int("skipped", stats.Skipped),
		)
	}
	slog.Info("Migration completed", slog.Duration("took", time.Since(start)))
	return nil
}

func (m *Migrator) MigrateCards(ctx context.Context) error {
	stats := &TableStats{}
	m.stats["cards"] = stats

	cur, err := m.mongoDB.Collection("cards").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query cards: %w", err)
	}
	defer cur.Close(ctx)

	var batch []*models.Card
	seen := make(map[string]bool)
	for cur.Next(ctx) {
		var mc MongoCard
		if err := cur.Decode(&mc); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		card := convertCard(mc)
		if card.ID <= 0 || card.Name == "" || seen[card.Name] {
			stats.Skipped++
			continue
		}
		seen[card.Name] = true

		batch = append(batch, card)
		if len(batch) >= m.batchSize {
			if err := m.insertCards(ctx, batch); err != nil {
				return err
			}
			stats.Imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.insertCards(ctx, batch); err != nil {
			return err
		}
		stats.Imported += len(batch)
	}
	return nil
}

func (m *Migrator) MigrateUsers(ctx context.Context) error {
	stats := &TableStats{}
	m.stats["users"] = stats

	cur, err := m.mongoDB.Collection("users").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query users: %w", err)
	}
	defer cur.Close(ctx)

	// last occurrence wins when the legacy data has duplicates
	byID := make(map[string]*models.User)
	for cur.Next(ctx) {
		var mu MongoUser
		if err := cur.Decode(&mu); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		if mu.UserID == "" {
			stats.Skipped++
			continue
		}
		if _, exists := byID[mu.UserID]; exists {
			slog.Warn("Duplicate user in legacy data, keeping latest",
				slog.String("discord_id", mu.UserID))
		}
		byID[mu.UserID] = convertUser(mu)
	}
	if err := cur.Err(); err != nil {
		return err
	}

	users := make([]*models.User, 0, len(byID))
	for _, user := range byID {
		users = append(users, user)
	}
	for i := 0; i < len(users); i += m.batchSize {
		end := min(i+m.batchSize, len(users))
		if err := m.insertUsers(ctx, users[i:end]); err != nil {
			return err
		}
		stats.Imported += end - i
	}
	return nil
}

func (m *Migrator) MigrateUserCards(ctx context.Context) error {
	stats := &TableStats{}
	m.stats["user_cards"] = stats

	validIDs, err := m.cardIDs(ctx)
	if err != nil {
		return err
	}

	cur, err := m.mongoDB.Collection("usercards").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query usercards: %w", err)
	}
	defer cur.Close(ctx)

	var batch []*models.UserCard
	for cur.Next(ctx) {
		var mc MongoUserCard
		if err := cur.Decode(&mc); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		if mc.UserID == "" || !validIDs[mc.CardID] {
			stats.Skipped++
			continue
		}

		caughtAt := time.Now()
		if mc.Obtained != nil {
			caughtAt = *mc.Obtained
		}
		batch = append(batch, &models.UserCard{
			UserID:   mc.UserID,
			CardID:   mc.CardID,
			Favorite: mc.Favorite,
			CaughtAt: caughtAt,
		})

		if len(batch) >= m.batchSize {
			if err := m.insertUserCards(ctx, batch); err != nil {
				return err
			}
			stats.Imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.insertUserCards(ctx, batch); err != nil {
			return err
		}
		stats.Imported += len(batch)
	}
	return nil
}

func (m *Migrator) cardIDs(ctx context.Context) (map[int64]bool, error) {
	var ids []int64
	err := m.db.NewSelect().
		Model((*models.Card)(nil)).
		Column("id").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load card ids: %w", err)
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (m *Migrator) insertCards(ctx context.Context, cards []*models.Card) error {
	_, err := m.db.NewInsert().
		Model(&cards).
		On("CONFLICT (name) DO UPDATE").
		Set("rarity = EXCLUDED.rarity").
		Set("category = EXCLUDED.category").
		Set("media_url = EXCLUDED.media_url").
		Set("media_type = EXCLUDED.media_type").
		Set("drop_rate = EXCLUDED.drop_rate").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert cards batch: %w", err)
	}
	return nil
}

func (m *Migrator) insertUsers(ctx context.Context, users []*models.User) error {
	_, err := m.db.NewInsert().
		Model(&users).
		On("CONFLICT (discord_id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("coins = EXCLUDED.coins").
		Set("total_spent = EXCLUDED.total_spent").
		Set("level = EXCLUDED.level").
		Set("xp = EXCLUDED.xp").
		Set("streak = EXCLUDED.streak").
		Set("last_daily = EXCLUDED.last_daily").
		Set("married_to = EXCLUDED.married_to").
		Set("total_caught = EXCLUDED.total_caught").
		Set("slots_wins = EXCLUDED.slots_wins").
		Set("jackpots = EXCLUDED.jackpots").
		Set("best_combo = EXCLUDED.best_combo").
		Set("days_played = EXCLUDED.days_played").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert users batch: %w", err)
	}
	return nil
}

func (m *Migrator) insertUserCards(ctx context.Context, userCards []*models.UserCard) error {
	_, err := m.db.NewInsert().
		Model(&userCards).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert user cards batch: %w", err)
	}
	return nil
}

func convertUser(mu MongoUser) *models.User {
	now := time.Now()
	created := now
	if mu.Joined != nil {
		created = *mu.Joined
	}
	level := mu.Level
	if level < 1 {
		level = 1
	}
	return &models.User{
		DiscordID:   mu.UserID,
		Username:    mu.Username,
		Coins:       mu.Coins,
		TotalSpent:  mu.TotalSpent,
		Level:       level,
		XP:          mu.XP,
		Streak:      mu.Streak,
		LastDaily:   mu.LastDaily,
		MarriedTo:   mu.MarriedTo,
		TotalCaught: mu.TotalCaught,
		SlotsWins:   mu.SlotsWins,
		Jackpots:    mu.Jackpots,
		BestCombo:   mu.BestCombo,
		DaysPlayed:  mu.DaysPlayed,
		CreatedAt:   created,
		UpdatedAt:   now,
	}
}

func convertCard(mc MongoCard) *models.Card {
	rarity := mc.Rarity
	if !models.ValidRarity(rarity) {
		rarity = normalizeRarity(rarity)
	}
	dropRate := mc.DropRate
	if dropRate <= 0 {
		dropRate = 1.0
	}
	return &models.Card{
		// legacy IDs are kept so ownership rows keep pointing at the right card
		ID:         mc.CardID,
		Name:       strings.TrimSpace(mc.Name),
		Category:   mc.Category,
		Rarity:     rarity,
		MediaURL:   mc.MediaURL,
		MediaType:  mc.MediaType,
		DropRate:   dropRate,
		UploadedBy: mc.AddedBy,
		CreatedAt:  time.Now(),
	}
}

// normalizeRarity maps legacy lowercase rarities onto the current set,
// falling back to Common for anything unknown.
func normalizeRarity(r string) string {
	for _, known := range models.Rarities {
		if strings.EqualFold(known, r) {
			return known
		}
	}
	return models.RarityCommon
}
