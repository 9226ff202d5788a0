// Package catching orchestrates card spawns and catch attempts.
package catching

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"sync"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/economy/games"
)

var (
	ErrNoCards  = errors.New("no cards available to catch")
	ErrNotFound = errors.New("card not found")
)

const itemCatchBoost = 0.20

type CardStore interface {
	GetByName(ctx context.Context, name string) (*models.Card, error)
	GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
}

type OwnershipStore interface {
	Add(ctx context.Context, userID string, cardID int64) error
}

type UserStore interface {
	IncrementTotalCaught(ctx context.Context, discordID string) error
}

type ItemStore interface {
	HasEffect(ctx context.Context, userID, effectPrefix string) (bool, error)
}

type SettingsStore interface {
	GetDropMultiplier(ctx context.Context) (float64, error)
}

type Service struct {
	cards    CardStore
	owned    OwnershipStore
	users    UserStore
	items    ItemStore
	settings SettingsStore

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(cards CardStore, owned OwnershipStore, users UserStore, items ItemStore, settings SettingsStore, rng *rand.Rand) *Service {
	return &Service{
		cards:    cards,
		owned:    owned,
		users:    users,
		items:    items,
		settings: settings,
		rng:      rng,
	}
}

type Result struct {
	Card   *models.Card
	Caught bool
	Chance float64
	XP     int64
}

// Catch spawns a card (a named one, or a random card of a rolled
// rarity) and attempts to catch it. On success the card is added to the
// collection and the catch counter bumped; a miss writes nothing.
func (s *Service) Catch(ctx context.Context, userID, cardName string) (Result, error) {
	card, err := s.pickCard(ctx, cardName)
	if err != nil {
		return Result{}, err
	}

	boost := 0.0
	if hasBoost, err := s.items.HasEffect(ctx, userID, "catch_boost"); err == nil && hasBoost {
		boost = itemCatchBoost
	}

	multiplier, err := s.settings.GetDropMultiplier(ctx)
	if err != nil {
		multiplier = 1.0
	}

	chance := games.CatchChance(card.Rarity, card.DropRate*multiplier, boost)

	s.mu.Lock()
	caught := games.AttemptCatch(s.rng, chance)
	s.mu.Unlock()

	result := Result{Card: card, Caught: caught, Chance: chance}
	if !caught {
		return result, nil
	}

	if err := s.owned.Add(ctx, userID, card.ID); err != nil {
		return Result{}, err
	}
	if err := s.users.IncrementTotalCaught(ctx, userID); err != nil {
		return Result{}, err
	}

	result.XP = games.CatchXP(card.Rarity)
	return result, nil
}

func (s *Service) pickCard(ctx context.Context, name string) (*models.Card, error) {
	if name != "" {
		card, err := s.cards.GetByName(ctx, name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return card, err
	}

	s.mu.Lock()
	rarity := games.RollRarity(s.rng)
	s.mu.Unlock()

	pool, err := s.cards.GetByRarity(ctx, rarity)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		// Thin catalogs may have empty rarity tiers
		pool, err = s.cards.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			return nil, ErrNoCards
		}
	}

	s.mu.Lock()
	card := pool[s.rng.Intn(len(pool))]
	s.mu.Unlock()
	return card, nil
}

// RandomCardOfRarity picks a random card of the given rarity, used by
// the wheel's card prize.
func (s *Service) RandomCardOfRarity(ctx context.Context, rarity string) (*models.Card, error) {
	pool, err := s.cards.GetByRarity(ctx, rarity)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoCards
	}

	s.mu.Lock()
	card := pool[s.rng.Intn(len(pool))]
	s.mu.Unlock()
	return card, nil
}

// Award grants a card directly (wheel prizes), updating the counter.
func (s *Service) Award(ctx context.Context, userID string, card *models.Card) error {
	if err := s.owned.Add(ctx, userID, card.ID); err != nil {
		return err
	}
	return s.users.IncrementTotalCaught(ctx, userID)
}
