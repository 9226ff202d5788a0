package catching

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"testing"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

type fakeEnv struct {
	cards      []*models.Card
	owned      map[string][]int64
	caught     map[string]int64
	boost      bool
	multiplier float64
}

func newFakeEnv(cards ...*models.Card) *fakeEnv {
	return &fakeEnv{
		cards:      cards,
		owned:      make(map[string][]int64),
		caught:     make(map[string]int64),
		multiplier: 1.0,
	}
}

func (f *fakeEnv) GetByName(_ context.Context, name string) (*models.Card, error) {
	for _, c := range f.cards {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEnv) GetByRarity(_ context.Context, rarity string) ([]*models.Card, error) {
	var out []*models.Card
	for _, c := range f.cards {
		if c.Rarity == rarity {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeEnv) GetAll(_ context.Context) ([]*models.Card, error) {
	return f.cards, nil
}

func (f *fakeEnv) Add(_ context.Context, userID string, cardID int64) error {
	f.owned[userID] = append(f.owned[userID], cardID)
	return nil
}

func (f *fakeEnv) IncrementTotalCaught(_ context.Context, userID string) error {
	f.caught[userID]++
	return nil
}

func (f *fakeEnv) HasEffect(_ context.Context, _, _ string) (bool, error) {
	return f.boost, nil
}

func (f *fakeEnv) GetDropMultiplier(_ context.Context) (float64, error) {
	return f.multiplier, nil
}

func newTestService(f *fakeEnv, seed int64) *Service {
	return NewService(f, f, f, f, f, rand.New(rand.NewSource(seed)))
}

func TestService_Catch_Named(t *testing.T) {
	common := &models.Card{ID: 1, Name: "Pebble", Rarity: models.RarityCommon, DropRate: 1.0}
	f := newFakeEnv(common)
	s := newTestService(f, 1)

	// 85% base chance; with enough attempts both outcomes appear and
	// state only changes on success.
	successes := 0
	for i := 0; i < 200; i++ {
		res, err := s.Catch(context.Background(), "42", "Pebble")
		if err != nil {
			t.Fatalf("Catch() error = %v", err)
		}
		if res.Card.ID != 1 {
			t.Fatalf("caught wrong card %d", res.Card.ID)
		}
		if res.Chance != 0.85 {
			t.Fatalf("chance = %v, want 0.85", res.Chance)
		}
		if res.Caught {
			successes++
			if res.XP != 10 {
				t.Fatalf("XP = %d, want 10 for a Common", res.XP)
			}
		} else if res.XP != 0 {
			t.Fatalf("missed catch granted XP %d", res.XP)
		}
	}

	if successes == 0 || successes == 200 {
		t.Fatalf("successes = %d of 200, expected a mix", successes)
	}
	if int(f.caught["42"]) != successes {
		t.Errorf("total_caught = %d, want %d", f.caught["42"], successes)
	}
	if len(f.owned["42"]) != successes {
		t.Errorf("owned cards = %d, want %d", len(f.owned["42"]), successes)
	}
}

func TestService_Catch_UnknownName(t *testing.T) {
	f := newFakeEnv(&models.Card{ID: 1, Name: "Pebble", Rarity: models.RarityCommon, DropRate: 1.0})
	s := newTestService(f, 1)

	_, err := s.Catch(context.Background(), "42", "Ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Catch() error = %v, want ErrNotFound", err)
	}
}

func TestService_Catch_BoostAndMultiplier(t *testing.T) {
	card := &models.Card{ID: 2, Name: "Comet", Rarity: models.RarityRare, DropRate: 1.0}
	f := newFakeEnv(card)
	f.boost = true
	f.multiplier = 1.5
	s := newTestService(f, 5)

	res, err := s.Catch(context.Background(), "42", "Comet")
	if err != nil {
		t.Fatalf("Catch() error = %v", err)
	}
	// 0.40 * 1.5 + 0.20
	want := 0.80
	if diff := res.Chance - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("chance = %v, want %v", res.Chance, want)
	}
}

func TestService_Catch_RandomSpawn(t *testing.T) {
	f := newFakeEnv(
		&models.Card{ID: 1, Name: "Pebble", Rarity: models.RarityCommon, DropRate: 1.0},
		&models.Card{ID: 2, Name: "Comet", Rarity: models.RarityRare, DropRate: 1.0},
		&models.Card{ID: 3, Name: "Phoenix", Rarity: models.RarityLegendary, DropRate: 1.0},
	)
	s := newTestService(f, 99)

	for i := 0; i < 100; i++ {
		res, err := s.Catch(context.Background(), "42", "")
		if err != nil {
			t.Fatalf("Catch() error = %v", err)
		}
		if res.Card == nil {
			t.Fatal("no card spawned")
		}
	}
}

func TestService_Catch_EmptyCatalog(t *testing.T) {
	f := newFakeEnv()
	s := newTestService(f, 1)

	_, err := s.Catch(context.Background(), "42", "")
	if !errors.Is(err, ErrNoCards) {
		t.Errorf("Catch() error = %v, want ErrNoCards", err)
	}
}
