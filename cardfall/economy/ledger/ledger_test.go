package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

type fakeStore struct {
	users  map[string]*models.User
	txs    []*models.Transaction
	weekly map[string]int64
}

func newFakeStore(users ...*models.User) *fakeStore {
	s := &fakeStore{
		users:  make(map[string]*models.User),
		weekly: make(map[string]int64),
	}
	for _, u := range users {
		s.users[u.DiscordID] = u
	}
	return s
}

func (s *fakeStore) GetByDiscordID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return u, nil
}

func (s *fakeStore) AddCoins(_ context.Context, id string, delta int64) error {
	s.users[id].Coins += delta
	return nil
}

func (s *fakeStore) AddTotalSpent(_ context.Context, id string, delta int64) error {
	s.users[id].TotalSpent += delta
	return nil
}

func (s *fakeStore) Create(_ context.Context, tx *models.Transaction) error {
	s.txs = append(s.txs, tx)
	return nil
}

func (s *fakeStore) AddScore(_ context.Context, userID, _ string, delta int64) error {
	s.weekly[userID] += delta
	return nil
}

func TestLedger_Debit(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		amount    int64
		spending  bool
		wantErr   error
		wantCoins int64
		wantSpent int64
		wantTxs   int
	}{
		{
			name:      "success",
			balance:   1000,
			amount:    300,
			wantCoins: 700,
			wantTxs:   1,
		},
		{
			name:      "spending bumps total_spent",
			balance:   1000,
			amount:    500,
			spending:  true,
			wantCoins: 500,
			wantSpent: 500,
			wantTxs:   1,
		},
		{
			name:      "insufficient funds",
			balance:   100,
			amount:    300,
			wantErr:   ErrInsufficientFunds,
			wantCoins: 100,
		},
		{
			name:      "zero amount",
			balance:   100,
			amount:    0,
			wantErr:   ErrInvalidAmount,
			wantCoins: 100,
		},
		{
			name:      "negative amount",
			balance:   100,
			amount:    -50,
			wantErr:   ErrInvalidAmount,
			wantCoins: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(&models.User{DiscordID: "1", Username: "a", Coins: tt.balance})
			l := New(store, store, store)

			err := l.Debit(context.Background(), "1", tt.amount, models.TxShop, "", tt.spending)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Debit() error = %v, want %v", err, tt.wantErr)
			}
			if got := store.users["1"].Coins; got != tt.wantCoins {
				t.Errorf("coins = %d, want %d", got, tt.wantCoins)
			}
			if got := store.users["1"].TotalSpent; got != tt.wantSpent {
				t.Errorf("total_spent = %d, want %d", got, tt.wantSpent)
			}
			if len(store.txs) != tt.wantTxs {
				t.Errorf("transactions = %d, want %d", len(store.txs), tt.wantTxs)
			}
		})
	}
}

func TestLedger_Credit(t *testing.T) {
	store := newFakeStore(&models.User{DiscordID: "1", Username: "a", Coins: 100})
	l := New(store, store, store)

	if err := l.Credit(context.Background(), "1", 250, models.TxDaily, "daily bonus"); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}
	if got := store.users["1"].Coins; got != 350 {
		t.Errorf("coins = %d, want 350", got)
	}
	if got := store.weekly["1"]; got != 250 {
		t.Errorf("weekly score = %d, want 250", got)
	}
	if len(store.txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(store.txs))
	}
	if tx := store.txs[0]; tx.FromUser != "" || tx.ToUser != "1" || tx.Amount != 250 {
		t.Errorf("transaction = %+v, want system credit of 250 to user 1", tx)
	}

	if err := l.Credit(context.Background(), "1", 0, models.TxDaily, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Credit(0) error = %v, want ErrInvalidAmount", err)
	}
}

func TestLedger_Transfer(t *testing.T) {
	store := newFakeStore(
		&models.User{DiscordID: "1", Username: "a", Coins: 1000},
		&models.User{DiscordID: "2", Username: "b", Coins: 50},
	)
	l := New(store, store, store)

	if err := l.Transfer(context.Background(), "1", "2", 400, "gift"); err != nil {
		t.Fatalf("Transfer() error = %v", err)
	}
	if got := store.users["1"].Coins; got != 600 {
		t.Errorf("sender coins = %d, want 600", got)
	}
	if got := store.users["2"].Coins; got != 450 {
		t.Errorf("recipient coins = %d, want 450", got)
	}
	if got := store.weekly["2"]; got != 400 {
		t.Errorf("recipient weekly score = %d, want 400", got)
	}
	if len(store.txs) != 1 {
		t.Fatalf("transactions = %d, want exactly 1 row per transfer", len(store.txs))
	}
	if tx := store.txs[0]; tx.FromUser != "1" || tx.ToUser != "2" || tx.Amount != 400 {
		t.Errorf("transaction = %+v, want 1 -> 2 amount 400", tx)
	}

	if err := l.Transfer(context.Background(), "1", "2", 10000, ""); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Transfer() error = %v, want ErrInsufficientFunds", err)
	}
	if got := store.users["2"].Coins; got != 450 {
		t.Errorf("failed transfer mutated recipient: coins = %d, want 450", got)
	}
}

func TestLedger_Adjust(t *testing.T) {
	store := newFakeStore(&models.User{DiscordID: "1", Username: "a", Coins: 100})
	l := New(store, store, store)

	if err := l.Adjust(context.Background(), "1", -60, "correction"); err != nil {
		t.Fatalf("Adjust() error = %v", err)
	}
	if got := store.users["1"].Coins; got != 40 {
		t.Errorf("coins = %d, want 40", got)
	}
	if err := l.Adjust(context.Background(), "1", 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Adjust(0) error = %v, want ErrInvalidAmount", err)
	}
}
