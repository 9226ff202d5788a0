package social

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

type fakeStore struct {
	users     map[string]*models.User
	friends   map[string][]string
	transfers []int64
	transErr  error
}

func newFakeStore(ids ...string) *fakeStore {
	f := &fakeStore{
		users:   make(map[string]*models.User),
		friends: make(map[string][]string),
	}
	for _, id := range ids {
		f.users[id] = &models.User{DiscordID: id}
	}
	return f
}

func (f *fakeStore) GetByDiscordID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeStore) SetMarriedTo(_ context.Context, id, partnerID string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.MarriedTo = partnerID
	return nil
}

func (f *fakeStore) AddMutual(_ context.Context, userID, friendID string) error {
	f.friends[userID] = append(f.friends[userID], friendID)
	f.friends[friendID] = append(f.friends[friendID], userID)
	return nil
}

func (f *fakeStore) Friends(_ context.Context, userID string) ([]string, error) {
	return f.friends[userID], nil
}

func (f *fakeStore) Count(_ context.Context, userID string) (int, error) {
	return len(f.friends[userID]), nil
}

func (f *fakeStore) Transfer(_ context.Context, _, _ string, amount int64, _ string) error {
	if f.transErr != nil {
		return f.transErr
	}
	f.transfers = append(f.transfers, amount)
	return nil
}

func newTestService(f *fakeStore) *Service {
	return NewService(f, f, f)
}

func TestService_Marry(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fakeStore)
		user    string
		partner string
		wantErr error
	}{
		{
			name:    "both single",
			user:    "1",
			partner: "2",
		},
		{
			name:    "self marriage rejected",
			user:    "1",
			partner: "1",
			wantErr: ErrSelfTarget,
		},
		{
			name: "proposer already married",
			setup: func(f *fakeStore) {
				f.users["1"].MarriedTo = "9"
			},
			user:    "1",
			partner: "2",
			wantErr: ErrAlreadyMarried,
		},
		{
			name: "partner already married",
			setup: func(f *fakeStore) {
				f.users["2"].MarriedTo = "9"
			},
			user:    "1",
			partner: "2",
			wantErr: ErrAlreadyMarried,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeStore("1", "2", "9")
			if tt.setup != nil {
				tt.setup(f)
			}

			err := newTestService(f).Marry(context.Background(), tt.user, tt.partner)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Marry() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if f.users["1"].MarriedTo != "2" || f.users["2"].MarriedTo != "1" {
				t.Error("marriage not symmetric")
			}
			if len(f.friends["1"]) != 1 || len(f.friends["2"]) != 1 {
				t.Error("partners not added as friends")
			}
		})
	}
}

func TestService_Divorce(t *testing.T) {
	f := newFakeStore("1", "2")
	f.users["1"].MarriedTo = "2"
	f.users["2"].MarriedTo = "1"

	partner, err := newTestService(f).Divorce(context.Background(), "1")
	if err != nil {
		t.Fatalf("Divorce() error = %v", err)
	}
	if partner != "2" {
		t.Errorf("partner = %q, want %q", partner, "2")
	}
	if f.users["1"].MarriedTo != "" || f.users["2"].MarriedTo != "" {
		t.Error("marriage not cleared on both sides")
	}

	if _, err := newTestService(f).Divorce(context.Background(), "1"); !errors.Is(err, ErrNotMarried) {
		t.Errorf("second Divorce() error = %v, want ErrNotMarried", err)
	}
}

func TestService_Give(t *testing.T) {
	t.Run("transfer and friendship", func(t *testing.T) {
		f := newFakeStore("1", "2")
		if err := newTestService(f).Give(context.Background(), "1", "2", 500); err != nil {
			t.Fatalf("Give() error = %v", err)
		}
		if len(f.transfers) != 1 || f.transfers[0] != 500 {
			t.Errorf("transfers = %v, want [500]", f.transfers)
		}
		if len(f.friends["2"]) != 1 {
			t.Error("recipient not befriended")
		}
	})

	t.Run("self gift rejected", func(t *testing.T) {
		f := newFakeStore("1")
		err := newTestService(f).Give(context.Background(), "1", "1", 500)
		if !errors.Is(err, ErrSelfTarget) {
			t.Errorf("Give() error = %v, want ErrSelfTarget", err)
		}
	})

	t.Run("failed transfer adds no friendship", func(t *testing.T) {
		f := newFakeStore("1", "2")
		f.transErr = errors.New("insufficient funds")
		if err := newTestService(f).Give(context.Background(), "1", "2", 500); err == nil {
			t.Fatal("Give() expected error")
		}
		if len(f.friends["1"]) != 0 {
			t.Error("friendship recorded despite failed transfer")
		}
	})
}

func TestService_FriendList(t *testing.T) {
	f := newFakeStore("1", "2", "3")
	s := newTestService(f)
	_ = f.AddMutual(context.Background(), "1", "2")
	_ = f.AddMutual(context.Background(), "1", "3")

	got, err := s.FriendList(context.Background(), "1")
	if err != nil {
		t.Fatalf("FriendList() error = %v", err)
	}
	sort.Strings(got)
	if len(got) != 2 || got[0] != "2" || got[1] != "3" {
		t.Errorf("FriendList() = %v, want [2 3]", got)
	}
}
