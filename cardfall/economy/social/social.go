// Package social handles marriage, coin gifts and the friend graph.
package social

import (
	"context"
	"errors"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

var (
	ErrAlreadyMarried = errors.New("user is already married")
	ErrNotMarried     = errors.New("user is not married")
	ErrSelfTarget     = errors.New("cannot target yourself")
)

// UserStore is the slice of user persistence the social service needs.
type UserStore interface {
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	SetMarriedTo(ctx context.Context, discordID, partnerID string) error
}

// FriendStore records mutual friendships.
type FriendStore interface {
	AddMutual(ctx context.Context, userID, friendID string) error
	Friends(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context, userID string) (int, error)
}

// Transferer moves coins between two users atomically.
type Transferer interface {
	Transfer(ctx context.Context, fromID, toID string, amount int64, note string) error
}

type Service struct {
	users    UserStore
	friends  FriendStore
	transfer Transferer
}

func NewService(users UserStore, friends FriendStore, transfer Transferer) *Service {
	return &Service{users: users, friends: friends, transfer: transfer}
}

// Marry links two users. Both must exist and be unmarried; the pair
// also becomes friends.
func (s *Service) Marry(ctx context.Context, userID, partnerID string) error {
	if userID == partnerID {
		return ErrSelfTarget
	}

	user, err := s.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return err
	}
	partner, err := s.users.GetByDiscordID(ctx, partnerID)
	if err != nil {
		return err
	}

	if user.MarriedTo != "" || partner.MarriedTo != "" {
		return ErrAlreadyMarried
	}

	if err := s.users.SetMarriedTo(ctx, userID, partnerID); err != nil {
		return err
	}
	if err := s.users.SetMarriedTo(ctx, partnerID, userID); err != nil {
		return err
	}
	return s.friends.AddMutual(ctx, userID, partnerID)
}

// Divorce dissolves a marriage from either side.
func (s *Service) Divorce(ctx context.Context, userID string) (partnerID string, err error) {
	user, err := s.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.MarriedTo == "" {
		return "", ErrNotMarried
	}

	partnerID = user.MarriedTo
	if err := s.users.SetMarriedTo(ctx, userID, ""); err != nil {
		return "", err
	}
	if err := s.users.SetMarriedTo(ctx, partnerID, ""); err != nil {
		return "", err
	}
	return partnerID, nil
}

// Give transfers coins to another user and befriends them.
func (s *Service) Give(ctx context.Context, fromID, toID string, amount int64) error {
	if fromID == toID {
		return ErrSelfTarget
	}
	if _, err := s.users.GetByDiscordID(ctx, toID); err != nil {
		return err
	}
	if err := s.transfer.Transfer(ctx, fromID, toID, amount, "gift"); err != nil {
		return err
	}
	return s.friends.AddMutual(ctx, fromID, toID)
}

// FriendList returns the IDs of everyone the user has befriended.
func (s *Service) FriendList(ctx context.Context, userID string) ([]string, error) {
	return s.friends.Friends(ctx, userID)
}
