// Package ledger owns every coin movement in the game. All balance
// changes go through it so each movement leaves exactly one transaction
// row behind.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type UserStore interface {
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)
	AddCoins(ctx context.Context, discordID string, delta int64) error
	AddTotalSpent(ctx context.Context, discordID string, delta int64) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
}

type WeeklyStore interface {
	AddScore(ctx context.Context, userID, username string, delta int64) error
}

type Ledger struct {
	users  UserStore
	txs    TransactionStore
	weekly WeeklyStore
}

func New(users UserStore, txs TransactionStore, weekly WeeklyStore) *Ledger {
	return &Ledger{users: users, txs: txs, weekly: weekly}
}

// Credit adds coins to a user and bumps their weekly score.
func (l *Ledger) Credit(ctx context.Context, userID string, amount int64, txType, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	user, err := l.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return err
	}

	if err := l.users.AddCoins(ctx, userID, amount); err != nil {
		return err
	}
	if err := l.weekly.AddScore(ctx, userID, user.Username, amount); err != nil {
		slog.Error("Failed to update weekly score",
			slog.String("type", "db"),
			slog.String("user_id", userID),
			slog.Any("error", err))
	}

	return l.txs.Create(ctx, &models.Transaction{
		ToUser: userID,
		Amount: amount,
		Type:   txType,
		Note:   note,
	})
}

// Debit removes coins after verifying the balance covers the amount.
// spending marks purchases so total_spent tracks shop turnover only.
func (l *Ledger) Debit(ctx context.Context, userID string, amount int64, txType, note string, spending bool) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	user, err := l.users.GetByDiscordID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Coins < amount {
		return ErrInsufficientFunds
	}

	if err := l.users.AddCoins(ctx, userID, -amount); err != nil {
		return err
	}
	if spending {
		if err := l.users.AddTotalSpent(ctx, userID, amount); err != nil {
			return err
		}
	}

	return l.txs.Create(ctx, &models.Transaction{
		FromUser: userID,
		Amount:   -amount,
		Type:     txType,
		Note:     note,
	})
}

// Transfer moves coins between two users, writing a single transaction
// row naming both endpoints. The recipient's weekly score is credited.
func (l *Ledger) Transfer(ctx context.Context, from, to string, amount int64, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	sender, err := l.users.GetByDiscordID(ctx, from)
	if err != nil {
		return err
	}
	if sender.Coins < amount {
		return ErrInsufficientFunds
	}

	recipient, err := l.users.GetByDiscordID(ctx, to)
	if err != nil {
		return err
	}

	if err := l.users.AddCoins(ctx, from, -amount); err != nil {
		return err
	}
	if err := l.users.AddCoins(ctx, to, amount); err != nil {
		return err
	}
	if err := l.weekly.AddScore(ctx, to, recipient.Username, amount); err != nil {
		slog.Error("Failed to update weekly score",
			slog.String("type", "db"),
			slog.String("user_id", to),
			slog.Any("error", err))
	}

	return l.txs.Create(ctx, &models.Transaction{
		FromUser: from,
		ToUser:   to,
		Amount:   amount,
		Type:     models.TxGive,
		Note:     note,
	})
}

// Adjust applies an owner-level balance correction of either sign with
// no balance check. A zero amount is rejected.
func (l *Ledger) Adjust(ctx context.Context, userID string, amount int64, note string) error {
	if amount == 0 {
		return ErrInvalidAmount
	}

	if _, err := l.users.GetByDiscordID(ctx, userID); err != nil {
		return err
	}
	if err := l.users.AddCoins(ctx, userID, amount); err != nil {
		return err
	}

	return l.txs.Create(ctx, &models.Transaction{
		ToUser: userID,
		Amount: amount,
		Type:   models.TxAdmin,
		Note:   note,
	})
}
