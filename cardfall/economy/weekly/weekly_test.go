package weekly

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

type fakeBoard struct {
	rows         []*models.WeeklyScore
	clearedUpTo  string
	oldestErr    error
	clearedCalls int
}

func (f *fakeBoard) OldestWeekStart(_ context.Context) (string, error) {
	if f.oldestErr != nil {
		return "", f.oldestErr
	}
	oldest := ""
	for _, row := range f.rows {
		if oldest == "" || row.WeekStart < oldest {
			oldest = row.WeekStart
		}
	}
	return oldest, nil
}

func (f *fakeBoard) GetTop(_ context.Context, weekStart string, limit int) ([]*models.WeeklyScore, error) {
	var top []*models.WeeklyScore
	for _, row := range f.rows {
		if row.WeekStart == weekStart {
			top = append(top, row)
		}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].WeeklyCoins > top[j].WeeklyCoins })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (f *fakeBoard) ClearBefore(_ context.Context, weekStart string) error {
	f.clearedCalls++
	f.clearedUpTo = weekStart
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.WeekStart >= weekStart {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

type fakeLedger struct {
	credits []credit
	err     error
}

type credit struct {
	userID string
	amount int64
	txType string
}

func (f *fakeLedger) Credit(_ context.Context, userID string, amount int64, txType, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.credits = append(f.credits, credit{userID: userID, amount: amount, txType: txType})
	return nil
}

// Tuesday of the week starting Monday 2026-08-24.
var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func newTestService(board *fakeBoard, ledger *fakeLedger) *Service {
	svc := NewService(board, ledger, 2000)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestService_Rollover_EmptyBoard(t *testing.T) {
	board := &fakeBoard{}
	ledger := &fakeLedger{}

	if err := newTestService(board, ledger).Rollover(context.Background()); err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(ledger.credits) != 0 {
		t.Errorf("credits = %d, want 0", len(ledger.credits))
	}
	if board.clearedCalls != 0 {
		t.Errorf("board cleared %d times, want 0", board.clearedCalls)
	}
}

func TestService_Rollover_CurrentWeekUntouched(t *testing.T) {
	board := &fakeBoard{rows: []*models.WeeklyScore{
		{UserID: "1", Username: "ann", WeeklyCoins: 500, WeekStart: "2026-08-24"},
	}}
	ledger := &fakeLedger{}

	if err := newTestService(board, ledger).Rollover(context.Background()); err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(ledger.credits) != 0 {
		t.Errorf("credits = %d, want 0", len(ledger.credits))
	}
	if len(board.rows) != 1 {
		t.Errorf("rows = %d, want 1", len(board.rows))
	}
}

func TestService_Rollover_PaysStaleWeekWinner(t *testing.T) {
	board := &fakeBoard{rows: []*models.WeeklyScore{
		{UserID: "1", Username: "ann", WeeklyCoins: 500, WeekStart: "2026-08-17"},
		{UserID: "2", Username: "bob", WeeklyCoins: 900, WeekStart: "2026-08-17"},
		{UserID: "3", Username: "cid", WeeklyCoins: 9999, WeekStart: "2026-08-24"},
	}}
	ledger := &fakeLedger{}

	if err := newTestService(board, ledger).Rollover(context.Background()); err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}

	if len(ledger.credits) != 1 {
		t.Fatalf("credits = %d, want 1", len(ledger.credits))
	}
	got := ledger.credits[0]
	if got.userID != "2" || got.amount != 2000 || got.txType != models.TxWeeklyWin {
		t.Errorf("credit = %+v, want user 2 paid 2000 as %s", got, models.TxWeeklyWin)
	}

	if board.clearedUpTo != "2026-08-24" {
		t.Errorf("cleared up to %q, want 2026-08-24", board.clearedUpTo)
	}
	if len(board.rows) != 1 || board.rows[0].UserID != "3" {
		t.Errorf("rows after rollover = %+v, want only user 3's current-week row", board.rows)
	}
}

func TestService_Rollover_CreditFailureKeepsBoard(t *testing.T) {
	board := &fakeBoard{rows: []*models.WeeklyScore{
		{UserID: "1", Username: "ann", WeeklyCoins: 500, WeekStart: "2026-08-17"},
	}}
	ledger := &fakeLedger{err: errors.New("db locked")}

	if err := newTestService(board, ledger).Rollover(context.Background()); err == nil {
		t.Fatal("Rollover() error = nil, want error")
	}
	if board.clearedCalls != 0 {
		t.Errorf("board cleared %d times, want 0", board.clearedCalls)
	}
}
