package goals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/economy/goals/mock"
	"go.uber.org/mock/gomock"
)

// fixed Wednesday so daily/weekly reset boundaries are predictable
var testNow = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return testNow }
	return s
}

func TestNextReset(t *testing.T) {
	tests := []struct {
		name   string
		period string
		now    time.Time
		want   time.Time
	}{
		{
			name:   "daily resets at next midnight",
			period: models.PeriodDaily,
			now:    testNow,
			want:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly resets next monday",
			period: models.PeriodWeekly,
			now:    testNow,
			want:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly on monday resets a full week later",
			period: models.PeriodWeekly,
			now:    time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC),
			want:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextReset(tt.period, tt.now); !got.Equal(tt.want) {
				t.Errorf("nextReset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_Advance(t *testing.T) {
	mission := &models.Mission{
		ID:          "dm1",
		Name:        "Daily Hunter",
		Type:        models.MissionTypeCatch,
		Requirement: 5,
		Reward:      100,
		Period:      models.PeriodDaily,
	}

	tests := []struct {
		name        string
		delta       int64
		existing    *models.UserMission
		wantNotices int
		wantSaved   *models.UserMission
	}{
		{
			name:        "first progress creates a window",
			delta:       1,
			existing:    nil,
			wantNotices: 0,
			wantSaved: &models.UserMission{
				UserID:    "42",
				MissionID: "dm1",
				Progress:  1,
				ResetAt:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "completion fires once and caps at requirement",
			delta: 3,
			existing: &models.UserMission{
				ID: 7, UserID: "42", MissionID: "dm1",
				Progress: 4,
				ResetAt:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			},
			wantNotices: 1,
			wantSaved: &models.UserMission{
				ID: 7, UserID: "42", MissionID: "dm1",
				Progress: 5, Completed: true,
				ResetAt: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "lapsed window resets before counting",
			delta: 2,
			existing: &models.UserMission{
				ID: 7, UserID: "42", MissionID: "dm1",
				Progress: 5, Completed: true,
				ResetAt: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			},
			wantNotices: 0,
			wantSaved: &models.UserMission{
				ID: 7, UserID: "42", MissionID: "dm1",
				Progress: 2,
				ResetAt:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			repo.EXPECT().MissionsByType(gomock.Any(), models.MissionTypeCatch).Return([]*models.Mission{mission}, nil)
			repo.EXPECT().UserMission(gomock.Any(), "42", "dm1").Return(tt.existing, nil)

			var saved *models.UserMission
			repo.EXPECT().SaveUserMission(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, um *models.UserMission) error {
					saved = um
					return nil
				})

			notices, err := newTestService(repo).Advance(context.Background(), "42", models.MissionTypeCatch, tt.delta)
			if err != nil {
				t.Fatalf("Advance() error = %v", err)
			}
			if len(notices) != tt.wantNotices {
				t.Errorf("notices = %d, want %d", len(notices), tt.wantNotices)
			}
			if saved == nil {
				t.Fatal("SaveUserMission not called")
			}
			if *saved != *tt.wantSaved {
				t.Errorf("saved = %+v, want %+v", saved, tt.wantSaved)
			}
		})
	}
}

func TestService_Advance_CompletedWindowIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	mission := &models.Mission{ID: "dm2", Type: models.MissionTypeSlots, Requirement: 3, Period: models.PeriodDaily}
	repo.EXPECT().MissionsByType(gomock.Any(), models.MissionTypeSlots).Return([]*models.Mission{mission}, nil)
	repo.EXPECT().UserMission(gomock.Any(), "42", "dm2").Return(&models.UserMission{
		ID: 3, UserID: "42", MissionID: "dm2",
		Progress: 3, Completed: true,
		ResetAt: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}, nil)
	// no SaveUserMission expected

	notices, err := newTestService(repo).Advance(context.Background(), "42", models.MissionTypeSlots, 1)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("notices = %d, want 0", len(notices))
	}
}

func TestService_Advance_NonPositiveDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	notices, err := newTestService(repo).Advance(context.Background(), "42", models.MissionTypeCatch, 0)
	if err != nil || notices != nil {
		t.Errorf("Advance(0) = %v, %v, want nil, nil", notices, err)
	}
}

func TestService_Board_LapsedWindowReadsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	missions := []*models.Mission{
		{ID: "dm1", Requirement: 5, Period: models.PeriodDaily},
		{ID: "wm1", Requirement: 20, Period: models.PeriodWeekly},
	}
	repo.EXPECT().Missions(gomock.Any()).Return(missions, nil)
	repo.EXPECT().UserMissions(gomock.Any(), "42").Return(map[string]*models.UserMission{
		"dm1": {MissionID: "dm1", Progress: 4, ResetAt: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)},
		"wm1": {MissionID: "wm1", Progress: 12, ResetAt: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
	}, nil)

	board, err := newTestService(repo).Board(context.Background(), "42")
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("board entries = %d, want 2", len(board))
	}
	if board[0].Progress != 0 {
		t.Errorf("lapsed daily progress = %d, want 0", board[0].Progress)
	}
	if board[1].Progress != 12 {
		t.Errorf("live weekly progress = %d, want 12", board[1].Progress)
	}
}

func TestService_CheckAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	achievements := []*models.Achievement{
		{ID: "ach1", ReqType: models.ReqCatchCount, ReqValue: 10},
		{ID: "ach2", ReqType: models.ReqCoins, ReqValue: 50000},
		{ID: "ach3", ReqType: models.ReqFriends, ReqValue: 3},
	}
	user := &models.User{DiscordID: "42", TotalCaught: 25, Coins: 1200}

	repo.EXPECT().Achievements(gomock.Any()).Return(achievements, nil)
	repo.EXPECT().EarnedAchievements(gomock.Any(), "42").Return(map[string]bool{"ach1": true}, nil)
	repo.EXPECT().User(gomock.Any(), "42").Return(user, nil)
	repo.EXPECT().FriendCount(gomock.Any(), "42").Return(4, nil)
	repo.EXPECT().GrantAchievement(gomock.Any(), "42", "ach3").Return(nil)

	granted, err := newTestService(repo).CheckAchievements(context.Background(), "42")
	if err != nil {
		t.Fatalf("CheckAchievements() error = %v", err)
	}
	// ach1 already earned, ach2 unmet, only ach3 is new
	if len(granted) != 1 || granted[0].ID != "ach3" {
		t.Errorf("granted = %v, want [ach3]", granted)
	}
}

func TestService_CheckTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	titles := []*models.Title{
		{ID: "t1", Condition: models.CondDefault},
		{ID: "t3", Condition: models.CondOwnLegendary},
		{ID: "t8", Condition: models.CondLevel25},
	}
	user := &models.User{DiscordID: "42", Level: 12}

	repo.EXPECT().Titles(gomock.Any()).Return(titles, nil)
	repo.EXPECT().EarnedTitles(gomock.Any(), "42").Return(map[string]bool{"t1": true}, nil)
	repo.EXPECT().User(gomock.Any(), "42").Return(user, nil)
	repo.EXPECT().HasRarity(gomock.Any(), "42", models.RarityLegendary).Return(true, nil)
	repo.EXPECT().GrantTitle(gomock.Any(), "42", "t3").Return(nil)

	granted, err := newTestService(repo).CheckTitles(context.Background(), "42")
	if err != nil {
		t.Fatalf("CheckTitles() error = %v", err)
	}
	if len(granted) != 1 || granted[0].ID != "t3" {
		t.Errorf("granted = %v, want [t3]", granted)
	}
}

func TestService_SetActiveTitle(t *testing.T) {
	tests := []struct {
		name    string
		titleID string
		earned  map[string]bool
		grant   bool
		wantErr error
	}{
		{
			name:    "earned title equips",
			titleID: "t2",
			earned:  map[string]bool{"t1": true, "t2": true},
			grant:   true,
		},
		{
			name:    "unearned title rejected",
			titleID: "t9",
			earned:  map[string]bool{"t1": true},
			wantErr: ErrTitleNotEarned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			repo.EXPECT().EarnedTitles(gomock.Any(), "42").Return(tt.earned, nil)
			if tt.grant {
				repo.EXPECT().SetActiveTitle(gomock.Any(), "42", tt.titleID).Return(nil)
			}

			err := newTestService(repo).SetActiveTitle(context.Background(), "42", tt.titleID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SetActiveTitle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
