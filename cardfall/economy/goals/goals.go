// Package goals evaluates mission progress, achievements and titles.
package goals

import (
	"context"
	"errors"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

var ErrTitleNotEarned = errors.New("title not earned")

// Repository is the persistence surface the goals service needs.
type Repository interface {
	MissionsByType(ctx context.Context, missionType string) ([]*models.Mission, error)
	Missions(ctx context.Context) ([]*models.Mission, error)
	UserMission(ctx context.Context, userID, missionID string) (*models.UserMission, error)
	SaveUserMission(ctx context.Context, um *models.UserMission) error
	UserMissions(ctx context.Context, userID string) (map[string]*models.UserMission, error)

	Achievements(ctx context.Context) ([]*models.Achievement, error)
	EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error)
	GrantAchievement(ctx context.Context, userID, achievementID string) error

	Titles(ctx context.Context) ([]*models.Title, error)
	EarnedTitles(ctx context.Context, userID string) (map[string]bool, error)
	GrantTitle(ctx context.Context, userID, titleID string) error

	User(ctx context.Context, userID string) (*models.User, error)
	SetActiveTitle(ctx context.Context, userID, titleID string) error
	FriendCount(ctx context.Context, userID string) (int, error)
	DistinctRarities(ctx context.Context, userID string) (int, error)
	HasRarity(ctx context.Context, userID, rarity string) (bool, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RewardNotice reports a mission completed by the current action.
type RewardNotice struct {
	Mission *models.Mission
}

// nextReset returns when the current mission window closes: the coming
// midnight for dailies, the coming Monday midnight for weeklies.
func nextReset(period string, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if period == models.PeriodWeekly {
		daysUntilMonday := (8 - int(now.Weekday())) % 7
		if daysUntilMonday == 0 {
			daysUntilMonday = 7
		}
		return midnight.AddDate(0, 0, daysUntilMonday)
	}
	return midnight.AddDate(0, 0, 1)
}

// Advance applies a progress delta to every mission listening for the
// given event type. A mission window that has lapsed is reset first.
// Completion fires exactly once per window; further deltas are ignored.
func (s *Service) Advance(ctx context.Context, userID, missionType string, delta int64) ([]RewardNotice, error) {
	if delta <= 0 {
		return nil, nil
	}

	missions, err := s.repo.MissionsByType(ctx, missionType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var notices []RewardNotice

	for _, mission := range missions {
		um, err := s.repo.UserMission(ctx, userID, mission.ID)
		if err != nil {
			return nil, err
		}
		if um == nil {
			um = &models.UserMission{
				UserID:    userID,
				MissionID: mission.ID,
				ResetAt:   nextReset(mission.Period, now),
			}
		} else if !um.ResetAt.After(now) {
			um.Progress = 0
			um.Completed = false
			um.ResetAt = nextReset(mission.Period, now)
		}

		if um.Completed {
			continue
		}

		um.Progress += delta
		if um.Progress >= mission.Requirement {
			um.Progress = mission.Requirement
			um.Completed = true
			notices = append(notices, RewardNotice{Mission: mission})
		}

		if err := s.repo.SaveUserMission(ctx, um); err != nil {
			return nil, err
		}
	}

	return notices, nil
}

// MissionStatus pairs a mission definition with the user's live window.
type MissionStatus struct {
	Mission   *models.Mission
	Progress  int64
	Completed bool
}

// Board returns the status of every mission for display. Lapsed windows
// read as zero progress without being written back.
func (s *Service) Board(ctx context.Context, userID string) ([]MissionStatus, error) {
	missions, err := s.repo.Missions(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.UserMissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	board := make([]MissionStatus, 0, len(missions))
	for _, mission := range missions {
		status := MissionStatus{Mission: mission}
		if um, ok := progress[mission.ID]; ok && um.ResetAt.After(now) {
			status.Progress = um.Progress
			status.Completed = um.Completed
		}
		board = append(board, status)
	}
	return board, nil
}

// SetActiveTitle equips an earned title on the profile.
func (s *Service) SetActiveTitle(ctx context.Context, userID, titleID string) error {
	earned, err := s.repo.EarnedTitles(ctx, userID)
	if err != nil {
		return err
	}
	if !earned[titleID] {
		return ErrTitleNotEarned
	}
	return s.repo.SetActiveTitle(ctx, userID, titleID)
}
