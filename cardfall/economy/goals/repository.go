package goals

import (
	"context"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/sayuri-dev/cardfall/cardfall/database/repositories"
)

// repository composes the bun-backed stores into the Repository surface.
type repository struct {
	goals   repositories.GoalRepository
	users   repositories.UserRepository
	friends repositories.FriendRepository
	cards   repositories.UserCardRepository
}

func NewRepository(
	goals repositories.GoalRepository,
	users repositories.UserRepository,
	friends repositories.FriendRepository,
	cards repositories.UserCardRepository,
) Repository {
	return &repository{goals: goals, users: users, friends: friends, cards: cards}
}

func (r *repository) MissionsByType(ctx context.Context, missionType string) ([]*models.Mission, error) {
	return r.goals.MissionsByType(ctx, missionType)
}

func (r *repository) Missions(ctx context.Context) ([]*models.Mission, error) {
	return r.goals.Missions(ctx)
}

func (r *repository) UserMission(ctx context.Context, userID, missionID string) (*models.UserMission, error) {
	return r.goals.UserMission(ctx, userID, missionID)
}

func (r *repository) SaveUserMission(ctx context.Context, um *models.UserMission) error {
	return r.goals.SaveUserMission(ctx, um)
}

func (r *repository) UserMissions(ctx context.Context, userID string) (map[string]*models.UserMission, error) {
	return r.goals.UserMissions(ctx, userID)
}

func (r *repository) Achievements(ctx context.Context) ([]*models.Achievement, error) {
	return r.goals.Achievements(ctx)
}

func (r *repository) EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error) {
	return r.goals.EarnedAchievements(ctx, userID)
}

func (r *repository) GrantAchievement(ctx context.Context, userID, achievementID string) error {
	return r.goals.GrantAchievement(ctx, userID, achievementID)
}

func (r *repository) Titles(ctx context.Context) ([]*models.Title, error) {
	return r.goals.Titles(ctx)
}

func (r *repository) EarnedTitles(ctx context.Context, userID string) (map[string]bool, error) {
	return r.goals.EarnedTitles(ctx, userID)
}

func (r *repository) GrantTitle(ctx context.Context, userID, titleID string) error {
	return r.goals.GrantTitle(ctx, userID, titleID)
}

func (r *repository) User(ctx context.Context, userID string) (*models.User, error) {
	return r.users.GetByDiscordID(ctx, userID)
}

func (r *repository) SetActiveTitle(ctx context.Context, userID, titleID string) error {
	return r.users.SetActiveTitle(ctx, userID, titleID)
}

func (r *repository) FriendCount(ctx context.Context, userID string) (int, error) {
	return r.friends.Count(ctx, userID)
}

func (r *repository) DistinctRarities(ctx context.Context, userID string) (int, error) {
	return r.cards.DistinctRarities(ctx, userID)
}

func (r *repository) HasRarity(ctx context.Context, userID, rarity string) (bool, error) {
	return r.cards.HasRarity(ctx, userID, rarity)
}
