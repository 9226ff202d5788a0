package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
	"github.com/uptrace/bun"
)

// GoalRepository backs the missions / achievements / titles service.
type GoalRepository interface {
	Missions(ctx context.Context) ([]*models.Mission, error)
	MissionsByType(ctx context.Context, missionType string) ([]*models.Mission, error)
	UserMission(ctx context.Context, userID, missionID string) (*models.UserMission, error)
	SaveUserMission(ctx context.Context, um *models.UserMission) error
	UserMissions(ctx context.Context, userID string) (map[string]*models.UserMission, error)

	Achievements(ctx context.Context) ([]*models.Achievement, error)
	EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error)
	GrantAchievement(ctx context.Context, userID, achievementID string) error

	Titles(ctx context.Context) ([]*models.Title, error)
	EarnedTitles(ctx context.Context, userID string) (map[string]bool, error)
	GrantTitle(ctx context.Context, userID, titleID string) error
}

type goalRepository struct {
	db *bun.DB
}

func NewGoalRepository(db *bun.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Missions(ctx context.Context) ([]*models.Mission, error) {
	var missions []*models.Mission
	err := r.db.NewSelect().
		Model(&missions).
		Order("period ASC", "id ASC").
		Scan(ctx)
	return missions, err
}

func (r *goalRepository) MissionsByType(ctx context.Context, missionType string) ([]*models.Mission, error) {
	var missions []*models.Mission
	err := r.db.NewSelect().
		Model(&missions).
		Where("type = ?", missionType).
		Scan(ctx)
	return missions, err
}

func (r *goalRepository) UserMission(ctx context.Context, userID, missionID string) (*models.UserMission, error) {
	um := new(models.UserMission)
	err := r.db.NewSelect().
		Model(um).
		Where("user_id = ? AND mission_id = ?", userID, missionID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return um, nil
}

func (r *goalRepository) SaveUserMission(ctx context.Context, um *models.UserMission) error {
	if um.ID == 0 {
		_, err := r.db.NewInsert().Model(um).Exec(ctx)
		return err
	}
	_, err := r.db.NewUpdate().Model(um).WherePK().Exec(ctx)
	return err
}

func (r *goalRepository) UserMissions(ctx context.Context, userID string) (map[string]*models.UserMission, error) {
	var rows []*models.UserMission
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	byMission := make(map[string]*models.UserMission, len(rows))
	for _, um := range rows {
		byMission[um.MissionID] = um
	}
	return byMission, nil
}

func (r *goalRepository) Achievements(ctx context.Context) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := r.db.NewSelect().
		Model(&achievements).
		Order("id ASC").
		Scan(ctx)
	return achievements, err
}

func (r *goalRepository) EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error) {
	var ids []string
	err := r.db.NewSelect().
		Model((*models.UserAchievement)(nil)).
		Column("achievement_id").
		Where("user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(ids))
	for _, id := range ids {
		earned[id] = true
	}
	return earned, nil
}

func (r *goalRepository) GrantAchievement(ctx context.Context, userID, achievementID string) error {
	ua := &models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
	}
	_, err := r.db.NewInsert().Model(ua).Ignore().Exec(ctx)
	return err
}

func (r *goalRepository) Titles(ctx context.Context) ([]*models.Title, error) {
	var titles []*models.Title
	err := r.db.NewSelect().
		Model(&titles).
		Order("id ASC").
		Scan(ctx)
	return titles, err
}

func (r *goalRepository) EarnedTitles(ctx context.Context, userID string) (map[string]bool, error) {
	var ids []string
	err := r.db.NewSelect().
		Model((*models.UserTitle)(nil)).
		Column("title_id").
		Where("user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(ids))
	for _, id := range ids {
		earned[id] = true
	}
	return earned, nil
}

func (r *goalRepository) GrantTitle(ctx context.Context, userID, titleID string) error {
	ut := &models.UserTitle{
		UserID:  userID,
		TitleID: titleID,
	}
	_, err := r.db.NewInsert().Model(ut).Ignore().Exec(ctx)
	return err
}
