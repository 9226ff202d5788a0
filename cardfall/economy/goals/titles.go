package goals

import (
	"context"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

// CheckTitles grants every title whose condition the user now meets and
// returns only the newly granted ones.
func (s *Service) CheckTitles(ctx context.Context, userID string) ([]*models.Title, error) {
	titles, err := s.repo.Titles(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.EarnedTitles(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	var granted []*models.Title
	for _, title := range titles {
		if earned[title.ID] {
			continue
		}

		met, err := s.titleMet(ctx, user, title)
		if err != nil {
			return nil, err
		}
		if !met {
			continue
		}

		if err := s.repo.GrantTitle(ctx, userID, title.ID); err != nil {
			return nil, err
		}
		granted = append(granted, title)
	}
	return granted, nil
}

func (s *Service) titleMet(ctx context.Context, user *models.User, title *models.Title) (bool, error) {
	switch title.Condition {
	case models.CondDefault:
		return true, nil
	case models.CondCatch20:
		return user.TotalCaught >= 20, nil
	case models.CondSlotsWin10K:
		return user.SlotsWins >= 10000, nil
	case models.CondOwnLegendary:
		return s.repo.HasRarity(ctx, user.DiscordID, models.RarityLegendary)
	case models.CondCoins100K:
		return user.Coins >= 100000, nil
	case models.CondMarried:
		return user.MarriedTo != "", nil
	case models.CondCombo15:
		return user.BestCombo >= 15, nil
	case models.CondLevel25:
		return user.Level >= 25, nil
	case models.CondStreak30:
		return user.Streak >= 30, nil
	case models.CondAllAchievements:
		achievements, err := s.repo.Achievements(ctx)
		if err != nil {
			return false, err
		}
		earned, err := s.repo.EarnedAchievements(ctx, user.DiscordID)
		if err != nil {
			return false, err
		}
		return len(achievements) > 0 && len(earned) >= len(achievements), nil
	}
	return false, nil
}
