package goals

import (
	"context"

	"github.com/sayuri-dev/cardfall/cardfall/database/models"
)

// CheckAchievements grants every achievement whose condition the user
// now satisfies and returns only the newly granted ones. Grants are
// insert-if-absent, so repeated checks are harmless.
func (s *Service) CheckAchievements(ctx context.Context, userID string) ([]*models.Achievement, error) {
	achievements, err := s.repo.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.EarnedAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	var granted []*models.Achievement
	for _, ach := range achievements {
		if earned[ach.ID] {
			continue
		}

		met, err := s.achievementMet(ctx, user, ach)
		if err != nil {
			return nil, err
		}
		if !met {
			continue
		}

		if err := s.repo.GrantAchievement(ctx, userID, ach.ID); err != nil {
			return nil, err
		}
		granted = append(granted, ach)
	}
	return granted, nil
}

func (s *Service) achievementMet(ctx context.Context, user *models.User, ach *models.Achievement) (bool, error) {
	switch ach.ReqType {
	case models.ReqCatchCount:
		return user.TotalCaught >= ach.ReqValue, nil
	case models.ReqCatchLegendary:
		return s.repo.HasRarity(ctx, user.DiscordID, models.RarityLegendary)
	case models.ReqJackpot:
		return int64(user.Jackpots) >= ach.ReqValue, nil
	case models.ReqCoins:
		return user.Coins >= ach.ReqValue, nil
	case models.ReqStreak:
		return int64(user.Streak) >= ach.ReqValue, nil
	case models.ReqLevel:
		return int64(user.Level) >= ach.ReqValue, nil
	case models.ReqMarried:
		return user.MarriedTo != "", nil
	case models.ReqFriends:
		count, err := s.repo.FriendCount(ctx, user.DiscordID)
		return int64(count) >= ach.ReqValue, err
	case models.ReqCombo:
		return int64(user.BestCombo) >= ach.ReqValue, nil
	case models.ReqDaysPlayed:
		return int64(user.DaysPlayed) >= ach.ReqValue, nil
	case models.ReqAllRarities:
		count, err := s.repo.DistinctRarities(ctx, user.DiscordID)
		return count >= len(models.Rarities), err
	}
	return false, nil
}
