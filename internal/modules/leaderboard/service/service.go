package leaderboard

import (
	"context"

	"github.com/sukoonsphere/backend/internal/modules/leaderboard/dto"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
)

const defaultLimit = 25

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo progressRepo.ProgressRepository
}

func NewLeaderboardService(repo progressRepo.ProgressRepository) LeaderboardService {
	return &leaderboardService{repo: repo}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}

	stats, err := s.repo.TopByTotalPoints(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(stats))
	for i, stat := range stats {
		entries = append(entries, dto.LeaderboardEntry{
			Username:   stat.User.Username,
			AvatarURL:  stat.User.AvatarURL,
			Position:   i + 1,
			RankStatus: RankFor(stat.TotalPoints),
		})
	}

	return entries, nil
}
