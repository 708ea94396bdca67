package badge

import (
	"context"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	"github.com/sukoonsphere/backend/pkg/apperror"
)

type PendingBadge struct {
	Task            string `json:"task"`
	NextMilestone   int    `json:"next_milestone"`
	Badge           string `json:"badge"`
	CurrentProgress int    `json:"current_progress"`
	Remaining       int    `json:"remaining"`
}

type ProgressSnapshot struct {
	Completed []string       `json:"completed"`
	Pending   []PendingBadge `json:"pending"`
}

type BadgeService interface {
	// RecordAction increments the user's counter for the action by exactly 1
	// and returns any newly crossed badges. Re-evaluating an unchanged
	// counter never awards twice.
	RecordAction(ctx context.Context, userID uuid.UUID, action Action) ([]string, error)
	// GetProgressSnapshot is a pure read over current counters and badges.
	GetProgressSnapshot(ctx context.Context, userID uuid.UUID) (*ProgressSnapshot, error)
}

type badgeService struct {
	repo progressRepo.ProgressRepository
}

func NewBadgeService(repo progressRepo.ProgressRepository) BadgeService {
	return &badgeService{repo: repo}
}

func (s *badgeService) RecordAction(ctx context.Context, userID uuid.UUID, action Action) ([]string, error) {
	if !action.Valid() {
		return nil, apperror.ErrInvalidAction
	}

	count, err := s.repo.IncrementCounter(ctx, userID, string(action))
	if err != nil {
		return nil, err
	}

	var earned []string

	if count == 1 {
		added, err := s.repo.AwardBadge(ctx, userID, firstBadges[action])
		if err != nil {
			return nil, err
		}
		if added {
			earned = append(earned, firstBadges[action])
		}
	}

	for _, m := range milestones[action] {
		if count != m.Threshold {
			continue
		}
		added, err := s.repo.AwardBadge(ctx, userID, m.Badge)
		if err != nil {
			return nil, err
		}
		if added {
			earned = append(earned, m.Badge)
		}
	}

	return earned, nil
}

func (s *badgeService) GetProgressSnapshot(ctx context.Context, userID uuid.UUID) (*ProgressSnapshot, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.ListBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		completed = []string{}
	}

	held := make(map[string]struct{}, len(completed))
	for _, b := range completed {
		held[b] = struct{}{}
	}

	pending := make([]PendingBadge, 0)
	for _, action := range []Action{ActionPost, ActionAnswer, ActionQuestion, ActionComment, ActionLike} {
		count := counterFor(progress, action)

		// The first-action badge behaves like an implicit threshold of 1.
		track := append([]Milestone{{1, firstBadges[action]}}, milestones[action]...)
		for _, m := range track {
			if _, ok := held[m.Badge]; ok {
				continue
			}
			if count >= m.Threshold {
				continue
			}
			pending = append(pending, PendingBadge{
				Task:            string(action),
				NextMilestone:   m.Threshold,
				Badge:           m.Badge,
				CurrentProgress: count,
				Remaining:       m.Threshold - count,
			})
			break
		}
	}

	return &ProgressSnapshot{Completed: completed, Pending: pending}, nil
}

func counterFor(p *entity.UserProgress, action Action) int {
	switch action {
	case ActionPost:
		return p.PostCount
	case ActionAnswer:
		return p.AnswerCount
	case ActionQuestion:
		return p.QuestionCount
	case ActionComment:
		return p.CommentCount
	case ActionLike:
		return p.LikeCount
	}
	return 0
}
