package streak

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
)

// Milestones are display-only; crossing one has no side effects.
var Milestones = []int{3, 7, 14, 30, 60, 90, 180, 365}

type Status struct {
	StreakCount   int        `json:"streak_count"`
	LongestStreak int        `json:"longest_streak"`
	NextMilestone int        `json:"next_milestone"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
}

type StreakService interface {
	// RecordVisit advances the consecutive-day counter. At most one advance
	// per calendar day; repeat calls on the same day are no-ops.
	RecordVisit(ctx context.Context, userID uuid.UUID, now time.Time) (*Status, error)
	// Current returns the streak state without mutating it.
	Current(ctx context.Context, userID uuid.UUID) (*Status, error)
}

type streakService struct {
	repo progressRepo.ProgressRepository
}

func NewStreakService(repo progressRepo.ProgressRepository) StreakService {
	return &streakService{repo: repo}
}

func (s *streakService) RecordVisit(ctx context.Context, userID uuid.UUID, now time.Time) (*Status, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := calendarDate(now)

	if progress.LastVisitDate == nil {
		return s.apply(ctx, userID, 1, max(1, progress.LongestStreak), today)
	}

	diffDays := int(today.Sub(calendarDate(*progress.LastVisitDate)).Hours() / 24)

	switch {
	case diffDays <= 0:
		// Same day, or a backdated clock: leave state untouched.
		return statusOf(progress), nil
	case diffDays == 1:
		streak := progress.StreakCount + 1
		return s.apply(ctx, userID, streak, max(streak, progress.LongestStreak), today)
	default:
		// Gap of two or more days breaks the streak.
		return s.apply(ctx, userID, 1, progress.LongestStreak, today)
	}
}

func (s *streakService) Current(ctx context.Context, userID uuid.UUID) (*Status, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statusOf(progress), nil
}

func (s *streakService) apply(ctx context.Context, userID uuid.UUID, streak, longest int, today time.Time) (*Status, error) {
	if err := s.repo.SetStreak(ctx, userID, streak, longest, today); err != nil {
		return nil, err
	}
	return &Status{
		StreakCount:   streak,
		LongestStreak: longest,
		NextMilestone: NextMilestone(streak),
		LastVisitDate: &today,
	}, nil
}

func statusOf(p *entity.UserProgress) *Status {
	return &Status{
		StreakCount:   p.StreakCount,
		LongestStreak: p.LongestStreak,
		NextMilestone: NextMilestone(p.StreakCount),
		LastVisitDate: p.LastVisitDate,
	}
}

// NextMilestone returns the first milestone above the streak, or the last
// one when all are exceeded.
func NextMilestone(streak int) int {
	for _, m := range Milestones {
		if m > streak {
			return m
		}
	}
	return Milestones[len(Milestones)-1]
}

// calendarDate strips the time of day, normalizing to UTC midnight.
func calendarDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
