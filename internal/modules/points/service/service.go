package points

import (
	"context"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	progressRepo "github.com/sukoonsphere/backend/internal/modules/progress/repository"
	"github.com/sukoonsphere/backend/pkg/apperror"
)

// Action keys accepted by the ledger. The delta values are policy and must
// stay exactly as-is for score compatibility.
const (
	ActionPost           = "post"
	ActionDeletePost     = "deletePost"
	ActionQuestion       = "question"
	ActionDeleteQuestion = "deleteQuestion"
	ActionAnswer         = "answer"
	ActionDeleteAnswer   = "deleteAnswer"
	ActionComment        = "comment"
	ActionDeleteComment  = "deleteComment"
	ActionLike           = "like"
	ActionUnlike         = "unlike"
)

var deltas = map[string]int{
	ActionPost:           10,
	ActionDeletePost:     -10,
	ActionQuestion:       5,
	ActionDeleteQuestion: -5,
	ActionAnswer:         15,
	ActionDeleteAnswer:   -15,
	ActionComment:        3,
	ActionDeleteComment:  -3,
	ActionLike:           2,
	ActionUnlike:         -2,
}

// Delta returns the point delta for an action key.
func Delta(actionKey string) (int, bool) {
	d, ok := deltas[actionKey]
	return d, ok
}

type Balance struct {
	CurrentPoints int `json:"current_points"`
	TotalPoints   int `json:"total_points"`
}

type PointsService interface {
	// ApplyPoints adjusts both balances by the action's delta and records a
	// point log entry. Unknown action keys are fatal to the caller.
	ApplyPoints(ctx context.Context, userID uuid.UUID, actionKey string, contentType entity.ContentType, contentID string) (*Balance, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*Balance, error)
}

type pointsService struct {
	repo progressRepo.ProgressRepository
}

func NewPointsService(repo progressRepo.ProgressRepository) PointsService {
	return &pointsService{repo: repo}
}

func (s *pointsService) ApplyPoints(ctx context.Context, userID uuid.UUID, actionKey string, contentType entity.ContentType, contentID string) (*Balance, error) {
	delta, ok := deltas[actionKey]
	if !ok {
		return nil, apperror.ErrInvalidAction
	}

	progress, err := s.repo.AddPoints(ctx, userID, delta)
	if err != nil {
		return nil, err
	}

	logEntry := &entity.PointLog{
		UserID:      userID,
		ActionKey:   actionKey,
		Points:      delta,
		ContentType: string(contentType),
		ContentID:   contentID,
	}
	if err := s.repo.CreatePointLog(ctx, logEntry); err != nil {
		return nil, err
	}

	return &Balance{
		CurrentPoints: progress.CurrentPoints,
		TotalPoints:   progress.TotalPoints,
	}, nil
}

func (s *pointsService) GetBalance(ctx context.Context, userID uuid.UUID) (*Balance, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Balance{
		CurrentPoints: progress.CurrentPoints,
		TotalPoints:   progress.TotalPoints,
	}, nil
}
