package engagement

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	badge "github.com/sukoonsphere/backend/internal/modules/badge/service"
	points "github.com/sukoonsphere/backend/internal/modules/points/service"
	reactionDto "github.com/sukoonsphere/backend/internal/modules/reaction/dto"
	reaction "github.com/sukoonsphere/backend/internal/modules/reaction/service"
	"github.com/sukoonsphere/backend/pkg/logger"
)

// Notifier is the external delivery collaborator. Best effort: a failed
// notification never fails the mutation that triggered it.
type Notifier interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error
}

// OwnerResolver looks up who owns a content item.
type OwnerResolver interface {
	OwnerOf(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (uuid.UUID, error)
}

// Badge actions per ledger action key. Delete inverses count toward the same
// badge counter as their create action.
var badgeActions = map[string]badge.Action{
	points.ActionPost:           badge.ActionPost,
	points.ActionDeletePost:     badge.ActionPost,
	points.ActionQuestion:       badge.ActionQuestion,
	points.ActionDeleteQuestion: badge.ActionQuestion,
	points.ActionAnswer:         badge.ActionAnswer,
	points.ActionDeleteAnswer:   badge.ActionAnswer,
	points.ActionComment:        badge.ActionComment,
	points.ActionDeleteComment:  badge.ActionComment,
	points.ActionLike:           badge.ActionLike,
	points.ActionUnlike:         badge.ActionLike,
}

type EngagementService interface {
	// React toggles the caller's reaction. A net-new reaction (create or
	// type change) notifies the content owner and scores a "like" for the
	// reactor; toggle-off reverses nothing.
	React(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID, rtype entity.ReactionType) (*reactionDto.ReactionsResponse, error)
	// RecordContentAction scores a content create/delete action and advances
	// badge counters.
	RecordContentAction(ctx context.Context, userID uuid.UUID, actionKey string, contentType entity.ContentType, contentID uuid.UUID) error
}

type engagementService struct {
	reactions reaction.ReactionService
	points    points.PointsService
	badges    badge.BadgeService
	notifier  Notifier
	owners    OwnerResolver

	// countDeletes preserves the source behavior of delete actions still
	// advancing badge counters.
	countDeletes bool
}

func NewEngagementService(reactions reaction.ReactionService, pointsSvc points.PointsService, badges badge.BadgeService, notifier Notifier, owners OwnerResolver, countDeletes bool) EngagementService {
	return &engagementService{
		reactions:    reactions,
		points:       pointsSvc,
		badges:       badges,
		notifier:     notifier,
		owners:       owners,
		countDeletes: countDeletes,
	}
}

func (s *engagementService) React(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID, rtype entity.ReactionType) (*reactionDto.ReactionsResponse, error) {
	result, err := s.reactions.SetReaction(ctx, userID, contentType, contentID, rtype)
	if err != nil {
		return nil, err
	}

	// Post-commit hook: side effects only on a net-new reaction. Toggle-off
	// deliberately reverses neither points nor counters.
	if result.Current != "" {
		s.afterReaction(ctx, userID, contentType, contentID, result.Current)
	}

	return result.Response, nil
}

func (s *engagementService) afterReaction(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID, rtype entity.ReactionType) {
	log := logger.Get()

	ownerID, err := s.owners.OwnerOf(ctx, contentType, contentID)
	if err != nil {
		log.Warn().Err(err).
			Str("content_type", string(contentType)).
			Str("content_id", contentID.String()).
			Msg("owner lookup failed, skipping reaction notification")
	} else if ownerID != userID {
		notification := &entity.Notification{
			UserID:     ownerID,
			ActorID:    userID,
			EntityID:   contentID,
			EntityType: string(contentType),
			Type:       "reaction",
			Message:    fmt.Sprintf("Someone reacted with %s to your %s", rtype, contentType),
		}
		if err := s.notifier.CreateNotification(ctx, notification); err != nil {
			log.Warn().Err(err).Msg("reaction notification failed")
		}
	}

	if _, err := s.points.ApplyPoints(ctx, userID, points.ActionLike, contentType, contentID.String()); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("like points not applied")
	}

	earned, err := s.badges.RecordAction(ctx, userID, badge.ActionLike)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("like badge evaluation failed")
		return
	}
	s.notifyBadges(ctx, userID, earned)
}

func (s *engagementService) RecordContentAction(ctx context.Context, userID uuid.UUID, actionKey string, contentType entity.ContentType, contentID uuid.UUID) error {
	if _, err := s.points.ApplyPoints(ctx, userID, actionKey, contentType, contentID.String()); err != nil {
		return err
	}

	if strings.HasPrefix(actionKey, "delete") && !s.countDeletes {
		return nil
	}

	earned, err := s.badges.RecordAction(ctx, userID, badgeActions[actionKey])
	if err != nil {
		return err
	}
	s.notifyBadges(ctx, userID, earned)
	return nil
}

func (s *engagementService) notifyBadges(ctx context.Context, userID uuid.UUID, earned []string) {
	for _, b := range earned {
		notification := &entity.Notification{
			UserID:  userID,
			ActorID: userID,
			Type:    "badge",
			Message: fmt.Sprintf("You earned the %q badge", b),
		}
		if err := s.notifier.CreateNotification(ctx, notification); err != nil {
			logger.Get().Warn().Err(err).Str("badge", b).Msg("badge notification failed")
		}
	}
}
