package reaction

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sukoonsphere/backend/internal/entity"
	reactionDto "github.com/sukoonsphere/backend/internal/modules/reaction/dto"
	reactionRepo "github.com/sukoonsphere/backend/internal/modules/reaction/repository"
	"github.com/sukoonsphere/backend/pkg/apperror"
	"github.com/sukoonsphere/backend/pkg/logger"
)

const countsCacheTTL = 7 * 24 * time.Hour

// ToggleResult reports the outcome of a set call. Previous/Current empty
// strings mean "no reaction" on that side of the toggle.
type ToggleResult struct {
	Response *reactionDto.ReactionsResponse
	Previous entity.ReactionType
	Current  entity.ReactionType
}

type ReactionService interface {
	// GetReactions is a pure read; anonymous callers get UserReaction nil.
	GetReactions(ctx context.Context, userID *uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*reactionDto.ReactionsResponse, error)
	SetReaction(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID, rtype entity.ReactionType) (*ToggleResult, error)
	ListReactingUsers(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID, typeFilter string) ([]reactionDto.ReactingUser, error)
}

type reactionService struct {
	repo        reactionRepo.ReactionRepository
	redisClient *redis.Client
}

func NewReactionService(repo reactionRepo.ReactionRepository, redisClient *redis.Client) ReactionService {
	return &reactionService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func countsKey(contentType entity.ContentType, contentID uuid.UUID) string {
	return fmt.Sprintf("reactions:counts:%s:%s", contentType, contentID.String())
}

func (s *reactionService) GetReactions(ctx context.Context, userID *uuid.UUID, contentType entity.ContentType, contentID uuid.UUID) (*reactionDto.ReactionsResponse, error) {
	if !contentType.Valid() {
		return nil, apperror.ErrInvalidContentType
	}

	counts, err := s.loadCounts(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	resp := buildResponse(counts, nil)

	if userID != nil {
		userReaction, err := s.repo.GetUserReaction(ctx, *userID, contentType, contentID)
		if err != nil {
			return nil, err
		}
		if userReaction != "" {
			str := string(userReaction)
			resp.UserReaction = &str
		}
	}

	return resp, nil
}

func (s *reactionService) SetReaction(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, contentID uuid.UUID, rtype entity.ReactionType) (*ToggleResult, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrUnauthenticated
	}
	if !contentType.Valid() {
		return nil, apperror.ErrInvalidContentType
	}
	if !rtype.Valid() {
		return nil, apperror.ErrInvalidReactionType
	}

	reaction := &entity.Reaction{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		Type:        rtype,
	}

	oldType, newType, err := s.repo.Toggle(ctx, reaction)
	if err != nil {
		return nil, err
	}

	s.adjustCountsCache(ctx, contentType, contentID, oldType, newType)

	// The store stays authoritative for the response counts.
	counts, err := s.repo.CountByType(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	var userReaction *string
	if newType != "" {
		str := string(newType)
		userReaction = &str
	}

	return &ToggleResult{
		Response: buildResponse(counts, userReaction),
		Previous: oldType,
		Current:  newType,
	}, nil
}

func (s *reactionService) ListReactingUsers(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID, typeFilter string) ([]reactionDto.ReactingUser, error) {
	if !contentType.Valid() {
		return nil, apperror.ErrInvalidContentType
	}

	var filter *entity.ReactionType
	if typeFilter != "" {
		rtype := entity.ReactionType(typeFilter)
		if !rtype.Valid() {
			return nil, apperror.ErrInvalidReactionType
		}
		filter = &rtype
	}

	reactions, err := s.repo.ListUsers(ctx, contentType, contentID, filter)
	if err != nil {
		return nil, err
	}

	users := make([]reactionDto.ReactingUser, 0, len(reactions))
	for _, r := range reactions {
		users = append(users, reactionDto.ReactingUser{
			UserID:    r.UserID,
			Username:  r.User.Username,
			AvatarURL: r.User.AvatarURL,
			Type:      string(r.Type),
		})
	}
	return users, nil
}

// adjustCountsCache mirrors the toggle into the Redis hash. Cache failures
// are logged only; the store already holds the truth.
func (s *reactionService) adjustCountsCache(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID, oldType, newType entity.ReactionType) {
	if s.redisClient == nil || oldType == newType {
		return
	}

	key := countsKey(contentType, contentID)

	// Only adjust a hash that is still populated. HIncrBy on an expired key
	// would recreate it as a partial hash with no TTL, and reads would serve
	// it as complete; leaving the key absent lets the next read rebuild from
	// the store.
	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", key).Msg("reaction counts cache check failed")
		return
	}
	if exists == 0 {
		return
	}

	pipe := s.redisClient.Pipeline()
	if oldType != "" {
		pipe.HIncrBy(ctx, key, string(oldType), -1)
	}
	if newType != "" {
		pipe.HIncrBy(ctx, key, string(newType), 1)
	}
	pipe.Expire(ctx, key, countsCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Get().Warn().Err(err).Str("key", key).Msg("reaction counts cache update failed")
	}
}

// loadCounts reads counts from Redis, rebuilding the hash from the store on
// a miss.
func (s *reactionService) loadCounts(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (map[entity.ReactionType]int64, error) {
	key := countsKey(contentType, contentID)

	if s.redisClient != nil {
		if val, err := s.redisClient.HGetAll(ctx, key).Result(); err == nil && len(val) > 0 {
			counts := make(map[entity.ReactionType]int64, len(val))
			for k, v := range val {
				if count, _ := strconv.ParseInt(v, 10, 64); count > 0 {
					counts[entity.ReactionType(k)] = count
				}
			}
			return counts, nil
		}
	}

	counts, err := s.repo.CountByType(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		pipe := s.redisClient.Pipeline()
		pipe.Del(ctx, key)
		for rtype, count := range counts {
			pipe.HSet(ctx, key, string(rtype), count)
		}
		pipe.Expire(ctx, key, countsCacheTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Get().Warn().Err(err).Str("key", key).Msg("reaction counts cache rebuild failed")
		}
	}

	return counts, nil
}

func buildResponse(counts map[entity.ReactionType]int64, userReaction *string) *reactionDto.ReactionsResponse {
	out := make(map[string]int64, len(counts))
	var total int64
	for rtype, count := range counts {
		out[string(rtype)] = count
		total += count
	}
	return &reactionDto.ReactionsResponse{
		Counts:       out,
		Total:        total,
		UserReaction: userReaction,
	}
}
