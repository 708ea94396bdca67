package content

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sukoonsphere/backend/internal/entity"
	contentDto "github.com/sukoonsphere/backend/internal/modules/content/dto"
	contentRepo "github.com/sukoonsphere/backend/internal/modules/content/repository"
	engagement "github.com/sukoonsphere/backend/internal/modules/engagement/service"
	points "github.com/sukoonsphere/backend/internal/modules/points/service"
	search "github.com/sukoonsphere/backend/internal/modules/search/service"
	"github.com/sukoonsphere/backend/pkg/apperror"
	"github.com/sukoonsphere/backend/pkg/logger"
)

// Ledger action keys per content kind. Top-level media all score as posts;
// every comment and reply shape scores as a comment.
var createActions = map[entity.ContentType]string{
	entity.ContentPost:                 points.ActionPost,
	entity.ContentArticle:              points.ActionPost,
	entity.ContentVideo:                points.ActionPost,
	entity.ContentPersonalStory:        points.ActionPost,
	entity.ContentQuestion:             points.ActionQuestion,
	entity.ContentAnswer:               points.ActionAnswer,
	entity.ContentComment:              points.ActionComment,
	entity.ContentReply:                points.ActionComment,
	entity.ContentArticleComment:       points.ActionComment,
	entity.ContentVideoComment:         points.ActionComment,
	entity.ContentVideoReply:           points.ActionComment,
	entity.ContentPersonalStoryComment: points.ActionComment,
	entity.ContentPersonalStoryReply:   points.ActionComment,
	entity.ContentAnswerComment:        points.ActionComment,
}

var deleteActions = map[string]string{
	points.ActionPost:     points.ActionDeletePost,
	points.ActionQuestion: points.ActionDeleteQuestion,
	points.ActionAnswer:   points.ActionDeleteAnswer,
	points.ActionComment:  points.ActionDeleteComment,
}

type ContentService interface {
	CreateContent(ctx context.Context, userID uuid.UUID, req *contentDto.CreateContentRequest) (*contentDto.ContentResponse, error)
	// DeleteContent removes the item and reverses its score. Only the author
	// may delete.
	DeleteContent(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, id uuid.UUID) error
}

type contentService struct {
	repo       contentRepo.ContentRepository
	engagement engagement.EngagementService
	search     search.SearchService
	sanitizer  *bluemonday.Policy
}

func NewContentService(repo contentRepo.ContentRepository, engagementSvc engagement.EngagementService, searchSvc search.SearchService) ContentService {
	return &contentService{
		repo:       repo,
		engagement: engagementSvc,
		search:     searchSvc,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *contentService) CreateContent(ctx context.Context, userID uuid.UUID, req *contentDto.CreateContentRequest) (*contentDto.ContentResponse, error) {
	if userID == uuid.Nil {
		return nil, apperror.ErrUnauthenticated
	}

	contentType := entity.ContentType(req.ContentType)
	schema, ok := contentRepo.SchemaFor(contentType)
	if !ok {
		return nil, apperror.ErrInvalidContentType
	}

	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	body := strings.TrimSpace(s.sanitizer.Sanitize(req.Body))

	if body == "" {
		return nil, apperror.New(http.StatusBadRequest, "body is required", apperror.ErrBadRequest)
	}
	if schema.HasTitle && title == "" {
		return nil, apperror.New(http.StatusBadRequest, "title is required", apperror.ErrBadRequest)
	}
	if schema.HasURL && req.URL == "" {
		return nil, apperror.New(http.StatusBadRequest, "url is required", apperror.ErrBadRequest)
	}

	var parentID uuid.UUID
	if schema.Parent != "" {
		if req.ParentID == nil {
			return nil, apperror.New(http.StatusBadRequest, "parent_id is required", apperror.ErrBadRequest)
		}
		parentID = *req.ParentID

		exists, err := s.repo.Exists(ctx, schema.Parent, parentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.New(http.StatusNotFound, "parent content not found", apperror.ErrNotFound)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	record := &contentRepo.ContentRecord{
		ID:       id,
		AuthorID: userID,
		ParentID: parentID,
		Title:    title,
		Body:     body,
		URL:      req.URL,
	}
	if err := s.repo.Insert(ctx, contentType, record); err != nil {
		return nil, err
	}

	// The row is committed; scoring and indexing failures must not undo it.
	if err := s.engagement.RecordContentAction(ctx, userID, createActions[contentType], contentType, id); err != nil {
		logger.Get().Error().Err(err).
			Str("content_type", string(contentType)).
			Str("content_id", id.String()).
			Msg("content create scoring failed")
	}

	if err := s.search.IndexContent(contentType, id.String(), userID.String(), title, body); err != nil {
		logger.Get().Warn().Err(err).Str("content_id", id.String()).Msg("content indexing failed")
	}

	return &contentDto.ContentResponse{
		ID:          id,
		ContentType: string(contentType),
		AuthorID:    userID,
		Title:       title,
		Body:        body,
		URL:         req.URL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (s *contentService) DeleteContent(ctx context.Context, userID uuid.UUID, contentType entity.ContentType, id uuid.UUID) error {
	if userID == uuid.Nil {
		return apperror.ErrUnauthenticated
	}
	if !contentType.Valid() {
		return apperror.ErrInvalidContentType
	}

	ownerID, err := s.repo.OwnerOf(ctx, contentType, id)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return apperror.ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, contentType, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.ErrNotFound
	}

	deleteKey := deleteActions[createActions[contentType]]
	if err := s.engagement.RecordContentAction(ctx, userID, deleteKey, contentType, id); err != nil {
		logger.Get().Error().Err(err).
			Str("content_type", string(contentType)).
			Str("content_id", id.String()).
			Msg("content delete scoring failed")
	}

	if err := s.search.DeleteContent(contentType, id.String()); err != nil {
		logger.Get().Warn().Err(err).Str("content_id", id.String()).Msg("content deindexing failed")
	}

	return nil
}
