package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sukoonsphere/backend/internal/entity"
	"github.com/sukoonsphere/backend/pkg/apperror"
	"gorm.io/gorm"
)

// Schema describes the shape of one content kind: which table backs it, what
// its parent kind is (empty for root kinds) and which extra columns it
// carries. All fourteen kinds share the author_id column, which is what makes
// generic owner resolution possible.
type Schema struct {
	Parent       entity.ContentType
	ParentColumn string
	HasTitle     bool
	HasURL       bool
	BodyColumn   string
}

var schemas = map[entity.ContentType]Schema{
	entity.ContentPost:                 {BodyColumn: "body"},
	entity.ContentComment:              {Parent: entity.ContentPost, ParentColumn: "post_id", BodyColumn: "body"},
	entity.ContentReply:                {Parent: entity.ContentComment, ParentColumn: "comment_id", BodyColumn: "body"},
	entity.ContentArticle:              {HasTitle: true, BodyColumn: "body"},
	entity.ContentArticleComment:       {Parent: entity.ContentArticle, ParentColumn: "article_id", BodyColumn: "body"},
	entity.ContentVideo:                {HasTitle: true, HasURL: true, BodyColumn: "description"},
	entity.ContentVideoComment:         {Parent: entity.ContentVideo, ParentColumn: "video_id", BodyColumn: "body"},
	entity.ContentVideoReply:           {Parent: entity.ContentVideoComment, ParentColumn: "comment_id", BodyColumn: "body"},
	entity.ContentPersonalStory:        {HasTitle: true, BodyColumn: "body"},
	entity.ContentPersonalStoryComment: {Parent: entity.ContentPersonalStory, ParentColumn: "story_id", BodyColumn: "body"},
	entity.ContentPersonalStoryReply:   {Parent: entity.ContentPersonalStoryComment, ParentColumn: "comment_id", BodyColumn: "body"},
	entity.ContentQuestion:             {HasTitle: true, BodyColumn: "body"},
	entity.ContentAnswer:               {Parent: entity.ContentQuestion, ParentColumn: "question_id", BodyColumn: "body"},
	entity.ContentAnswerComment:        {Parent: entity.ContentAnswer, ParentColumn: "answer_id", BodyColumn: "body"},
}

// SchemaFor returns the content schema for a kind.
func SchemaFor(contentType entity.ContentType) (Schema, bool) {
	s, ok := schemas[contentType]
	return s, ok
}

// ContentRecord is the normalized row shape shared by all content kinds.
type ContentRecord struct {
	ID       uuid.UUID
	AuthorID uuid.UUID
	ParentID uuid.UUID
	Title    string
	Body     string
	URL      string
}

type ContentRepository interface {
	Insert(ctx context.Context, contentType entity.ContentType, record *ContentRecord) error
	Exists(ctx context.Context, contentType entity.ContentType, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, contentType entity.ContentType, id uuid.UUID) (int64, error)
	OwnerOf(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (uuid.UUID, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Insert(ctx context.Context, contentType entity.ContentType, record *ContentRecord) error {
	schema, ok := schemas[contentType]
	if !ok {
		return apperror.ErrInvalidContentType
	}
	table, _ := contentType.Table()

	row := map[string]any{
		"id":              record.ID,
		"author_id":       record.AuthorID,
		schema.BodyColumn: record.Body,
		"created_at":      time.Now().UTC(),
	}
	if schema.ParentColumn != "" {
		row[schema.ParentColumn] = record.ParentID
	}
	if schema.HasTitle {
		row["title"] = record.Title
	}
	if schema.HasURL {
		row["url"] = record.URL
	}

	return r.db.WithContext(ctx).Table(table).Create(row).Error
}

func (r *contentRepository) Exists(ctx context.Context, contentType entity.ContentType, id uuid.UUID) (bool, error) {
	table, ok := contentType.Table()
	if !ok {
		return false, apperror.ErrInvalidContentType
	}

	var count int64
	err := r.db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *contentRepository) Delete(ctx context.Context, contentType entity.ContentType, id uuid.UUID) (int64, error) {
	table, ok := contentType.Table()
	if !ok {
		return 0, apperror.ErrInvalidContentType
	}

	// Table names come from the closed registry, never from caller input.
	result := r.db.WithContext(ctx).Exec("DELETE FROM "+table+" WHERE id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *contentRepository) OwnerOf(ctx context.Context, contentType entity.ContentType, contentID uuid.UUID) (uuid.UUID, error) {
	table, ok := contentType.Table()
	if !ok {
		return uuid.Nil, apperror.ErrInvalidContentType
	}

	var owners []uuid.UUID
	err := r.db.WithContext(ctx).Table(table).
		Where("id = ?", contentID).
		Limit(1).
		Pluck("author_id", &owners).Error
	if err != nil {
		return uuid.Nil, err
	}
	if len(owners) == 0 {
		return uuid.Nil, apperror.ErrNotFound
	}
	return owners[0], nil
}
