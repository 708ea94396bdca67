package search

import (
	"html"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sukoonsphere/backend/internal/entity"
	"github.com/sukoonsphere/backend/pkg/logger"
)

const contentIndex = "content"

// SearchService mirrors content writes into the search index. All methods are
// best effort; an unreachable index never fails the originating write.
type SearchService interface {
	IndexContent(contentType entity.ContentType, id, authorID, title, body string) error
	DeleteContent(contentType entity.ContentType, id string) error
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *searchService) initIndex() {
	if s.client == nil {
		return
	}

	filterable := []any{"content_type", "author_id"}
	if _, err := s.client.Index(contentIndex).UpdateFilterableAttributes(&filterable); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to update content filterable attributes")
	}

	sortable := []string{"created_at"}
	if _, err := s.client.Index(contentIndex).UpdateSortableAttributes(&sortable); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to update content sortable attributes")
	}
}

type contentDoc struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	AuthorID    string `json:"author_id"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body"`
}

// cleanForIndex strips markup so the index holds plain searchable text.
func (s *searchService) cleanForIndex(body string) string {
	body = strings.ReplaceAll(body, "</p>", " ")
	body = strings.ReplaceAll(body, "<br>", " ")
	body = strings.ReplaceAll(body, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(body)
	clean := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(clean), " ")
}

func (s *searchService) IndexContent(contentType entity.ContentType, id, authorID, title, body string) error {
	if s.client == nil {
		return nil
	}

	doc := contentDoc{
		ID:          id,
		ContentType: string(contentType),
		AuthorID:    authorID,
		Title:       title,
		Body:        s.cleanForIndex(body),
	}

	primaryKey := "id"
	_, err := s.client.Index(contentIndex).AddDocuments([]contentDoc{doc}, &primaryKey)
	return err
}

func (s *searchService) DeleteContent(contentType entity.ContentType, id string) error {
	if s.client == nil {
		return nil
	}
	_, err := s.client.Index(contentIndex).DeleteDocument(id)
	return err
}
