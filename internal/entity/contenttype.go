package entity

// ContentType is the closed set of reactable content kinds. Every tag maps to
// a concrete table whose rows carry an author_id column, so owner resolution
// goes through this registry instead of open string duck-typing.
type ContentType string

const (
	ContentPost                 ContentType = "post"
	ContentComment              ContentType = "comment"
	ContentReply                ContentType = "reply"
	ContentArticle              ContentType = "article"
	ContentArticleComment       ContentType = "articleComment"
	ContentVideo                ContentType = "video"
	ContentVideoComment         ContentType = "videoComment"
	ContentVideoReply           ContentType = "videoReply"
	ContentPersonalStory        ContentType = "personalStory"
	ContentPersonalStoryComment ContentType = "personalStoryComment"
	ContentPersonalStoryReply   ContentType = "personalStoryReply"
	ContentQuestion             ContentType = "question"
	ContentAnswer               ContentType = "answer"
	ContentAnswerComment        ContentType = "answerComment"
)

var contentTables = map[ContentType]string{
	ContentPost:                 "posts",
	ContentComment:              "comments",
	ContentReply:                "replies",
	ContentArticle:              "articles",
	ContentArticleComment:       "article_comments",
	ContentVideo:                "videos",
	ContentVideoComment:         "video_comments",
	ContentVideoReply:           "video_replies",
	ContentPersonalStory:        "personal_stories",
	ContentPersonalStoryComment: "personal_story_comments",
	ContentPersonalStoryReply:   "personal_story_replies",
	ContentQuestion:             "questions",
	ContentAnswer:               "answers",
	ContentAnswerComment:        "answer_comments",
}

func (t ContentType) Valid() bool {
	_, ok := contentTables[t]
	return ok
}

// Table returns the backing table name for the content type.
func (t ContentType) Table() (string, bool) {
	table, ok := contentTables[t]
	return table, ok
}

// ContentTypes returns all registered content type tags.
func ContentTypes() []ContentType {
	types := make([]ContentType, 0, len(contentTables))
	for t := range contentTables {
		types = append(types, t)
	}
	return types
}
