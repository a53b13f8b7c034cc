package domain

import (
	"context"
	"time"
)

// Comment is one row of an article's discussion. Replies reference their
// parent through ParentID; roots have a nil ParentID and IsRoot set.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	Text      string    `json:"comment"`
	ParentID  *int64    `json:"parent_id"`
	Level     int       `json:"level"`
	IsRoot    bool      `json:"is_root"`
	UserID    int64     `json:"user_id"`
	CreateDt  time.Time `json:"create_dt"`
}

// CommentSearch carries a search request down to the repositories.
// Fields and Method describe the filterset chosen for the current action.
type CommentSearch struct {
	ArticleID int64
	Term      string
	Fields    []string
	Method    string
	Cursor    string
	Num       int64
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64, userID int64) error
	// Tree returns the article's comments nested under their root comments.
	Tree(ctx context.Context, articleID int64) ([]*CommentNode, error)
	// Subtree returns the comment identified by id with all its descendants.
	Subtree(ctx context.Context, id int64) (*CommentNode, error)
	Search(ctx context.Context, q CommentSearch) ([]Comment, string, error)
	InitBloomFilter(ctx context.Context) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	// Delete removes the comment and every descendant, returning the removed ids.
	Delete(ctx context.Context, id int64) ([]int64, error)
	// FetchByArticle returns every comment of the article ordered by creation.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
	Search(ctx context.Context, q CommentSearch) ([]Comment, error)
}

// CommentCache keeps the flat comment list of an article.
type CommentCache interface {
	GetArticleComments(ctx context.Context, articleID int64) (res []Comment, expired bool, err error)
	SetArticleComments(ctx context.Context, articleID int64, comments []Comment, ttl time.Duration) error
	DeleteArticleComments(ctx context.Context, articleID int64) error
}

// CommentListRepository coordinates the database and the cache.
type CommentListRepository interface {
	CommentRepository
	// Refresh reloads the article's comment list into the cache.
	Refresh(ctx context.Context, articleID int64) error
	// Cached reports the article's comment list only when it is in the cache.
	Cached(ctx context.Context, articleID int64) ([]Comment, bool)
}
