package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-comments/domain"
)

// CommentListTTL is the logical lifetime of a cached comment list.
const CommentListTTL = 10 * time.Minute

// commentRepository 协调层，协调缓存和数据库
type commentRepository struct {
	db           domain.CommentRepository
	cache        domain.CommentCache
	rebuildGroup singleflight.Group
}

var _ domain.CommentListRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentRepository, cache domain.CommentCache) *commentRepository {
	return &commentRepository{
		db:    db,
		cache: cache,
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.ArticleID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return r.db.GetByID(ctx, id)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	target, err := r.db.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	removed, err := r.db.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, target.ArticleID)
	return removed, nil
}

// FetchByArticle serves the list from cache, rebuilding it in the background
// once logically expired. Concurrent misses share one database load.
func (r *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments, expired, err := r.cache.GetArticleComments(ctx, articleID)
	if err == nil {
		if expired {
			go r.rebuild(context.Background(), articleID)
		}
		return comments, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("comment cache get error for article %d: %v", articleID, err)
	}

	// 共享加载不随首个请求取消
	loadCtx := context.WithoutCancel(ctx)
	res, err, _ := r.rebuildGroup.Do(groupKey(articleID), func() (any, error) {
		return r.load(loadCtx, articleID)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Comment), nil
}

func (r *commentRepository) Search(ctx context.Context, q domain.CommentSearch) ([]domain.Comment, error) {
	return r.db.Search(ctx, q)
}

func (r *commentRepository) Cached(ctx context.Context, articleID int64) ([]domain.Comment, bool) {
	comments, expired, err := r.cache.GetArticleComments(ctx, articleID)
	if err != nil || expired {
		return nil, false
	}
	return comments, true
}

func (r *commentRepository) Refresh(ctx context.Context, articleID int64) error {
	_, err, _ := r.rebuildGroup.Do(groupKey(articleID), func() (any, error) {
		return r.load(ctx, articleID)
	})
	return err
}

func (r *commentRepository) load(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments, err := r.db.FetchByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetArticleComments(ctx, articleID, comments, CommentListTTL); err != nil {
		logrus.Warnf("failed to set comment cache for article %d: %v", articleID, err)
	}
	return comments, nil
}

// rebuild 异步重建评论缓存
func (r *commentRepository) rebuild(ctx context.Context, articleID int64) {
	if err := r.Refresh(ctx, articleID); err != nil {
		logrus.Errorf("rebuild comment cache failed for article %d: %v", articleID, err)
	}
}

// invalidate 删除缓存; failures only log, the entry then lives until its logical expiry
func (r *commentRepository) invalidate(ctx context.Context, articleID int64) {
	if err := r.cache.DeleteArticleComments(ctx, articleID); err != nil {
		logrus.Warnf("failed to delete comment cache for article %d: %v", articleID, err)
	}
}

func groupKey(articleID int64) string {
	return "comments:" + strconv.FormatInt(articleID, 10)
}
