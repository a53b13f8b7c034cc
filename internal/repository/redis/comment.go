package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/cache"
)

const (
	KeyArticleComments = "article:%d:comments"

	// hardTTL bounds how long a logically expired entry may linger.
	hardTTL = 24 * time.Hour
)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{client}
}

// GetArticleComments returns domain.ErrCacheMiss when the article is not cached.
func (c *commentCache) GetArticleComments(ctx context.Context, articleID int64) ([]domain.Comment, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyArticleComments, articleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var entry cache.DataWithLogicalExpire[[]domain.Comment]
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, err
	}
	if entry.Data == nil {
		entry.Data = []domain.Comment{}
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *commentCache) SetArticleComments(ctx context.Context, articleID int64, comments []domain.Comment, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(comments, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyArticleComments, articleID), data, hardTTL).Err()
}

func (c *commentCache) DeleteArticleComments(ctx context.Context, articleID int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyArticleComments, articleID)).Err()
}
