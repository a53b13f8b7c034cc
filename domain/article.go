package domain

import (
	"context"
	"time"
)

// Article is the discussion target comments point to.
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	UserID    int64     // Author
	CreatedAt time.Time // Creation timestamp
}

// ArticleRepository exposes what the comment service needs from articles.
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// FetchIDs pages through article ids greater than cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}
