package domain

import "context"

// BloomRepository 文章 ID 的布隆过滤器，用于在查库前拦截不存在的文章
type BloomRepository interface {
	// Add 将文章 ID 加入过滤器
	Add(ctx context.Context, id int64) error

	// Exists 返回 false 表示文章一定不存在；true 只表示可能存在
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 启动时批量灌入已有文章
	BulkAdd(ctx context.Context, ids []int64) error
}
